package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// CurrencyField indexes the two sides of a swap form
type CurrencyField int

const (
	CurrencyFieldInput CurrencyField = iota
	CurrencyFieldOutput
)

func (f CurrencyField) String() string {
	if f == CurrencyFieldOutput {
		return "output"
	}
	return "input"
}

// ParseCurrencyField parses "input"/"output" (case-insensitive)
func ParseCurrencyField(s string) (CurrencyField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "input", "in":
		return CurrencyFieldInput, nil
	case "output", "out":
		return CurrencyFieldOutput, nil
	default:
		return CurrencyFieldInput, fmt.Errorf("invalid currency field: %q", s)
	}
}

// Currency is a token or a chain's native asset
type Currency struct {
	ChainID  uint64         `json:"chainId" yaml:"chainId"`
	Address  common.Address `json:"address" yaml:"address"`
	Symbol   string         `json:"symbol" yaml:"symbol"`
	Name     string         `json:"name,omitempty" yaml:"name,omitempty"`
	Decimals uint8          `json:"decimals" yaml:"decimals"`
	IsNative bool           `json:"isNative,omitempty" yaml:"isNative,omitempty"`
}

// ID returns the currency id, "<chainID>-<address>"
func (c Currency) ID() string {
	return fmt.Sprintf("%d-%s", c.ChainID, c.Address.Hex())
}

// CurrencyAmount is a raw (smallest-unit) amount of a currency
type CurrencyAmount struct {
	Currency Currency `json:"currency"`
	Raw      *big.Int `json:"raw"`
}

// NewCurrencyAmount builds an amount from a base-10 raw string
func NewCurrencyAmount(currency Currency, raw string) (*CurrencyAmount, error) {
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidQuantity, raw)
	}
	return &CurrencyAmount{Currency: currency, Raw: v}, nil
}

func (a *CurrencyAmount) raw() *big.Int {
	if a == nil || a.Raw == nil {
		return new(big.Int)
	}
	return a.Raw
}

// LessThan compares raw amounts
func (a *CurrencyAmount) LessThan(other *CurrencyAmount) bool {
	return a.raw().Cmp(other.raw()) < 0
}

// GreaterThan compares raw amounts
func (a *CurrencyAmount) GreaterThan(other *CurrencyAmount) bool {
	return a.raw().Cmp(other.raw()) > 0
}

// IsZero reports whether the amount is zero or unset
func (a *CurrencyAmount) IsZero() bool {
	return a.raw().Sign() == 0
}

// ToExact renders the amount in whole units, e.g. 1.5 for 1500000 with 6 decimals
func (a *CurrencyAmount) ToExact() string {
	if a == nil {
		return ""
	}
	return decimal.NewFromBigInt(a.raw(), -int32(a.Currency.Decimals)).String()
}

// Routing is the execution venue of a trade
type Routing string

const (
	RoutingClassic  Routing = "CLASSIC"
	RoutingUniswapX Routing = "DUTCH_V2"
	RoutingBridge   Routing = "BRIDGE"
)

// RouterError is a failure reported by the routing backend
type RouterError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *RouterError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Trade is a resolved swap route
type Trade struct {
	Routing      Routing          `json:"routing"`
	InputAmount  *CurrencyAmount  `json:"inputAmount,omitempty"`
	OutputAmount *CurrencyAmount  `json:"outputAmount,omitempty"`
	PriceImpact  *decimal.Decimal `json:"priceImpact,omitempty"` // fraction, 0.03 == 3%
}

// TradeResult is the state of the routing request for the current form
type TradeResult struct {
	Loading bool         `json:"loading"`
	Error   *RouterError `json:"error,omitempty"`
	Trade   *Trade       `json:"trade,omitempty"`
}

// DerivedSwapInfo is a snapshot of the swap form. Nil fields are unset.
type DerivedSwapInfo struct {
	ChainID                 uint64              `json:"chainId"`
	Currencies              [2]*Currency        `json:"currencies"`
	CurrencyAmounts         [2]*CurrencyAmount  `json:"currencyAmounts"`
	CurrencyBalances        [2]*CurrencyAmount  `json:"currencyBalances"`
	CurrencyAmountsUSDValue [2]*decimal.Decimal `json:"currencyAmountsUSDValue"`
	ExactCurrencyField      CurrencyField       `json:"exactCurrencyField"`
	ExactAmountToken        string              `json:"exactAmountToken,omitempty"`
	Trade                   TradeResult         `json:"trade"`
}

// Currency returns the currency selected for a field, or nil
func (d *DerivedSwapInfo) Currency(f CurrencyField) *Currency {
	return d.Currencies[f]
}

// Amount returns the amount entered or derived for a field, or nil
func (d *DerivedSwapInfo) Amount(f CurrencyField) *CurrencyAmount {
	return d.CurrencyAmounts[f]
}

// Balance returns the wallet balance for a field, or nil
func (d *DerivedSwapInfo) Balance(f CurrencyField) *CurrencyAmount {
	return d.CurrencyBalances[f]
}

// Clone returns a deep copy of the amount
func (a *CurrencyAmount) Clone() *CurrencyAmount {
	if a == nil {
		return nil
	}
	c := *a
	if a.Raw != nil {
		c.Raw = new(big.Int).Set(a.Raw)
	}
	return &c
}

// Clone returns a deep copy of the snapshot; no pointer is shared with d
func (d DerivedSwapInfo) Clone() DerivedSwapInfo {
	c := d
	for i := range d.Currencies {
		if d.Currencies[i] != nil {
			cur := *d.Currencies[i]
			c.Currencies[i] = &cur
		}
		c.CurrencyAmounts[i] = d.CurrencyAmounts[i].Clone()
		c.CurrencyBalances[i] = d.CurrencyBalances[i].Clone()
		if d.CurrencyAmountsUSDValue[i] != nil {
			usd := d.CurrencyAmountsUSDValue[i].Copy()
			c.CurrencyAmountsUSDValue[i] = &usd
		}
	}
	if d.Trade.Error != nil {
		e := *d.Trade.Error
		c.Trade.Error = &e
	}
	if t := d.Trade.Trade; t != nil {
		trade := *t
		trade.InputAmount = t.InputAmount.Clone()
		trade.OutputAmount = t.OutputAmount.Clone()
		if t.PriceImpact != nil {
			impact := t.PriceImpact.Copy()
			trade.PriceImpact = &impact
		}
		c.Trade.Trade = &trade
	}
	return c
}
