package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/usecase"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a snapshot file
type File struct {
	Snapshots []Snapshot `yaml:"snapshots"`
}

// Snapshot is one swap form state
type Snapshot struct {
	Name        string `yaml:"name"`
	ChainID     uint64 `yaml:"chainId"`
	Input       *Side  `yaml:"input,omitempty"`
	Output      *Side  `yaml:"output,omitempty"`
	ExactField  string `yaml:"exactField,omitempty"`
	ExactAmount string `yaml:"exactAmount,omitempty"`
	Trade       Trade  `yaml:"trade"`
	Gas         *Gas   `yaml:"gas,omitempty"`
}

// Side is one currency field of the form
type Side struct {
	Currency *Currency `yaml:"currency,omitempty"`
	Amount   string    `yaml:"amount,omitempty"`   // raw, base 10
	Balance  string    `yaml:"balance,omitempty"`  // raw, base 10
	USDValue string    `yaml:"usdValue,omitempty"` // decimal
}

// Currency identifies a token
type Currency struct {
	Symbol   string `yaml:"symbol"`
	Name     string `yaml:"name,omitempty"`
	Address  string `yaml:"address,omitempty"`
	Decimals uint8  `yaml:"decimals"`
	Native   bool   `yaml:"native,omitempty"`
}

// Trade is the routing state
type Trade struct {
	Loading     bool      `yaml:"loading,omitempty"`
	Routing     string    `yaml:"routing,omitempty"`
	PriceImpact string    `yaml:"priceImpact,omitempty"` // fraction, "0.05" == 5%
	Error       *TradeErr `yaml:"error,omitempty"`
}

// TradeErr is a routing failure
type TradeErr struct {
	Code    string `yaml:"code"`
	Message string `yaml:"message,omitempty"`
}

// Gas is the optional gas context of a snapshot
type Gas struct {
	Fee           string `yaml:"fee,omitempty"`           // wei
	NativeBalance string `yaml:"nativeBalance,omitempty"` // wei
	FeeUSD        string `yaml:"feeUsd,omitempty"`
}

// YAMLLoader reads swap snapshots from YAML files
type YAMLLoader struct{}

// NewYAMLLoader creates a new loader
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{}
}

// Load reads and validates every snapshot in the file at path
func (l *YAMLLoader) Load(ctx context.Context, path string) ([]usecase.SwapSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a snapshot document. Unknown keys are rejected.
func Decode(r io.Reader) ([]usecase.SwapSnapshot, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("snapshot file is empty")
		}
		return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
	}
	if len(file.Snapshots) == 0 {
		return nil, fmt.Errorf("snapshot file has no snapshots")
	}

	snapshots := make([]usecase.SwapSnapshot, 0, len(file.Snapshots))
	for i, s := range file.Snapshots {
		snapshot, err := s.toDomain()
		if err != nil {
			name := s.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return nil, fmt.Errorf("snapshot %s: %w", name, err)
		}
		if snapshot.Name == "" {
			snapshot.Name = fmt.Sprintf("snapshot %d", i+1)
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}

func (s Snapshot) toDomain() (usecase.SwapSnapshot, error) {
	out := usecase.SwapSnapshot{Name: s.Name}

	exact, err := domain.ParseCurrencyField(s.ExactField)
	if err != nil {
		return out, err
	}
	info := domain.DerivedSwapInfo{
		ChainID:            s.ChainID,
		ExactCurrencyField: exact,
		ExactAmountToken:   s.ExactAmount,
	}

	for field, side := range []*Side{s.Input, s.Output} {
		if err := side.apply(&info, domain.CurrencyField(field)); err != nil {
			return out, fmt.Errorf("%s: %w", domain.CurrencyField(field), err)
		}
	}

	trade, err := s.Trade.toDomain(&info)
	if err != nil {
		return out, fmt.Errorf("trade: %w", err)
	}
	info.Trade = trade
	out.Info = info

	if s.Gas != nil {
		if out.GasFee, err = parseWei(s.Gas.Fee); err != nil {
			return out, fmt.Errorf("gas fee: %w", err)
		}
		if out.NativeBalance, err = parseWei(s.Gas.NativeBalance); err != nil {
			return out, fmt.Errorf("native balance: %w", err)
		}
		if out.GasFeeUSD, err = parseDecimal(s.Gas.FeeUSD); err != nil {
			return out, fmt.Errorf("gas fee usd: %w", err)
		}
	}
	return out, nil
}

func (side *Side) apply(info *domain.DerivedSwapInfo, field domain.CurrencyField) error {
	if side == nil || side.Currency == nil {
		if side != nil && (side.Amount != "" || side.Balance != "") {
			return fmt.Errorf("amount given without a currency")
		}
		return nil
	}

	currency, err := side.Currency.toDomain(info.ChainID)
	if err != nil {
		return err
	}
	info.Currencies[field] = currency

	if side.Amount != "" {
		if info.CurrencyAmounts[field], err = domain.NewCurrencyAmount(*currency, side.Amount); err != nil {
			return fmt.Errorf("amount: %w", err)
		}
	}
	if side.Balance != "" {
		if info.CurrencyBalances[field], err = domain.NewCurrencyAmount(*currency, side.Balance); err != nil {
			return fmt.Errorf("balance: %w", err)
		}
	}
	if info.CurrencyAmountsUSDValue[field], err = parseDecimal(side.USDValue); err != nil {
		return fmt.Errorf("usd value: %w", err)
	}
	return nil
}

func (c *Currency) toDomain(chainID uint64) (*domain.Currency, error) {
	if c.Symbol == "" {
		return nil, fmt.Errorf("currency symbol is required")
	}
	currency := &domain.Currency{
		ChainID:  chainID,
		Symbol:   c.Symbol,
		Name:     c.Name,
		Decimals: c.Decimals,
		IsNative: c.Native,
	}
	if c.Address != "" {
		checksummed, ok := domain.GetValidAddress(c.Address, false)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, c.Address)
		}
		currency.Address = common.HexToAddress(checksummed)
	} else if !c.Native {
		return nil, fmt.Errorf("currency %s needs an address", c.Symbol)
	}
	return currency, nil
}

func (t Trade) toDomain(info *domain.DerivedSwapInfo) (domain.TradeResult, error) {
	result := domain.TradeResult{Loading: t.Loading}
	if t.Error != nil {
		result.Error = &domain.RouterError{Code: t.Error.Code, Message: t.Error.Message}
	}
	if t.Routing == "" && t.PriceImpact == "" {
		return result, nil
	}

	impact, err := parseDecimal(t.PriceImpact)
	if err != nil {
		return result, fmt.Errorf("price impact: %w", err)
	}
	routing := domain.Routing(t.Routing)
	if routing == "" {
		routing = domain.RoutingClassic
	}
	result.Trade = &domain.Trade{
		Routing:      routing,
		InputAmount:  info.CurrencyAmounts[domain.CurrencyFieldInput],
		OutputAmount: info.CurrencyAmounts[domain.CurrencyFieldOutput],
		PriceImpact:  impact,
	}
	return result, nil
}

func parseWei(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidQuantity, s)
	}
	return v, nil
}

func parseDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidQuantity, s)
	}
	return &d, nil
}

// Ensure the loader implements the interface
var _ usecase.SwapSnapshotLoader = (*YAMLLoader)(nil)
