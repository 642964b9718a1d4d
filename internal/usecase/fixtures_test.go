package usecase_test

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/config"
)

var (
	ethCurrency = domain.Currency{ChainID: 1, Symbol: "ETH", Name: "Ether", Decimals: 18, IsNative: true}
	daiCurrency = domain.Currency{
		ChainID:  1,
		Address:  common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"),
		Symbol:   "DAI",
		Name:     "Dai Stablecoin",
		Decimals: 18,
	}
	usdcCurrency = domain.Currency{
		ChainID:  1,
		Address:  common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"),
		Symbol:   "USDC",
		Decimals: 6,
	}
)

// echoLocalizer renders a key and its args so tests can assert on them
type echoLocalizer struct{}

func (echoLocalizer) T(key string, args ...any) string {
	if len(args) == 0 {
		return key
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return key + "(" + strings.Join(parts, ",") + ")"
}

func (echoLocalizer) FormatPercent(fraction decimal.Decimal) string {
	return fraction.Shift(2).StringFixed(2) + "%"
}

func amount(c domain.Currency, raw string) *domain.CurrencyAmount {
	a, err := domain.NewCurrencyAmount(c, raw)
	if err != nil {
		panic(err)
	}
	return a
}

func pct(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func ptr[T any](v T) *T {
	return &v
}

func runtimeConfig(platform domain.Platform) *config.RuntimeConfig {
	return &config.RuntimeConfig{Platform: platform}
}

// completeSwap has both currencies and an exact amount, enough balance and no trade
func completeSwap() domain.DerivedSwapInfo {
	return domain.DerivedSwapInfo{
		ChainID:          1,
		Currencies:       [2]*domain.Currency{ptr(ethCurrency), ptr(daiCurrency)},
		CurrencyAmounts:  [2]*domain.CurrencyAmount{amount(ethCurrency, "10000"), amount(daiCurrency, "200000")},
		CurrencyBalances: [2]*domain.CurrencyAmount{amount(ethCurrency, "20000"), amount(daiCurrency, "0")},
		CurrencyAmountsUSDValue: [2]*decimal.Decimal{
			pct("100"), pct("200"),
		},
		ExactCurrencyField: domain.CurrencyFieldInput,
		ExactAmountToken:   "1000",
	}
}

func kinds(warnings []domain.Warning) []domain.WarningKind {
	out := make([]domain.WarningKind, len(warnings))
	for i, w := range warnings {
		out[i] = w.Kind
	}
	return out
}
