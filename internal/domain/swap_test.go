package domain

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivedSwapInfo_Clone(t *testing.T) {
	eth := Currency{ChainID: 1, Symbol: "ETH", Decimals: 18, IsNative: true}
	impact := decimal.RequireFromString("0.05")
	usd := decimal.RequireFromString("12.5")
	info := DerivedSwapInfo{
		ChainID:                 1,
		Currencies:              [2]*Currency{&eth, nil},
		CurrencyAmounts:         [2]*CurrencyAmount{{Currency: eth, Raw: big.NewInt(100)}, nil},
		CurrencyBalances:        [2]*CurrencyAmount{{Currency: eth, Raw: big.NewInt(50)}, nil},
		CurrencyAmountsUSDValue: [2]*decimal.Decimal{&usd, nil},
		Trade: TradeResult{
			Error: &RouterError{Message: "no route"},
			Trade: &Trade{
				InputAmount: &CurrencyAmount{Currency: eth, Raw: big.NewInt(100)},
				PriceImpact: &impact,
			},
		},
	}

	c := info.Clone()
	require.Equal(t, info, c)

	c.Currencies[0].Symbol = "WETH"
	c.CurrencyAmounts[0].Raw.SetInt64(1)
	c.CurrencyBalances[0].Raw.SetInt64(1)
	c.Trade.Error.Message = "changed"
	c.Trade.Trade.InputAmount.Raw.SetInt64(1)

	assert.Equal(t, "ETH", info.Currencies[0].Symbol)
	assert.Equal(t, int64(100), info.CurrencyAmounts[0].Raw.Int64())
	assert.Equal(t, int64(50), info.CurrencyBalances[0].Raw.Int64())
	assert.Equal(t, "no route", info.Trade.Error.Message)
	assert.Equal(t, int64(100), info.Trade.Trade.InputAmount.Raw.Int64())
	assert.NotSame(t, info.CurrencyAmountsUSDValue[0], c.CurrencyAmountsUSDValue[0])
	assert.NotSame(t, info.Trade.Trade.PriceImpact, c.Trade.Trade.PriceImpact)
	assert.Nil(t, c.CurrencyAmounts[1])
}
