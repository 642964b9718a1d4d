package scenario

import (
	"context"
	"math/big"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/swapguard/internal/domain"
)

func TestYAMLLoader_Load(t *testing.T) {
	snapshots, err := NewYAMLLoader().Load(context.Background(), filepath.Join("testdata", "snapshots.yaml"))
	require.NoError(t, err)
	require.Len(t, snapshots, 3)

	healthy := snapshots[0]
	assert.Equal(t, "healthy swap", healthy.Name)
	info := healthy.Info
	assert.Equal(t, uint64(1), info.ChainID)
	require.NotNil(t, info.Currency(domain.CurrencyFieldInput))
	assert.True(t, info.Currency(domain.CurrencyFieldInput).IsNative)
	assert.Equal(t, common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"), info.Currency(domain.CurrencyFieldOutput).Address)
	assert.Equal(t, "1", info.Amount(domain.CurrencyFieldInput).ToExact())
	assert.Equal(t, "2", info.Balance(domain.CurrencyFieldInput).ToExact())
	assert.Equal(t, "3000", info.CurrencyAmountsUSDValue[domain.CurrencyFieldInput].String())
	assert.Nil(t, info.CurrencyAmountsUSDValue[domain.CurrencyFieldOutput])
	require.NotNil(t, info.Trade.Trade)
	assert.Equal(t, domain.RoutingClassic, info.Trade.Trade.Routing)
	assert.Equal(t, "0.004", info.Trade.Trade.PriceImpact.String())
	assert.Equal(t, 0, big.NewInt(2100000000000000).Cmp(healthy.GasFee))
	assert.Equal(t, "6.3", healthy.GasFeeUSD.String())

	noRoute := snapshots[1]
	assert.Nil(t, noRoute.Info.Trade.Trade)
	require.NotNil(t, noRoute.Info.Trade.Error)
	assert.Equal(t, "QUOTE_NOT_FOUND", noRoute.Info.Trade.Error.Code)
	assert.Nil(t, noRoute.GasFee)

	assert.Equal(t, "snapshot 3", snapshots[2].Name, "unnamed snapshots get a positional name")
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name          string
		doc           string
		expectedError string
	}{
		{name: "empty", doc: "", expectedError: "empty"},
		{name: "no snapshots", doc: "snapshots: []", expectedError: "no snapshots"},
		{name: "unknown key", doc: "snapshots:\n  - chainId: 1\n    colour: red", expectedError: "colour"},
		{
			name:          "token without address",
			doc:           "snapshots:\n  - name: bad\n    input:\n      currency: {symbol: DAI, decimals: 18}",
			expectedError: "snapshot bad: input: currency DAI needs an address",
		},
		{
			name:          "bad amount",
			doc:           "snapshots:\n  - input:\n      currency: {symbol: ETH, decimals: 18, native: true}\n      amount: 1.5",
			expectedError: "snapshot #1: input: amount",
		},
		{
			name:          "amount without currency",
			doc:           "snapshots:\n  - output:\n      amount: \"10\"",
			expectedError: "amount given without a currency",
		},
		{
			name:          "bad price impact",
			doc:           "snapshots:\n  - trade: {priceImpact: lots}",
			expectedError: "price impact",
		},
		{
			name:          "negative gas fee",
			doc:           "snapshots:\n  - gas: {fee: \"-1\"}",
			expectedError: "gas fee",
		},
		{
			name:          "bad exact field",
			doc:           "snapshots:\n  - exactField: sideways",
			expectedError: "sideways",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestYAMLLoader_MissingFile(t *testing.T) {
	_, err := NewYAMLLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
