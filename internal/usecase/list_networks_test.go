package usecase_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

func TestListNetworks(t *testing.T) {
	ctx := context.Background()

	mainnet := &domain.Network{ChainID: 1, Name: "mainnet", RPCURL: "https://eth.example", PrivateRPCURL: "https://private.example"}
	base := &domain.Network{ChainID: 8453, Name: "base", RPCURL: "https://base.example"}
	wrong := &domain.Network{ChainID: 10, Name: "optimism", RPCURL: "https://op.example"}
	down := &domain.Network{ChainID: 137, Name: "polygon", RPCURL: "https://polygon.example"}

	resolver := &MockNetworkResolver{}
	resolver.On("ListNetworks", ctx).Return([]*domain.Network{mainnet, wrong, down, base})

	t.Run("without check", func(t *testing.T) {
		providers := &MockProviderResolver{}
		uc := usecase.NewListNetworks(resolver, providers)

		result, err := uc.Run(ctx, usecase.ListNetworksParams{})
		require.NoError(t, err)
		require.Len(t, result.Networks, 4)

		assert.True(t, result.Networks[0].HasPrivate)
		assert.False(t, result.Networks[3].HasPrivate)
		for _, info := range result.Networks {
			assert.False(t, info.Checked)
			assert.NoError(t, info.Error)
		}
		providers.AssertNotCalled(t, "GetProvider")
	})

	t.Run("with check", func(t *testing.T) {
		ok := &MockChainProvider{}
		ok.On("ChainID", ctx).Return(big.NewInt(1), nil).Once()
		baseProvider := &MockChainProvider{}
		baseProvider.On("ChainID", ctx).Return(big.NewInt(8453), nil)
		mismatched := &MockChainProvider{}
		mismatched.On("ChainID", ctx).Return(big.NewInt(11155111), nil)

		providers := &MockProviderResolver{}
		providers.On("GetProvider", ctx, uint64(1), domain.RPCTypePublic).Return(ok, nil)
		providers.On("GetProvider", ctx, uint64(8453), domain.RPCTypePublic).Return(baseProvider, nil)
		providers.On("GetProvider", ctx, uint64(10), domain.RPCTypePublic).Return(mismatched, nil)
		providers.On("GetProvider", ctx, uint64(137), domain.RPCTypePublic).Return(nil, domain.ErrNoRPCEndpoint)

		uc := usecase.NewListNetworks(resolver, providers)
		result, err := uc.Run(ctx, usecase.ListNetworksParams{Check: true})
		require.NoError(t, err)
		require.Len(t, result.Networks, 4)

		byName := map[string]usecase.NetworkInfo{}
		for _, info := range result.Networks {
			assert.True(t, info.Checked)
			byName[info.Network.Name] = info
		}
		assert.NoError(t, byName["mainnet"].Error)
		assert.NoError(t, byName["base"].Error)
		assert.ErrorIs(t, byName["optimism"].Error, domain.ErrInvalidChainID)
		assert.ErrorIs(t, byName["polygon"].Error, domain.ErrNoRPCEndpoint)
		providers.AssertExpectations(t)
	})
}
