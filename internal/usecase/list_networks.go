package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/swapguard/internal/domain"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Check dials each public endpoint and compares its chain ID
	Check bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkInfo
}

// NetworkInfo is a configured network plus the outcome of an optional check
type NetworkInfo struct {
	Network    *domain.Network
	HasPrivate bool
	Checked    bool
	Error      error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver  NetworkResolver
	providers ProviderResolver
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver, providers ProviderResolver) *ListNetworks {
	return &ListNetworks{
		resolver:  resolver,
		providers: providers,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networks := uc.resolver.ListNetworks(ctx)

	infos := make([]NetworkInfo, 0, len(networks))
	for _, network := range networks {
		info := NetworkInfo{
			Network:    network,
			HasPrivate: network.PrivateRPCURL != "",
		}
		if params.Check {
			info.Checked = true
			info.Error = uc.check(ctx, network)
		}
		infos = append(infos, info)
	}

	return &ListNetworksResult{Networks: infos}, nil
}

func (uc *ListNetworks) check(ctx context.Context, network *domain.Network) error {
	provider, err := uc.providers.GetProvider(ctx, network.ChainID, domain.RPCTypePublic)
	if err != nil {
		return err
	}
	chainID, err := provider.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %w", err)
	}
	if chainID.Uint64() != network.ChainID {
		return fmt.Errorf("%w: endpoint reports %s, expected %d", domain.ErrInvalidChainID, chainID, network.ChainID)
	}
	return nil
}
