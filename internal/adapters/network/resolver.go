package network

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/config"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// maxSuggestions caps the "did you mean" list on an unknown network
const maxSuggestions = 3

// Resolver handles network configuration resolution
type Resolver struct {
	networks      map[string]*domain.Network
	chainIDLookup map[uint64]string // chainID -> network name
}

// NewResolver creates a resolver seeded with well-known networks and
// overlaid with the ones from swapguard.toml
func NewResolver(cfg *config.RuntimeConfig) *Resolver {
	r := &Resolver{
		networks:      make(map[string]*domain.Network),
		chainIDLookup: make(map[uint64]string),
	}

	r.initializeDefaultNetworks()
	r.LoadNetworks(cfg.Networks)

	return r
}

// initializeDefaultNetworks sets up well-known networks with public endpoints
func (r *Resolver) initializeDefaultNetworks() {
	defaultNetworks := []domain.Network{
		{ChainID: 1, Name: "mainnet", RPCURL: "https://ethereum-rpc.publicnode.com", PrivateRPCURL: "https://rpc.flashbots.net/fast", ExplorerURL: "https://etherscan.io", NativeSymbol: "ETH"},
		{ChainID: 11155111, Name: "sepolia", RPCURL: "https://ethereum-sepolia-rpc.publicnode.com", ExplorerURL: "https://sepolia.etherscan.io", NativeSymbol: "ETH"},
		{ChainID: 10, Name: "optimism", RPCURL: "https://mainnet.optimism.io", ExplorerURL: "https://optimistic.etherscan.io", NativeSymbol: "ETH"},
		{ChainID: 42161, Name: "arbitrum", RPCURL: "https://arb1.arbitrum.io/rpc", ExplorerURL: "https://arbiscan.io", NativeSymbol: "ETH"},
		{ChainID: 137, Name: "polygon", RPCURL: "https://polygon-rpc.com", ExplorerURL: "https://polygonscan.com", NativeSymbol: "POL"},
		{ChainID: 8453, Name: "base", RPCURL: "https://mainnet.base.org", ExplorerURL: "https://basescan.org", NativeSymbol: "ETH"},
		{ChainID: 43114, Name: "avalanche", RPCURL: "https://api.avax.network/ext/bc/C/rpc", ExplorerURL: "https://snowtrace.io", NativeSymbol: "AVAX"},
		{ChainID: 56, Name: "bsc", RPCURL: "https://bsc-dataseed.bnbchain.org", ExplorerURL: "https://bscscan.com", NativeSymbol: "BNB"},
		{ChainID: 42220, Name: "celo", RPCURL: "https://forno.celo.org", ExplorerURL: "https://celoscan.io", NativeSymbol: "CELO"},
		{ChainID: 31337, Name: "localhost", RPCURL: "http://localhost:8545", NativeSymbol: "ETH"},
	}

	for _, network := range defaultNetworks {
		network := network
		r.addNetwork(&network)
	}
}

// addNetwork adds a network configuration, replacing any with the same name
func (r *Resolver) addNetwork(network *domain.Network) {
	name := strings.ToLower(network.Name)
	if prev, ok := r.networks[name]; ok && prev.ChainID != network.ChainID && r.chainIDLookup[prev.ChainID] == name {
		delete(r.chainIDLookup, prev.ChainID)
	}
	r.networks[name] = network
	r.chainIDLookup[network.ChainID] = name
}

// LoadNetworks loads additional network configurations. Fields left empty
// in a configured network fall back to the built-in one with the same name.
func (r *Resolver) LoadNetworks(networks map[string]*domain.Network) {
	for name, network := range networks {
		// Ensure name is set
		if network.Name == "" {
			network.Name = name
		}
		if base, ok := r.networks[strings.ToLower(network.Name)]; ok {
			network = mergeNetwork(base, network)
		}
		r.addNetwork(network)
	}
}

func mergeNetwork(base, override *domain.Network) *domain.Network {
	merged := *base
	if override.ChainID != 0 {
		merged.ChainID = override.ChainID
	}
	if override.RPCURL != "" {
		merged.RPCURL = override.RPCURL
	}
	if override.PrivateRPCURL != "" {
		merged.PrivateRPCURL = override.PrivateRPCURL
	}
	if override.ExplorerURL != "" {
		merged.ExplorerURL = override.ExplorerURL
	}
	if override.NativeSymbol != "" {
		merged.NativeSymbol = override.NativeSymbol
	}
	return &merged
}

// ResolveNetwork resolves a network by name or chain ID
func (r *Resolver) ResolveNetwork(ctx context.Context, input string) (*domain.Network, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("network not specified")
	}

	// Case-insensitive name lookup
	if network, ok := r.networks[strings.ToLower(input)]; ok {
		return network, nil
	}

	// Try to parse as chain ID
	if chainID, err := strconv.ParseUint(input, 10, 64); err == nil {
		return r.GetNetworkByChainID(ctx, chainID)
	}

	return nil, domain.UnknownNetworkErr{Input: input, Suggestions: r.suggest(input)}
}

// GetNetworkByChainID retrieves a network by its chain ID
func (r *Resolver) GetNetworkByChainID(ctx context.Context, chainID uint64) (*domain.Network, error) {
	if name, ok := r.chainIDLookup[chainID]; ok {
		return r.networks[name], nil
	}
	return nil, domain.UnknownNetworkErr{Input: strconv.FormatUint(chainID, 10)}
}

// ListNetworks returns all configured networks ordered by chain ID
func (r *Resolver) ListNetworks(ctx context.Context) []*domain.Network {
	networks := make([]*domain.Network, 0, len(r.networks))
	for _, network := range r.networks {
		networks = append(networks, network)
	}
	sort.Slice(networks, func(i, j int) bool {
		if networks[i].ChainID != networks[j].ChainID {
			return networks[i].ChainID < networks[j].ChainID
		}
		return networks[i].Name < networks[j].Name
	})
	return networks
}

// suggest returns the closest network names to input, best match first
func (r *Resolver) suggest(input string) []string {
	names := make([]string, 0, len(r.networks))
	for name := range r.networks {
		names = append(names, name)
	}
	sort.Strings(names)

	matches := fuzzy.Find(strings.ToLower(input), names)
	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}

// Ensure the resolver implements the interface
var _ usecase.NetworkResolver = (*Resolver)(nil)
