package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

type providerKey struct {
	chainID uint64
	rpcType domain.RPCType
}

// ProviderPool hands out one ethclient connection per chain and routing kind
type ProviderPool struct {
	networks usecase.NetworkResolver
	log      *slog.Logger

	mu      sync.Mutex
	clients map[providerKey]*ethclient.Client
}

// NewProviderPool creates a new provider pool
func NewProviderPool(networks usecase.NetworkResolver, log *slog.Logger) *ProviderPool {
	return &ProviderPool{
		networks: networks,
		log:      log.With("component", "ProviderPool"),
		clients:  make(map[providerKey]*ethclient.Client),
	}
}

// GetProvider returns a cached connection or dials the network's endpoint
// for rpcType. A missing private endpoint is an error, never a silent
// fallback to the public one.
func (p *ProviderPool) GetProvider(ctx context.Context, chainID uint64, rpcType domain.RPCType) (usecase.ChainProvider, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := providerKey{chainID: chainID, rpcType: rpcType}
	if client, ok := p.clients[key]; ok {
		return client, nil
	}

	network, err := p.networks.GetNetworkByChainID(ctx, chainID)
	if err != nil {
		return nil, err
	}
	endpoint := network.Endpoint(rpcType)
	if endpoint == "" {
		return nil, fmt.Errorf("%w: %s has no %s endpoint", domain.ErrNoRPCEndpoint, network.Name, rpcType)
	}

	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	p.log.Debug("connected", "network", network.Name, "rpcType", rpcType)

	p.clients[key] = client
	return client, nil
}

// Close closes every open connection
func (p *ProviderPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for key, client := range p.clients {
		client.Close()
		delete(p.clients, key)
	}
}

// Ensure the pool implements the interface
var _ usecase.ProviderResolver = (*ProviderPool)(nil)

// ProvideProviderPool creates the pool along with a cleanup that closes its connections
func ProvideProviderPool(networks usecase.NetworkResolver, log *slog.Logger) (*ProviderPool, func()) {
	pool := NewProviderPool(networks, log)
	return pool, pool.Close
}
