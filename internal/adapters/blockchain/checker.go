package blockchain

import (
	"context"
	"log/slog"
	"time"

	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/config"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

const connectivityTimeout = 5 * time.Second

// CheckerAdapter reports connectivity by asking the selected network for its chain ID
type CheckerAdapter struct {
	network   *domain.Network
	providers usecase.ProviderResolver
	log       *slog.Logger
}

// NewCheckerAdapter creates a new connectivity checker
func NewCheckerAdapter(cfg *config.RuntimeConfig, providers usecase.ProviderResolver, log *slog.Logger) *CheckerAdapter {
	return &CheckerAdapter{
		network:   cfg.Network,
		providers: providers,
		log:       log.With("component", "CheckerAdapter"),
	}
}

// Status is Unknown without a selected network, Down when the endpoint
// can't answer and Up otherwise
func (c *CheckerAdapter) Status(ctx context.Context) domain.NetworkStatus {
	if c.network == nil {
		return domain.NetworkUnknown
	}

	ctx, cancel := context.WithTimeout(ctx, connectivityTimeout)
	defer cancel()

	provider, err := c.providers.GetProvider(ctx, c.network.ChainID, domain.RPCTypePublic)
	if err != nil {
		c.log.Debug("no provider", "network", c.network.Name, "error", err)
		return domain.NetworkUnknown
	}
	chainID, err := provider.ChainID(ctx)
	if err != nil {
		c.log.Debug("connectivity check failed", "network", c.network.Name, "error", err)
		return domain.NetworkDown
	}
	if chainID.Uint64() != c.network.ChainID {
		c.log.Warn("chain ID mismatch", "expected", c.network.ChainID, "got", chainID.Uint64())
	}
	return domain.NetworkUp
}

// Ensure the adapter implements the interface
var _ usecase.ConnectivityChecker = (*CheckerAdapter)(nil)
