package usecase

import (
	"context"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/config"
)

// CheckSwapParams is one swap form state plus its gas context
type CheckSwapParams struct {
	Info          domain.DerivedSwapInfo
	GasFee        *big.Int
	NativeBalance *big.Int
	GasFeeUSD     *decimal.Decimal
	// ForceOffline skips the connectivity check and treats the wallet as offline
	ForceOffline bool
	// BridgingDismissed is set once the user has acknowledged bridging
	BridgingDismissed bool
}

// CheckSwapResult is what the swap screens would display
type CheckSwapResult struct {
	Parsed        domain.ParsedWarnings `json:"parsed"`
	Status        domain.NetworkStatus  `json:"networkStatus"`
	Offline       bool                  `json:"offline"`
	GasFeeHigh    bool                  `json:"gasFeeHigh"`
	NeedsBridging bool                  `json:"needsBridging"`
}

// CheckSwap runs the full warning pipeline for a swap form
type CheckSwap struct {
	config       *config.RuntimeConfig
	connectivity ConnectivityChecker
	networks     NetworkResolver
	evaluator    *EvaluateSwapWarnings
	memo         *WarningsMemo
	formatter    *FormatWarnings
}

// NewCheckSwap creates a new CheckSwap use case
func NewCheckSwap(
	cfg *config.RuntimeConfig,
	connectivity ConnectivityChecker,
	networks NetworkResolver,
	evaluator *EvaluateSwapWarnings,
	formatter *FormatWarnings,
) *CheckSwap {
	return &CheckSwap{
		config:       cfg,
		connectivity: connectivity,
		networks:     networks,
		evaluator:    evaluator,
		memo:         NewWarningsMemo(evaluator),
		formatter:    formatter,
	}
}

// Run evaluates, appends the gas warning, and formats for the configured platform
func (uc *CheckSwap) Run(ctx context.Context, params CheckSwapParams) (*CheckSwapResult, error) {
	status := domain.NetworkDown
	if !params.ForceOffline {
		status = uc.connectivity.Status(ctx)
	}
	offline := status.IsOffline()

	warnings := uc.memo.Evaluate(params.Info, offline)
	if gas := uc.evaluator.GasWarning(params.Info, params.GasFee, params.NativeBalance, uc.nativeCurrency(ctx, params.Info.ChainID)); gas != nil {
		// the memoized slice is shared, never append to it in place
		warnings = append(append(make([]domain.Warning, 0, len(warnings)+1), warnings...), *gas)
	}

	return &CheckSwapResult{
		Parsed:        uc.formatter.Format(warnings, uc.config.Platform),
		Status:        status,
		Offline:       offline,
		GasFeeHigh:    GasFeeHighRelativeToValue(params.GasFeeUSD, params.Info.CurrencyAmountsUSDValue[domain.CurrencyFieldInput]),
		NeedsBridging: uc.evaluator.NeedsBridgingWarning(params.Info, params.BridgingDismissed),
	}, nil
}

func (uc *CheckSwap) nativeCurrency(ctx context.Context, chainID uint64) *domain.Currency {
	native := &domain.Currency{ChainID: chainID, Symbol: "ETH", Name: "Ether", Decimals: 18, IsNative: true}
	if network, err := uc.networks.GetNetworkByChainID(ctx, chainID); err == nil && network.NativeSymbol != "" {
		native.Symbol = network.NativeSymbol
		native.Name = network.NativeSymbol
	}
	return native
}
