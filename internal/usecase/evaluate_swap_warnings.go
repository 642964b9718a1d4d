package usecase

import (
	"math/big"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/config"
)

// PriceImpactHelpURL is linked from every price impact warning
const PriceImpactHelpURL = "https://support.uniswap.org/hc/en-us/articles/8671539602317-What-is-Price-Impact"

var (
	priceImpactThresholdMedium = decimal.RequireFromString("0.03")
	priceImpactThresholdHigh   = decimal.RequireFromString("0.05")
	gasFeeHighRelativeToValue  = decimal.RequireFromString("0.05")
)

// Router error codes with dedicated copy
const (
	RouterErrorQuoteNotFound         = "QUOTE_NOT_FOUND"
	RouterErrorInsufficientLiquidity = "INSUFFICIENT_LIQUIDITY"
	RouterErrorRateLimit             = "RATE_LIMIT"
)

// EvaluateSwapWarnings classifies the problems with a swap form
type EvaluateSwapWarnings struct {
	t        Localizer
	platform domain.Platform
}

// NewEvaluateSwapWarnings creates a new EvaluateSwapWarnings use case
func NewEvaluateSwapWarnings(cfg *config.RuntimeConfig, t Localizer) *EvaluateSwapWarnings {
	return &EvaluateSwapWarnings{
		t:        t,
		platform: cfg.Platform,
	}
}

// Evaluate returns the warnings for info in evaluation order. It never fails:
// unset fields mean the corresponding check does not apply.
func (uc *EvaluateSwapWarnings) Evaluate(info domain.DerivedSwapInfo, isOffline bool) []domain.Warning {
	warnings := []domain.Warning{}

	if isOffline {
		warnings = append(warnings, uc.networkWarning())
	}

	if w := uc.insufficientBalanceWarning(info); w != nil {
		warnings = append(warnings, *w)
	}

	if info.Trade.Error != nil {
		warnings = append(warnings, uc.routerWarning(info.Trade.Error))
	}

	if formIncomplete(info) {
		warnings = append(warnings, domain.Warning{
			Kind:     domain.WarningFormIncomplete,
			Severity: domain.SeverityNone,
			Action:   domain.ActionDisableReview,
		})
	}

	if w := uc.priceImpactWarning(info); w != nil {
		warnings = append(warnings, *w)
	}

	return warnings
}

// GasWarning returns an InsufficientGasFunds warning when the native balance
// can't cover gasFee plus any native amount being swapped. Unknown fee or
// balance yields nil.
func (uc *EvaluateSwapWarnings) GasWarning(info domain.DerivedSwapInfo, gasFee, nativeBalance *big.Int, native *domain.Currency) *domain.Warning {
	if gasFee == nil || nativeBalance == nil {
		return nil
	}

	required := new(big.Int).Set(gasFee)
	if in := info.Amount(domain.CurrencyFieldInput); in != nil && in.Currency.IsNative && in.Raw != nil {
		required.Add(required, in.Raw)
	}
	if nativeBalance.Cmp(required) >= 0 {
		return nil
	}

	symbol := ""
	if native != nil {
		symbol = native.Symbol
	}
	w := &domain.Warning{
		Kind:       domain.WarningInsufficientGasFunds,
		Severity:   domain.SeverityMedium,
		Action:     domain.ActionDisableSubmit,
		Title:      uc.t.T("swap.warning.insufficientGas.title", symbol),
		Message:    uc.t.T("swap.warning.insufficientGas.message", symbol),
		ButtonText: uc.t.T("swap.warning.insufficientGas.button", symbol),
		Currency:   native,
	}
	return w
}

// NeedsBridgingWarning is true for a bridge route the user has not yet acknowledged
func (uc *EvaluateSwapWarnings) NeedsBridgingWarning(info domain.DerivedSwapInfo, dismissed bool) bool {
	return info.Trade.Trade != nil && info.Trade.Trade.Routing == domain.RoutingBridge && !dismissed
}

// GasFeeHighRelativeToValue reports whether the network fee is more than 5%
// of what is being transacted. Unknown values never count as high.
func GasFeeHighRelativeToValue(gasFeeUSD, valueUSD *decimal.Decimal) bool {
	if gasFeeUSD == nil || valueUSD == nil || !valueUSD.IsPositive() {
		return false
	}
	return gasFeeUSD.GreaterThan(valueUSD.Mul(gasFeeHighRelativeToValue))
}

func (uc *EvaluateSwapWarnings) networkWarning() domain.Warning {
	return domain.Warning{
		Kind:     domain.WarningNetworkError,
		Severity: domain.SeverityNone,
		Action:   domain.ActionWarnBeforeSubmit,
		Title:    uc.t.T("swap.warning.offline.title"),
		Message:  uc.t.T("swap.warning.offline.message"),
	}
}

func (uc *EvaluateSwapWarnings) insufficientBalanceWarning(info domain.DerivedSwapInfo) *domain.Warning {
	amountIn := info.Amount(domain.CurrencyFieldInput)
	balanceIn := info.Balance(domain.CurrencyFieldInput)
	if amountIn == nil || balanceIn == nil || !balanceIn.LessThan(amountIn) {
		return nil
	}

	currency := amountIn.Currency
	w := &domain.Warning{
		Kind:     domain.WarningInsufficientFunds,
		Severity: domain.SeverityNone,
		Action:   domain.ActionDisableReview,
		Title:    uc.t.T("swap.warning.insufficientBalance.title", currency.Symbol),
		Currency: &currency,
	}
	if uc.platform.IsWeb() {
		w.ButtonText = uc.t.T("common.insufficientTokenBalance.error.simple", currency.Symbol)
	}
	return w
}

func (uc *EvaluateSwapWarnings) routerWarning(routerErr *domain.RouterError) domain.Warning {
	key := "swap.warning.router"
	switch routerErr.Code {
	case RouterErrorQuoteNotFound:
		key = "swap.warning.noRoutesFound"
	case RouterErrorInsufficientLiquidity:
		key = "swap.warning.lowLiquidity"
	case RouterErrorRateLimit:
		key = "swap.warning.rateLimit"
	}
	return domain.Warning{
		Kind:     domain.WarningSwapRouterError,
		Severity: domain.SeverityLow,
		Action:   domain.ActionDisableReview,
		Title:    uc.t.T(key + ".title"),
		Message:  uc.t.T(key + ".message"),
	}
}

func (uc *EvaluateSwapWarnings) priceImpactWarning(info domain.DerivedSwapInfo) *domain.Warning {
	trade := info.Trade.Trade
	if trade == nil || trade.PriceImpact == nil {
		return nil
	}
	impact := *trade.PriceImpact
	if !impact.GreaterThan(priceImpactThresholdMedium) {
		return nil
	}

	value := uc.t.FormatPercent(impact.Abs())
	if !impact.LessThan(priceImpactThresholdHigh) {
		return &domain.Warning{
			Kind:     domain.WarningPriceImpactHigh,
			Severity: domain.SeverityHigh,
			Action:   domain.ActionWarnBeforeSubmit,
			Title:    uc.t.T("swap.warning.priceImpact.title.veryHigh", value),
			Message:  uc.t.T("swap.warning.priceImpact.message.veryHigh", value),
			Link:     PriceImpactHelpURL,
		}
	}

	return &domain.Warning{
		Kind:     domain.WarningPriceImpactMedium,
		Severity: domain.SeverityMedium,
		Action:   domain.ActionWarnBeforeSubmit,
		Title:    uc.t.T("swap.warning.priceImpact.title", value),
		Message:  uc.t.T("swap.warning.priceImpact.message", symbolOf(info.Currency(domain.CurrencyFieldOutput)), symbolOf(info.Currency(domain.CurrencyFieldInput))),
		Link:     PriceImpactHelpURL,
	}
}

func formIncomplete(info domain.DerivedSwapInfo) bool {
	return info.Currency(domain.CurrencyFieldInput) == nil ||
		info.Currency(domain.CurrencyFieldOutput) == nil ||
		info.Amount(info.ExactCurrencyField) == nil
}

func symbolOf(c *domain.Currency) string {
	if c == nil {
		return ""
	}
	return c.Symbol
}

// WarningsMemo caches the last evaluation and returns the same slice while
// the inputs stay deeply equal.
type WarningsMemo struct {
	evaluator *EvaluateSwapWarnings

	mu      sync.Mutex
	valid   bool
	info    domain.DerivedSwapInfo
	offline bool
	result  []domain.Warning
}

// NewWarningsMemo wraps an evaluator with a single-entry cache
func NewWarningsMemo(evaluator *EvaluateSwapWarnings) *WarningsMemo {
	return &WarningsMemo{evaluator: evaluator}
}

var swapInfoComparer = cmp.Options{
	cmp.Comparer(func(a, b *big.Int) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Cmp(b) == 0
	}),
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
}

// Evaluate returns the cached result when info and isOffline equal the previous call
func (m *WarningsMemo) Evaluate(info domain.DerivedSwapInfo, isOffline bool) []domain.Warning {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid && m.offline == isOffline && cmp.Equal(m.info, info, swapInfoComparer) {
		return m.result
	}

	m.result = m.evaluator.Evaluate(info, isOffline)
	m.info = info.Clone()
	m.offline = isOffline
	m.valid = true
	return m.result
}
