package usecase

import (
	"github.com/samber/lo"
	"github.com/trebuchet-org/swapguard/internal/domain"
)

// FormatWarnings picks which warning each swap screen shows
type FormatWarnings struct{}

// NewFormatWarnings creates a new FormatWarnings use case
func NewFormatWarnings() *FormatWarnings {
	return &FormatWarnings{}
}

// Format builds the per-screen view over warnings. A nil or empty list gives
// every optional field nil.
func (uc *FormatWarnings) Format(warnings []domain.Warning, platform domain.Platform) domain.ParsedWarnings {
	if warnings == nil {
		warnings = []domain.Warning{}
	}

	return domain.ParsedWarnings{
		Warnings: warnings,
		BlockingWarning: findWarning(warnings, func(w domain.Warning) bool {
			return w.Action.Blocks()
		}),
		InsufficientBalanceWarning: findWarning(warnings, func(w domain.Warning) bool {
			return w.Kind == domain.WarningInsufficientFunds
		}),
		InsufficientGasFundsWarning: findWarning(warnings, func(w domain.Warning) bool {
			return w.Kind == domain.WarningInsufficientGasFunds
		}),
		PriceImpactWarning:  findWarning(warnings, func(w domain.Warning) bool { return IsPriceImpactWarning(w.Kind) }),
		FormScreenWarning:   formScreenWarning(warnings, platform),
		ReviewScreenWarning: reviewScreenWarning(warnings),
	}
}

// IsPriceImpactWarning reports whether kind is one of the price impact kinds
func IsPriceImpactWarning(kind domain.WarningKind) bool {
	switch kind {
	case domain.WarningPriceImpactMedium, domain.WarningPriceImpactHigh:
		return true
	case domain.WarningInsufficientFunds,
		domain.WarningInsufficientGasFunds,
		domain.WarningFormIncomplete,
		domain.WarningSwapRouterError,
		domain.WarningNetworkError:
		return false
	default:
		return false
	}
}

// WarningColorFor maps a severity to its theme tokens
func WarningColorFor(severity domain.WarningSeverity) domain.WarningColor {
	switch severity {
	case domain.SeverityNone:
		return domain.WarningColor{Text: "$neutral2", Background: "$neutral2", ButtonTheme: "secondary"}
	case domain.SeverityLow:
		return domain.WarningColor{Text: "$neutral2", Background: "$surface2", ButtonTheme: "tertiary"}
	case domain.SeverityMedium:
		return domain.WarningColor{Text: "$statusCritical", Background: "$DEP_accentWarningSoft", ButtonTheme: "warning"}
	case domain.SeverityHigh:
		return domain.WarningColor{Text: "$statusCritical", Background: "$DEP_accentCriticalSoft", ButtonTheme: "detrimental"}
	default:
		return domain.WarningColor{Text: "$neutral2", Background: "$transparent", ButtonTheme: "tertiary"}
	}
}

func findWarning(warnings []domain.Warning, predicate func(domain.Warning) bool) *domain.Warning {
	w, ok := lo.Find(warnings, predicate)
	if !ok {
		return nil
	}
	return &w
}

func reviewScreenWarning(warnings []domain.Warning) *domain.WarningWithStyle {
	w := findWarning(warnings, func(w domain.Warning) bool {
		return w.Severity >= domain.SeverityMedium
	})
	if w == nil {
		return nil
	}
	return withStyle(*w, true)
}

// formScreenWarning lets insufficient balance win over everything else, so a
// higher-severity warning earlier in the list never hides it.
func formScreenWarning(warnings []domain.Warning, platform domain.Platform) *domain.WarningWithStyle {
	if w := findWarning(warnings, func(w domain.Warning) bool {
		return w.Kind == domain.WarningInsufficientFunds
	}); w != nil {
		return &domain.WarningWithStyle{
			Warning:         *w,
			Color:           WarningColorFor(domain.SeverityMedium),
			DisplayedInline: !platform.IsWeb(),
		}
	}

	w := findWarning(warnings, func(w domain.Warning) bool {
		return w.Kind == domain.WarningInsufficientFunds || w.Severity >= domain.SeverityLow
	})
	if w == nil {
		return nil
	}

	inline := w.Kind != domain.WarningInsufficientGasFunds &&
		(!platform.IsWeb() || !IsPriceImpactWarning(w.Kind))
	return withStyle(*w, inline)
}

func withStyle(w domain.Warning, inline bool) *domain.WarningWithStyle {
	return &domain.WarningWithStyle{
		Warning:         w,
		Color:           WarningColorFor(w.Severity),
		DisplayedInline: inline,
	}
}
