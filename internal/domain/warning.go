package domain

// WarningKind identifies what a warning is about
type WarningKind string

const (
	WarningInsufficientFunds    WarningKind = "INSUFFICIENT_FUNDS"
	WarningInsufficientGasFunds WarningKind = "INSUFFICIENT_GAS_FUNDS"
	WarningFormIncomplete       WarningKind = "FORM_INCOMPLETE"
	WarningPriceImpactMedium    WarningKind = "PRICE_IMPACT_MEDIUM"
	WarningPriceImpactHigh      WarningKind = "PRICE_IMPACT_HIGH"
	WarningSwapRouterError      WarningKind = "SWAP_ROUTER_ERROR"
	WarningNetworkError         WarningKind = "NETWORK_ERROR"
)

// AllWarningKinds lists every kind in declaration order
var AllWarningKinds = []WarningKind{
	WarningInsufficientFunds,
	WarningInsufficientGasFunds,
	WarningFormIncomplete,
	WarningPriceImpactMedium,
	WarningPriceImpactHigh,
	WarningSwapRouterError,
	WarningNetworkError,
}

// Valid reports whether k is one of the declared kinds
func (k WarningKind) Valid() bool {
	switch k {
	case WarningInsufficientFunds,
		WarningInsufficientGasFunds,
		WarningFormIncomplete,
		WarningPriceImpactMedium,
		WarningPriceImpactHigh,
		WarningSwapRouterError,
		WarningNetworkError:
		return true
	}
	return false
}

// WarningSeverity is ordered: None < Low < Medium < High
type WarningSeverity int

const (
	SeverityNone WarningSeverity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
)

func (s WarningSeverity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// WarningAction is the policy a warning imposes on the swap flow
type WarningAction string

const (
	ActionNone             WarningAction = "NONE"
	ActionWarnBeforeSubmit WarningAction = "WARN_BEFORE_SUBMIT"
	ActionDisableReview    WarningAction = "DISABLE_REVIEW"
	ActionDisableSubmit    WarningAction = "DISABLE_SUBMIT"
)

// Blocks reports whether the action stops the user from progressing
func (a WarningAction) Blocks() bool {
	return a == ActionDisableReview || a == ActionDisableSubmit
}

// Warning is a single classified problem with the current swap form.
// Warnings are built fresh on every evaluation and never mutated.
type Warning struct {
	Kind       WarningKind     `json:"kind" yaml:"kind"`
	Severity   WarningSeverity `json:"severity" yaml:"severity"`
	Action     WarningAction   `json:"action" yaml:"action"`
	Title      string          `json:"title,omitempty" yaml:"title,omitempty"`
	Message    string          `json:"message,omitempty" yaml:"message,omitempty"`
	Link       string          `json:"link,omitempty" yaml:"link,omitempty"`
	ButtonText string          `json:"buttonText,omitempty" yaml:"buttonText,omitempty"`
	Currency   *Currency       `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// WarningColor holds the theme tokens used to draw a warning
type WarningColor struct {
	Text        string `json:"text"`
	Background  string `json:"background"`
	ButtonTheme string `json:"buttonTheme"`
}

// WarningWithStyle is a warning picked for a screen, with its styling attached
type WarningWithStyle struct {
	Warning         Warning      `json:"warning"`
	Color           WarningColor `json:"color"`
	DisplayedInline bool         `json:"displayedInline"`
}

// ParsedWarnings is the per-screen view over an evaluated warning list.
// Every single-warning field is the first match in evaluation order.
type ParsedWarnings struct {
	Warnings                    []Warning         `json:"warnings"`
	BlockingWarning             *Warning          `json:"blockingWarning,omitempty"`
	InsufficientBalanceWarning  *Warning          `json:"insufficientBalanceWarning,omitempty"`
	InsufficientGasFundsWarning *Warning          `json:"insufficientGasFundsWarning,omitempty"`
	PriceImpactWarning          *Warning          `json:"priceImpactWarning,omitempty"`
	FormScreenWarning           *WarningWithStyle `json:"formScreenWarning,omitempty"`
	ReviewScreenWarning         *WarningWithStyle `json:"reviewScreenWarning,omitempty"`
}

// Platform selects surface-specific display rules
type Platform string

const (
	PlatformNative Platform = "native"
	PlatformWeb    Platform = "web"
)

// IsWeb reports whether p is the web surface
func (p Platform) IsWeb() bool {
	return p == PlatformWeb
}

// NetworkStatus is the result of a connectivity check
type NetworkStatus string

const (
	NetworkUp      NetworkStatus = "UP"
	NetworkDown    NetworkStatus = "DOWN"
	NetworkUnknown NetworkStatus = "UNKNOWN"
)

// IsOffline is true only when connectivity is known to be down
func (s NetworkStatus) IsOffline() bool {
	return s == NetworkDown
}
