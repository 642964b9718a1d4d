package i18n

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/trebuchet-org/swapguard/internal/domain/config"
	"github.com/trebuchet-org/swapguard/internal/usecase"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

// Localizer resolves warning copy from an x/text catalog
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
	known   map[string]bool
}

// NewLocalizer builds a localizer for the closest supported match of locale.
// Unknown locales fall back to English.
func NewLocalizer(locale string) (*Localizer, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	known := make(map[string]bool)

	supported := []language.Tag{language.English}
	for tag, entries := range messages {
		if tag != language.English {
			supported = append(supported, tag)
		}
		for key, msg := range entries {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("failed to register message %q for %s: %w", key, tag, err)
			}
			known[key] = true
		}
	}

	tag, _ := language.MatchStrings(language.NewMatcher(supported), locale)
	base, _ := tag.Base()
	tag, _ = language.Compose(base)

	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
		known:   known,
	}, nil
}

// ProvideLocalizer builds the localizer for the configured locale
func ProvideLocalizer(cfg *config.RuntimeConfig) (*Localizer, error) {
	return NewLocalizer(cfg.Locale)
}

// Language returns the resolved language
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// T returns the translated message for key. Keys missing from the catalog
// come back unchanged.
func (l *Localizer) T(key string, args ...any) string {
	if !l.known[key] {
		return key
	}
	return l.printer.Sprintf(key, args...)
}

// FormatPercent renders a fraction as a locale-formatted percentage with at
// most two fraction digits, e.g. 0.0612 -> "6.12%"
func (l *Localizer) FormatPercent(fraction decimal.Decimal) string {
	return l.printer.Sprint(number.Percent(fraction.InexactFloat64(), number.MaxFractionDigits(2)))
}

// Ensure the localizer implements the interface
var _ usecase.Localizer = (*Localizer)(nil)
