package render

import (
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// humanize turns an UPPER_SNAKE identifier into "Upper Snake"
func humanize(s string) string {
	return titleCaser.String(strings.ReplaceAll(strings.ToLower(s), "_", " "))
}

// severityColor maps the theme text token of a severity to a terminal color
func severityColor(severity domain.WarningSeverity) *color.Color {
	switch severity {
	case domain.SeverityHigh:
		return color.New(color.FgRed, color.Bold)
	case domain.SeverityMedium:
		return color.New(color.FgYellow)
	case domain.SeverityLow:
		return color.New(color.FgWhite)
	default:
		return color.New(color.Faint)
	}
}

func statusColor(status string) *color.Color {
	switch strings.ToUpper(status) {
	case "SUCCESS", "UP":
		return color.New(color.FgGreen)
	case "FAILED", "DOWN":
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

// shortHash renders 0x1234...abcd
func shortHash(hex string) string {
	if len(hex) <= 12 {
		return hex
	}
	return hex[:6] + "..." + hex[len(hex)-4:]
}
