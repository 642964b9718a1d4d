package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/config"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// ErrNonInteractive is returned when a prompt is needed under --non-interactive
var ErrNonInteractive = errors.New("interactive prompt not available in non-interactive mode")

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectAccount selects an account from a list
func (s *SelectorAdapter) SelectAccount(ctx context.Context, accounts []domain.AccountMeta, prompt string) (*domain.AccountMeta, error) {
	if len(accounts) == 0 {
		return nil, fmt.Errorf("no accounts configured")
	}

	// If only one account, return it directly
	if len(accounts) == 1 {
		return &accounts[0], nil
	}

	if s.config.NonInteractive {
		return nil, ErrNonInteractive
	}

	options := formatAccountOptions(accounts)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return &accounts[index], nil
}

// Confirm asks a yes/no question. Anything but an explicit yes is a no.
func (s *SelectorAdapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if s.config.NonInteractive {
		return false, ErrNonInteractive
	}

	confirm := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}

	_, err := confirm.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, err
	}
}

// formatAccountOptions creates display strings for account selection
func formatAccountOptions(accounts []domain.AccountMeta) []string {
	options := make([]string, len(accounts))
	for i, account := range accounts {
		name := color.New(color.FgWhite, color.Bold).Sprint(account.Name)
		address := color.New(color.FgBlue).Sprint(account.Address.Hex())

		if !account.CanSign() {
			kind := color.New(color.FgYellow).Sprint("[watch-only]")
			options[i] = fmt.Sprintf("%s %s (%s)", name, kind, address)
		} else {
			options[i] = fmt.Sprintf("%s (%s)", name, address)
		}
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		// Convert to lowercase for case-insensitive search
		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		// First try simple substring match
		if strings.Contains(item, input) {
			return true
		}

		// Then try fuzzy match
		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.AccountSelector = (*SelectorAdapter)(nil)
	_ usecase.Confirmer       = (*SelectorAdapter)(nil)
)
