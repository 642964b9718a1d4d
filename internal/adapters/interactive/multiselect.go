package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/trebuchet-org/swapguard/internal/domain/models"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// ErrSelectionCancelled is returned when the user quits a selection
var ErrSelectionCancelled = errors.New("selection cancelled")

// multiSelectModel is the bubbletea model for multi-select
type multiSelectModel struct {
	labels    []string
	cursor    int
	selected  map[int]bool
	title     string
	done      bool
	cancelled bool
}

func newMultiSelectModel(labels []string, title string) multiSelectModel {
	return multiSelectModel{
		labels:   labels,
		selected: make(map[int]bool),
		title:    title,
	}
}

// Init is the initial command for bubbletea
func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.labels)-1 {
			m.cursor++
		}
	case " ":
		m.selected[m.cursor] = !m.selected[m.cursor]
	case "a":
		all := len(m.indices()) < len(m.labels)
		for i := range m.labels {
			m.selected[i] = all
		}
	case "enter":
		if len(m.indices()) > 0 {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// indices returns the selected rows in display order
func (m multiSelectModel) indices() []int {
	var out []int
	for i := range m.labels {
		if m.selected[i] {
			out = append(out, i)
		}
	}
	return out
}

// View renders the UI
func (m multiSelectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(color.New(color.FgCyan, color.Bold).Sprintf("%s\n\n", m.title))

	for i, label := range m.labels {
		cursor := " "
		if m.cursor == i {
			cursor = color.New(color.FgCyan).Sprint("▸")
		}

		checkbox := color.New(color.FgWhite).Sprint("○")
		if m.selected[i] {
			checkbox = color.New(color.FgGreen).Sprint("✓")
		}

		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, checkbox, label))
	}

	b.WriteString("\n")
	b.WriteString(color.New(color.FgYellow).Sprint("↑/↓: move  Space: toggle  a: all  Enter: confirm  q: quit\n"))

	return b.String()
}

// SelectTransactions shows a multi-select over transaction records
func (s *SelectorAdapter) SelectTransactions(ctx context.Context, txs []*models.TransactionDetails, title string) ([]*models.TransactionDetails, error) {
	if len(txs) == 0 {
		return nil, fmt.Errorf("no transactions to select")
	}
	if s.config.NonInteractive {
		return nil, ErrNonInteractive
	}

	model := newMultiSelectModel(transactionLabels(txs), title)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("multi-select failed: %w", err)
	}

	m := finalModel.(multiSelectModel)
	if m.cancelled || !m.done {
		return nil, ErrSelectionCancelled
	}

	selected := make([]*models.TransactionDetails, 0, len(m.indices()))
	for _, i := range m.indices() {
		selected = append(selected, txs[i])
	}
	return selected, nil
}

func transactionLabels(txs []*models.TransactionDetails) []string {
	labels := make([]string, len(txs))
	for i, tx := range txs {
		hex := tx.Hash.Hex()
		hash := hex[:6] + "..." + hex[len(hex)-4:]
		labels[i] = fmt.Sprintf("%s %s %s",
			color.New(color.FgWhite).Sprint(hash),
			color.New(color.FgYellow).Sprintf("(%s)", strings.ToLower(string(tx.TypeInfo.Type))),
			color.New(color.Faint).Sprintf("chain %d, %s", tx.ChainID, strings.ToLower(string(tx.Status))),
		)
	}
	return labels
}

// Ensure the adapter implements the interface
var _ usecase.TransactionSelector = (*SelectorAdapter)(nil)
