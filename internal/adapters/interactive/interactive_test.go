package interactive

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/config"
	"github.com/trebuchet-org/swapguard/internal/domain/models"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m multiSelectModel, keys ...string) multiSelectModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(multiSelectModel)
	}
	return m
}

func TestMultiSelectModel(t *testing.T) {
	labels := []string{"a", "b", "c"}

	tests := []struct {
		name          string
		keys          []string
		wantIndices   []int
		wantDone      bool
		wantCancelled bool
	}{
		{name: "enter without selection stays open", keys: []string{"enter"}},
		{name: "toggle and confirm", keys: []string{"down", " ", "enter"}, wantIndices: []int{1}, wantDone: true},
		{name: "toggle twice clears", keys: []string{" ", " "}},
		{name: "cursor stops at edges", keys: []string{"up", "down", "down", "down", " ", "enter"}, wantIndices: []int{2}, wantDone: true},
		{name: "select all", keys: []string{"a", "enter"}, wantIndices: []int{0, 1, 2}, wantDone: true},
		{name: "select all twice clears", keys: []string{"a", "a"}},
		{name: "quit cancels", keys: []string{" ", "q"}, wantIndices: []int{0}, wantCancelled: true},
		{name: "ctrl+c cancels", keys: []string{"ctrl+c"}, wantCancelled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(newMultiSelectModel(labels, "pick"), tt.keys...)
			assert.Equal(t, tt.wantIndices, m.indices())
			assert.Equal(t, tt.wantDone, m.done)
			assert.Equal(t, tt.wantCancelled, m.cancelled)
		})
	}
}

func TestMultiSelectModel_View(t *testing.T) {
	color.NoColor = true
	m := press(newMultiSelectModel([]string{"first", "second"}, "Pick transactions"), "down", " ")

	view := m.View()
	assert.Contains(t, view, "Pick transactions")
	assert.Contains(t, view, "  ○ first")
	assert.Contains(t, view, "▸ ✓ second")

	m = press(m, "enter")
	assert.Empty(t, m.View())
}

func TestSelectorAdapter_NonInteractive(t *testing.T) {
	ctx := context.Background()
	s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})

	accounts := []domain.AccountMeta{
		{Name: "hot", Address: common.HexToAddress("0x1"), Type: domain.AccountTypePrivateKey},
		{Name: "watch", Address: common.HexToAddress("0x2"), Type: domain.AccountTypeReadonly},
	}

	t.Run("single account needs no prompt", func(t *testing.T) {
		acc, err := s.SelectAccount(ctx, accounts[:1], "Account")
		require.NoError(t, err)
		assert.Equal(t, "hot", acc.Name)
	})

	t.Run("several accounts", func(t *testing.T) {
		_, err := s.SelectAccount(ctx, accounts, "Account")
		assert.ErrorIs(t, err, ErrNonInteractive)
	})

	t.Run("no accounts", func(t *testing.T) {
		_, err := s.SelectAccount(ctx, nil, "Account")
		assert.Error(t, err)
	})

	t.Run("confirm", func(t *testing.T) {
		ok, err := s.Confirm(ctx, "Submit?")
		assert.ErrorIs(t, err, ErrNonInteractive)
		assert.False(t, ok)
	})

	t.Run("transactions", func(t *testing.T) {
		_, err := s.SelectTransactions(ctx, []*models.TransactionDetails{{ID: "a"}}, "Pick")
		assert.ErrorIs(t, err, ErrNonInteractive)
	})
}

func TestFormatAccountOptions(t *testing.T) {
	color.NoColor = true
	options := formatAccountOptions([]domain.AccountMeta{
		{Name: "hot", Address: common.HexToAddress("0x1"), Type: domain.AccountTypePrivateKey},
		{Name: "watch", Address: common.HexToAddress("0x2"), Type: domain.AccountTypeReadonly},
	})
	assert.Equal(t, "hot (0x0000000000000000000000000000000000000001)", options[0])
	assert.Equal(t, "watch [watch-only] (0x0000000000000000000000000000000000000002)", options[1])

	search := createFuzzySearchFunc(options)
	assert.True(t, search("", 0))
	assert.True(t, search("wtch", 1))
	assert.False(t, search("zzz", 0))
}
