package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/swapguard/internal/domain/models"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// TransactionsRenderer renders transaction records
type TransactionsRenderer struct {
	out  io.Writer
	json bool
}

// NewTransactionsRenderer creates a new transactions renderer
func NewTransactionsRenderer(out io.Writer, json bool) *TransactionsRenderer {
	return &TransactionsRenderer{out: out, json: json}
}

// RenderList renders a transaction list with per-status totals
func (r *TransactionsRenderer) RenderList(result *usecase.TransactionListResult) error {
	if r.json {
		if result.Transactions == nil {
			return writeJSON(r.out, []*models.TransactionDetails{})
		}
		return writeJSON(r.out, result.Transactions)
	}

	if len(result.Transactions) == 0 {
		fmt.Fprintln(r.out, "No transactions found")
		return nil
	}

	t := newTable(r.out, table.Row{"ID", "Hash", "Type", "Chain", "Status", "Added"})
	for _, tx := range result.Transactions {
		t.AppendRow(table.Row{
			tx.ID,
			shortHash(tx.Hash.Hex()),
			humanize(string(tx.TypeInfo.Type)),
			tx.ChainID,
			statusColor(string(tx.Status)).Sprint(humanize(string(tx.Status))),
			tx.AddedTime.Local().Format("2006-01-02 15:04:05"),
		})
	}
	t.Render()

	statuses := make([]string, 0, len(result.ByStatus))
	for status, count := range result.ByStatus {
		statuses = append(statuses, fmt.Sprintf("%d %s", count, strings.ToLower(string(status))))
	}
	sort.Strings(statuses)
	fmt.Fprintf(r.out, "\nTotal: %d (%s)\n", len(result.Transactions), strings.Join(statuses, ", "))
	return nil
}

// RenderDetail renders one transaction record
func (r *TransactionsRenderer) RenderDetail(tx *models.TransactionDetails, explorerURL string) error {
	if r.json {
		return writeJSON(r.out, tx)
	}

	label := color.New(color.Faint)
	row := func(name string, value any) {
		fmt.Fprintf(r.out, "  %s %v\n", label.Sprintf("%-13s", name+":"), value)
	}

	fmt.Fprintln(r.out, color.New(color.FgCyan, color.Bold).Sprintf("Transaction %s", tx.ID))
	row("Hash", tx.Hash.Hex())
	row("Status", statusColor(string(tx.Status)).Sprint(humanize(string(tx.Status))))
	row("Type", humanize(string(tx.TypeInfo.Type)))
	row("Chain", tx.ChainID)
	row("From", tx.From.Hex())
	if to := tx.Options.Request.To; to != nil {
		row("To", to.Hex())
	}
	row("Routing", tx.Routing)
	if tx.Options.SubmitViaPrivateRPC {
		row("Submitted via", "private RPC")
	}
	row("Origin", humanize(string(tx.TransactionOriginType)))
	row("Added", tx.AddedTime.Local().Format("2006-01-02 15:04:05"))

	if tx.TypeInfo.Type == models.TransactionTypeSwap {
		in, out := tx.TypeInfo.SwapAmounts()
		row("Trade", humanize(string(tx.TypeInfo.TradeType)))
		row("Input", fmt.Sprintf("%s %s", in, tx.TypeInfo.InputCurrencyID))
		row("Output", fmt.Sprintf("%s %s", out, tx.TypeInfo.OutputCurrencyID))
	}

	if tx.Receipt != nil {
		row("Block", tx.Receipt.BlockNumber)
		row("Gas used", tx.Receipt.GasUsed)
		row("Confirmed", tx.Receipt.ConfirmedTime.Local().Format("2006-01-02 15:04:05"))
	}
	if explorerURL != "" {
		row("Explorer", color.New(color.FgBlue, color.Underline).Sprintf("%s/tx/%s", strings.TrimRight(explorerURL, "/"), tx.Hash.Hex()))
	}
	return nil
}

// RenderWatch renders the outcome of a status refresh pass
func (r *TransactionsRenderer) RenderWatch(result *usecase.WatchTransactionsResult) error {
	if r.json {
		failed := make(map[string]string, len(result.Failed))
		for id, err := range result.Failed {
			failed[id] = err.Error()
		}
		return writeJSON(r.out, map[string]any{
			"updated":      result.Updated,
			"stillPending": result.StillPending,
			"failed":       failed,
		})
	}

	if len(result.Updated)+len(result.StillPending)+len(result.Failed) == 0 {
		fmt.Fprintln(r.out, "No pending transactions")
		return nil
	}

	for _, tx := range result.Updated {
		msg := fmt.Sprintf("%s %s", tx.ID, strings.ToLower(string(tx.Status)))
		if tx.Status == models.TransactionStatusSuccess {
			fmt.Fprintln(r.out, FormatSuccess(msg))
		} else {
			fmt.Fprintln(r.out, FormatError(msg))
		}
	}
	for _, tx := range result.StillPending {
		fmt.Fprintf(r.out, "⏳ %s still pending (%s)\n", tx.ID, shortHash(tx.Hash.Hex()))
	}
	ids := make([]string, 0, len(result.Failed))
	for id := range result.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s: %v", id, result.Failed[id])))
	}
	return nil
}

// RenderSent renders a successful submission
func (r *TransactionsRenderer) RenderSent(result *usecase.SendTransactionResult, explorerURL string) error {
	if r.json {
		return writeJSON(r.out, map[string]any{
			"hash":        result.Hash.Hex(),
			"request":     result.PopulatedRequest,
			"transaction": result.Transaction,
		})
	}

	fmt.Fprintln(r.out, FormatSuccess("Transaction submitted"))
	if result.Transaction != nil {
		return r.RenderDetail(result.Transaction, explorerURL)
	}
	fmt.Fprintf(r.out, "  Hash: %s\n", result.Hash.Hex())
	return nil
}
