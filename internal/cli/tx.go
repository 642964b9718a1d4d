package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/swapguard/internal/app"
	"github.com/trebuchet-org/swapguard/internal/cli/render"
	"github.com/trebuchet-org/swapguard/internal/domain/models"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// NewTxCmd creates the tx command group
func NewTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Inspect and track recorded transactions",
	}

	cmd.AddCommand(newTxListCmd())
	cmd.AddCommand(newTxShowCmd())
	cmd.AddCommand(newTxWatchCmd())

	return cmd
}

func newTxListCmd() *cobra.Command {
	var (
		chain  string
		status string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recorded transactions, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListTransactionsParams{}
			if chain != "" {
				network, err := app.Networks.ResolveNetwork(cmd.Context(), chain)
				if err != nil {
					return err
				}
				params.ChainID = network.ChainID
			}
			if status != "" {
				s, err := parseTransactionStatus(status)
				if err != nil {
					return err
				}
				params.Status = s
			}

			result, err := app.ListTransactions.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewTransactionsRenderer(cmd.OutOrStdout(), app.Config.JSON).RenderList(result)
		},
	}

	cmd.Flags().StringVar(&chain, "chain", "", "Only transactions on this chain (name or ID)")
	cmd.Flags().StringVar(&status, "status", "", "Only transactions with this status: pending, success, failed")

	return cmd
}

func newTxShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			tx, err := app.ShowTransaction.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return render.NewTransactionsRenderer(cmd.OutOrStdout(), app.Config.JSON).
				RenderDetail(tx, explorerURL(cmd.Context(), app, tx.ChainID))
		},
	}
}

func newTxWatchCmd() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "watch [id...]",
		Short: "Fetch receipts for pending transactions",
		Long: `Look up the receipt of each pending transaction and move it to SUCCESS or
FAILED once mined. Without ids every pending transaction is checked; with
--pick the pending ones are offered in an interactive list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			ids := args
			if len(ids) == 0 && pick {
				ids, err = pickPending(cmd.Context(), app)
				if err != nil {
					return err
				}
				if len(ids) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No pending transactions")
					return nil
				}
			}

			result, err := app.WatchTransactions.Run(cmd.Context(), usecase.WatchTransactionsParams{IDs: ids})
			if err != nil {
				return err
			}

			return render.NewTransactionsRenderer(cmd.OutOrStdout(), app.Config.JSON).RenderWatch(result)
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "Choose the transactions to watch interactively")

	return cmd
}

// pickPending lets the user choose among pending transactions
func pickPending(ctx context.Context, app *app.App) ([]string, error) {
	pending, err := app.ListTransactions.Run(ctx, usecase.ListTransactionsParams{Status: models.TransactionStatusPending})
	if err != nil {
		return nil, err
	}
	if len(pending.Transactions) == 0 {
		return nil, nil
	}

	selected, err := app.TxSelector.SelectTransactions(ctx, pending.Transactions, "Select transactions to watch")
	if err != nil {
		return nil, err
	}
	return lo.Map(selected, func(tx *models.TransactionDetails, _ int) string { return tx.ID }), nil
}

func parseTransactionStatus(s string) (models.TransactionStatus, error) {
	status := models.TransactionStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case models.TransactionStatusPending, models.TransactionStatusSuccess, models.TransactionStatusFailed:
		return status, nil
	}
	return "", fmt.Errorf("invalid --status %q: expected pending, success or failed", s)
}

// explorerURL is empty when the chain is unknown or has no explorer
func explorerURL(ctx context.Context, app *app.App, chainID uint64) string {
	network, err := app.Networks.GetNetworkByChainID(ctx, chainID)
	if err != nil {
		return ""
	}
	return network.ExplorerURL
}
