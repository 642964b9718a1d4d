package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/swapguard/internal/adapters/interactive"
	"github.com/trebuchet-org/swapguard/internal/app"
	"github.com/trebuchet-org/swapguard/internal/cli/render"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/models"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// ErrSendCancelled is returned when the user declines the confirmation
var ErrSendCancelled = errors.New("transaction cancelled")

type sendOptions struct {
	id                   string
	account              string
	chain                string
	to                   string
	value                string
	data                 string
	nonce                string
	gasLimit             string
	gasPrice             string
	maxFeePerGas         string
	maxPriorityFeePerGas string
	txType               string
	private              bool
	yes                  bool
	analytics            map[string]string
}

// NewSendCmd creates the send command
func NewSendCmd() *cobra.Command {
	opts := &sendOptions{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Sign, broadcast and record a transaction",
		Long: `Sign a transaction with a configured account, broadcast it and append it to
the local transaction log as PENDING.

Fields left unset (nonce, gas limit, fees) are filled from the network.
With --private the transaction goes to the network's private RPC endpoint;
there is no fallback to the public one.`,
		Example: `  swapguard send -n sepolia --to 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 --value 0x38d7ea4c68000
  swapguard send -n mainnet --account trader --to 0x... --data 0x... --private --type swap --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			return runSend(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "", "Record id (defaults to a generated UUID)")
	cmd.Flags().StringVarP(&opts.account, "account", "a", "", "Account to send from (defaults to the default account)")
	cmd.Flags().StringVar(&opts.chain, "chain", "", "Chain name or ID (defaults to --network)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Recipient address")
	cmd.Flags().StringVar(&opts.value, "value", "", "Value in wei, decimal or 0x-hex")
	cmd.Flags().StringVar(&opts.data, "data", "", "Calldata as 0x-hex")
	cmd.Flags().StringVar(&opts.nonce, "nonce", "", "Nonce (defaults to the pending nonce)")
	cmd.Flags().StringVar(&opts.gasLimit, "gas-limit", "", "Gas limit (defaults to an estimate)")
	cmd.Flags().StringVar(&opts.gasPrice, "gas-price", "", "Legacy gas price in wei")
	cmd.Flags().StringVar(&opts.maxFeePerGas, "max-fee-per-gas", "", "EIP-1559 max fee per gas in wei")
	cmd.Flags().StringVar(&opts.maxPriorityFeePerGas, "max-priority-fee-per-gas", "", "EIP-1559 priority fee in wei")
	cmd.Flags().StringVar(&opts.txType, "type", "auto", "Transaction kind recorded in the log: auto, swap, send, approve, wrap, unknown")
	cmd.Flags().BoolVar(&opts.private, "private", false, "Submit through the network's private RPC endpoint")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().StringToStringVar(&opts.analytics, "analytics", nil, "Extra analytics properties (key=value,...)")

	return cmd
}

func runSend(cmd *cobra.Command, app *app.App, opts *sendOptions) error {
	ctx := cmd.Context()

	network, err := resolveSendNetwork(ctx, app, opts.chain)
	if err != nil {
		return err
	}

	account, err := resolveAccount(ctx, app, opts.account)
	if err != nil {
		return err
	}

	typeInfo, err := transactionTypeInfo(app, opts)
	if err != nil {
		return err
	}

	params := usecase.SendTransactionParams{
		TxID:    opts.id,
		ChainID: network.ChainID,
		Account: *account,
		Request: models.RawTransactionRequest{
			From:                 account.Address.Hex(),
			To:                   opts.to,
			Value:                opts.value,
			Data:                 opts.data,
			Nonce:                opts.nonce,
			GasLimit:             opts.gasLimit,
			GasPrice:             opts.gasPrice,
			MaxFeePerGas:         opts.maxFeePerGas,
			MaxPriorityFeePerGas: opts.maxPriorityFeePerGas,
			ChainID:              strconv.FormatUint(network.ChainID, 10),
		},
		SubmitViaPrivateRPC:   opts.private,
		TypeInfo:              typeInfo,
		TransactionOriginType: models.TransactionOriginInternal,
		Analytics:             toAnyMap(opts.analytics),
	}

	if !opts.yes {
		prompt := fmt.Sprintf("Send from %s to %s on %s", account.Name, displayRecipient(opts.to), network.Name)
		ok, err := app.Confirmer.Confirm(ctx, prompt)
		if errors.Is(err, interactive.ErrNonInteractive) {
			return fmt.Errorf("confirmation required: pass --yes in non-interactive mode")
		}
		if err != nil {
			return err
		}
		if !ok {
			return ErrSendCancelled
		}
	}

	result, err := app.SendTransaction.Run(ctx, params)
	if result != nil {
		renderer := render.NewTransactionsRenderer(cmd.OutOrStdout(), app.Config.JSON)
		if renderErr := renderer.RenderSent(result, network.ExplorerURL); renderErr != nil && err == nil {
			err = renderErr
		}
	}
	return err
}

// resolveSendNetwork prefers --chain and falls back to the global --network
func resolveSendNetwork(ctx context.Context, app *app.App, chain string) (*domain.Network, error) {
	if chain != "" {
		return app.Networks.ResolveNetwork(ctx, chain)
	}
	if app.Config.Network == nil {
		return nil, fmt.Errorf("no network selected: use --network or --chain")
	}
	return app.Config.Network, nil
}

// resolveAccount looks up a named account, or the default one, and asks the
// user to pick when neither resolves
func resolveAccount(ctx context.Context, app *app.App, name string) (*domain.AccountMeta, error) {
	account, err := app.Accounts.GetAccount(ctx, name)
	if err == nil || name != "" {
		return account, err
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return app.Selector.SelectAccount(ctx, app.Accounts.ListAccounts(ctx), "Select account")
}

// transactionTypeInfo classifies the calldata for --type auto
func transactionTypeInfo(app *app.App, opts *sendOptions) (models.TransactionTypeInfo, error) {
	if strings.EqualFold(strings.TrimSpace(opts.txType), "auto") {
		data, err := hexutil.Decode(lo.Ternary(opts.data == "", "0x", opts.data))
		if err != nil {
			return models.TransactionTypeInfo{}, fmt.Errorf("invalid --data: %w", err)
		}
		return app.Classifier.Classify(opts.to, data), nil
	}

	txType, err := parseTransactionType(opts.txType)
	if err != nil {
		return models.TransactionTypeInfo{}, err
	}
	return models.TransactionTypeInfo{Type: txType, Recipient: opts.to}, nil
}

func parseTransactionType(s string) (models.TransactionType, error) {
	t := models.TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case models.TransactionTypeSwap, models.TransactionTypeSend, models.TransactionTypeApprove,
		models.TransactionTypeWrap, models.TransactionTypeUnknown:
		return t, nil
	}
	return "", fmt.Errorf("invalid --type %q: expected swap, send, approve, wrap or unknown", s)
}

func displayRecipient(to string) string {
	if to == "" {
		return "(contract creation)"
	}
	if short, err := domain.ShortenAddress(to, domain.DefaultShortenChars); err == nil {
		return short
	}
	return to
}

func toAnyMap(m map[string]string) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return lo.MapValues(m, func(v string, _ string) any { return v })
}
