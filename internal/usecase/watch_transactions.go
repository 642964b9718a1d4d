package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/samber/lo"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/models"
)

// WatchTransactionsParams selects the records to refresh
type WatchTransactionsParams struct {
	// IDs limits the pass to these records; empty means every pending record
	IDs []string
}

// WatchTransactionsResult lists what the pass observed
type WatchTransactionsResult struct {
	Updated      []*models.TransactionDetails
	StillPending []*models.TransactionDetails
	Failed       map[string]error
}

// WatchTransactions moves pending records to a terminal status once their
// receipt is available
type WatchTransactions struct {
	store     TransactionStore
	providers ProviderResolver
	sink      ProgressSink
	log       *slog.Logger
	now       func() time.Time
}

// NewWatchTransactions creates a new WatchTransactions use case
func NewWatchTransactions(store TransactionStore, providers ProviderResolver, sink ProgressSink, log *slog.Logger) *WatchTransactions {
	return &WatchTransactions{
		store:     store,
		providers: providers,
		sink:      sink,
		log:       log.With("component", "WatchTransactions"),
		now:       time.Now,
	}
}

// Run performs one refresh pass. Per-record lookup failures are collected in
// the result rather than aborting the pass.
func (uc *WatchTransactions) Run(ctx context.Context, params WatchTransactionsParams) (*WatchTransactionsResult, error) {
	txs, err := uc.selectTransactions(ctx, params.IDs)
	if err != nil {
		return nil, err
	}

	result := &WatchTransactionsResult{Failed: map[string]error{}}
	for i, tx := range txs {
		uc.sink.OnProgress(ctx, ProgressEvent{
			Stage:   "watching",
			Current: i + 1,
			Total:   len(txs),
			Message: fmt.Sprintf("Checking %s", tx.Hash.Hex()),
			Spinner: true,
		})

		if tx.Status.IsFinal() {
			continue
		}

		receipt, err := uc.fetchReceipt(ctx, tx)
		if err != nil {
			uc.log.Warn("receipt lookup failed", "id", tx.ID, "hash", tx.Hash.Hex(), "error", err)
			result.Failed[tx.ID] = err
			continue
		}
		if receipt == nil {
			result.StillPending = append(result.StillPending, tx)
			continue
		}

		updated, err := uc.store.UpdateTransaction(ctx, tx.ID, func(record *models.TransactionDetails) error {
			applyReceipt(record, receipt, uc.now())
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to update transaction %s: %w", tx.ID, err)
		}
		result.Updated = append(result.Updated, updated)
	}

	return result, nil
}

func (uc *WatchTransactions) selectTransactions(ctx context.Context, ids []string) ([]*models.TransactionDetails, error) {
	if len(ids) == 0 {
		return uc.store.ListTransactions(ctx, TransactionFilter{Status: models.TransactionStatusPending})
	}

	txs := make([]*models.TransactionDetails, 0, len(ids))
	for _, id := range lo.Uniq(ids) {
		tx, err := uc.store.GetTransaction(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", id, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// fetchReceipt returns nil, nil while the transaction is not yet mined
func (uc *WatchTransactions) fetchReceipt(ctx context.Context, tx *models.TransactionDetails) (*types.Receipt, error) {
	provider, err := uc.providers.GetProvider(ctx, tx.ChainID, domain.RPCTypePublic)
	if err != nil {
		return nil, err
	}
	receipt, err := provider.TransactionReceipt(ctx, tx.Hash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func applyReceipt(record *models.TransactionDetails, receipt *types.Receipt, now time.Time) {
	if receipt.Status == types.ReceiptStatusSuccessful {
		record.Status = models.TransactionStatusSuccess
	} else {
		record.Status = models.TransactionStatusFailed
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}
	record.Receipt = &models.TransactionReceipt{
		BlockNumber:   blockNumber,
		BlockHash:     receipt.BlockHash,
		GasUsed:       receipt.GasUsed,
		ConfirmedTime: now,
	}
}
