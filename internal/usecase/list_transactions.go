package usecase

import (
	"context"
	"sort"

	"github.com/samber/lo"
	"github.com/trebuchet-org/swapguard/internal/domain/models"
)

// ListTransactionsParams contains parameters for listing transactions
type ListTransactionsParams struct {
	ChainID uint64
	Status  models.TransactionStatus
}

// TransactionListResult contains transactions and per-status counts
type TransactionListResult struct {
	Transactions []*models.TransactionDetails
	ByStatus     map[models.TransactionStatus]int
}

// ListTransactions is the use case for listing recorded transactions
type ListTransactions struct {
	store TransactionStore
	sink  ProgressSink
}

// NewListTransactions creates a new ListTransactions use case
func NewListTransactions(store TransactionStore, sink ProgressSink) *ListTransactions {
	return &ListTransactions{
		store: store,
		sink:  sink,
	}
}

// Run returns matching transactions, newest first
func (uc *ListTransactions) Run(ctx context.Context, params ListTransactionsParams) (*TransactionListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading transactions",
		Spinner: true,
	})

	txs, err := uc.store.ListTransactions(ctx, TransactionFilter{
		ChainID: params.ChainID,
		Status:  params.Status,
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].AddedTime.After(txs[j].AddedTime)
	})

	return &TransactionListResult{
		Transactions: txs,
		ByStatus: lo.CountValuesBy(txs, func(tx *models.TransactionDetails) models.TransactionStatus {
			return tx.Status
		}),
	}, nil
}

// ShowTransaction is the use case for showing one transaction
type ShowTransaction struct {
	store TransactionStore
}

// NewShowTransaction creates a new ShowTransaction use case
func NewShowTransaction(store TransactionStore) *ShowTransaction {
	return &ShowTransaction{store: store}
}

// Run looks a transaction up by id
func (uc *ShowTransaction) Run(ctx context.Context, id string) (*models.TransactionDetails, error) {
	return uc.store.GetTransaction(ctx, id)
}
