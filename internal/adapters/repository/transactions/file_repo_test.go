package transactions

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/models"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

var (
	alice = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob   = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func record(id string, chainID uint64, from common.Address, status models.TransactionStatus) *models.TransactionDetails {
	return &models.TransactionDetails{
		ID:        id,
		ChainID:   chainID,
		Hash:      common.HexToHash("0x" + id),
		Routing:   "CLASSIC",
		From:      from,
		Status:    status,
		AddedTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TypeInfo:  models.TransactionTypeInfo{Type: models.TransactionTypeSwap},
	}
}

func TestFileRepository_AddAndGet(t *testing.T) {
	ctx := context.Background()
	repo, err := NewFileRepository("")
	require.NoError(t, err)

	tx := record("a1", 1, alice, models.TransactionStatusPending)
	require.NoError(t, repo.AddTransaction(ctx, tx))

	t.Run("duplicate id", func(t *testing.T) {
		err := repo.AddTransaction(ctx, record("a1", 1, alice, models.TransactionStatusPending))
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.GetTransaction(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("returned record is a copy", func(t *testing.T) {
		got, err := repo.GetTransaction(ctx, "a1")
		require.NoError(t, err)
		got.Status = models.TransactionStatusFailed

		again, err := repo.GetTransaction(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, models.TransactionStatusPending, again.Status)
	})

	t.Run("caller's record is not aliased", func(t *testing.T) {
		tx.Status = models.TransactionStatusSuccess
		got, err := repo.GetTransaction(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, models.TransactionStatusPending, got.Status)
	})
}

func TestFileRepository_RequestIsNotShared(t *testing.T) {
	ctx := context.Background()
	repo, err := NewFileRepository("")
	require.NoError(t, err)

	tx := record("r1", 1, alice, models.TransactionStatusPending)
	raw := models.RawTransactionRequest{To: bob.Hex(), Value: "1000", Nonce: "3", Data: "0xabcd"}
	tx.Options.Request, err = raw.Hexlify()
	require.NoError(t, err)
	require.NoError(t, repo.AddTransaction(ctx, tx))

	// mutate the caller's record in place
	tx.Options.Request.Value.ToInt().SetInt64(1)
	tx.Options.Request.Data[0] = 0xff

	got, err := repo.GetTransaction(ctx, "r1")
	require.NoError(t, err)
	*got.Options.Request.Nonce = 99
	*got.Options.Request.To = alice

	listed, err := repo.ListTransactions(ctx, usecase.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	listed[0].Options.Request.Data[1] = 0xff

	stored, err := repo.GetTransaction(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), stored.Options.Request.Value.ToInt().Int64())
	assert.Equal(t, uint64(3), uint64(*stored.Options.Request.Nonce))
	assert.Equal(t, bob, *stored.Options.Request.To)
	assert.Equal(t, []byte{0xab, 0xcd}, []byte(stored.Options.Request.Data))
}

func TestFileRepository_UpdateTransaction(t *testing.T) {
	ctx := context.Background()
	repo, err := NewFileRepository("")
	require.NoError(t, err)
	require.NoError(t, repo.AddTransaction(ctx, record("a1", 1, alice, models.TransactionStatusPending)))

	t.Run("applies update", func(t *testing.T) {
		updated, err := repo.UpdateTransaction(ctx, "a1", func(tx *models.TransactionDetails) error {
			tx.Status = models.TransactionStatusSuccess
			tx.Receipt = &models.TransactionReceipt{BlockNumber: 42}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, models.TransactionStatusSuccess, updated.Status)

		got, err := repo.GetTransaction(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, uint64(42), got.Receipt.BlockNumber)
	})

	t.Run("failed update leaves record untouched", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := repo.UpdateTransaction(ctx, "a1", func(tx *models.TransactionDetails) error {
			tx.Status = models.TransactionStatusFailed
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := repo.GetTransaction(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, models.TransactionStatusSuccess, got.Status)
	})

	t.Run("id cannot change", func(t *testing.T) {
		updated, err := repo.UpdateTransaction(ctx, "a1", func(tx *models.TransactionDetails) error {
			tx.ID = "other"
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "a1", updated.ID)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.UpdateTransaction(ctx, "nope", func(*models.TransactionDetails) error { return nil })
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestFileRepository_ListTransactions(t *testing.T) {
	ctx := context.Background()
	repo, err := NewFileRepository("")
	require.NoError(t, err)

	for _, tx := range []*models.TransactionDetails{
		record("a1", 1, alice, models.TransactionStatusPending),
		record("a2", 10, alice, models.TransactionStatusSuccess),
		record("b1", 1, bob, models.TransactionStatusFailed),
		record("b2", 1, bob, models.TransactionStatusPending),
	} {
		require.NoError(t, repo.AddTransaction(ctx, tx))
	}

	tests := []struct {
		name    string
		filter  usecase.TransactionFilter
		wantIDs []string
	}{
		{name: "all in insertion order", wantIDs: []string{"a1", "a2", "b1", "b2"}},
		{name: "by chain", filter: usecase.TransactionFilter{ChainID: 1}, wantIDs: []string{"a1", "b1", "b2"}},
		{name: "by status", filter: usecase.TransactionFilter{Status: models.TransactionStatusPending}, wantIDs: []string{"a1", "b2"}},
		{name: "by sender", filter: usecase.TransactionFilter{From: &bob}, wantIDs: []string{"b1", "b2"}},
		{name: "combined", filter: usecase.TransactionFilter{ChainID: 10, From: &bob}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListTransactions(ctx, tt.filter)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, tx := range got {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFileRepository_Persistence(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := NewFileRepository(dir)
	require.NoError(t, err)
	require.NoError(t, repo.AddTransaction(ctx, record("a1", 1, alice, models.TransactionStatusPending)))
	require.NoError(t, repo.AddTransaction(ctx, record("a2", 1, alice, models.TransactionStatusPending)))
	_, err = repo.UpdateTransaction(ctx, "a2", func(tx *models.TransactionDetails) error {
		tx.Status = models.TransactionStatusSuccess
		return nil
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, TransactionsFile))
	assert.NoFileExists(t, filepath.Join(dir, TransactionsFile+".tmp"))

	reopened, err := NewFileRepository(dir)
	require.NoError(t, err)
	got, err := reopened.ListTransactions(ctx, usecase.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, models.TransactionStatusSuccess, got[1].Status)
	assert.Equal(t, alice, got[1].From)
}

func TestFileRepository_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TransactionsFile), []byte("{not json"), 0644))

	_, err := NewFileRepository(dir)
	assert.Error(t, err)
}
