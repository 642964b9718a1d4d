package transactions

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/samber/lo"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/config"
	"github.com/trebuchet-org/swapguard/internal/domain/models"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

const TransactionsFile = "transactions.json"

// FileRepository is the append-only transaction log, kept in memory and
// mirrored to a JSON file. An empty root dir keeps it purely in memory.
type FileRepository struct {
	rootDir      string
	mu           sync.RWMutex
	transactions map[string]*models.TransactionDetails
	order        []string // ids in insertion order
}

// NewFileRepository creates the store and loads any existing log
func NewFileRepository(rootDir string) (*FileRepository, error) {
	if rootDir != "" {
		if err := os.MkdirAll(rootDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	m := &FileRepository{
		rootDir:      rootDir,
		transactions: make(map[string]*models.TransactionDetails),
	}

	if err := m.load(); err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return m, nil
}

// ProvideFileRepository builds the store rooted at the configured data dir
func ProvideFileRepository(cfg *config.RuntimeConfig) (*FileRepository, error) {
	return NewFileRepository(cfg.DataDir)
}

func (m *FileRepository) path() string {
	return filepath.Join(m.rootDir, TransactionsFile)
}

// load reads the log file, if there is one
func (m *FileRepository) load() error {
	if m.rootDir == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var records []*models.TransactionDetails
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	for _, tx := range records {
		if _, dup := m.transactions[tx.ID]; dup {
			return fmt.Errorf("duplicate transaction id %q in %s", tx.ID, TransactionsFile)
		}
		m.transactions[tx.ID] = tx
		m.order = append(m.order, tx.ID)
	}
	return nil
}

// save writes the whole log; callers hold the write lock
func (m *FileRepository) save() error {
	if m.rootDir == "" {
		return nil
	}

	records := lo.Map(m.order, func(id string, _ int) *models.TransactionDetails {
		return m.transactions[id]
	})
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	// Write to temp file first
	tmpPath := m.path() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmpPath, m.path())
}

// AddTransaction appends a new record
func (m *FileRepository) AddTransaction(ctx context.Context, tx *models.TransactionDetails) error {
	if tx.ID == "" {
		return fmt.Errorf("transaction id is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.transactions[tx.ID]; exists {
		return fmt.Errorf("transaction %s: %w", tx.ID, domain.ErrAlreadyExists)
	}

	m.transactions[tx.ID] = cloneDetails(tx)
	m.order = append(m.order, tx.ID)

	if err := m.save(); err != nil {
		delete(m.transactions, tx.ID)
		m.order = m.order[:len(m.order)-1]
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}

// UpdateTransaction applies update to a copy of the record and stores the
// copy only if update succeeds
func (m *FileRepository) UpdateTransaction(ctx context.Context, id string, update func(tx *models.TransactionDetails) error) (*models.TransactionDetails, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.transactions[id]
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}

	next := cloneDetails(current)
	if err := update(next); err != nil {
		return nil, err
	}
	// id is the key and may not change
	next.ID = id

	m.transactions[id] = next
	if err := m.save(); err != nil {
		m.transactions[id] = current
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}
	return cloneDetails(next), nil
}

// GetTransaction returns a copy of one record
func (m *FileRepository) GetTransaction(ctx context.Context, id string) (*models.TransactionDetails, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tx, ok := m.transactions[id]
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	return cloneDetails(tx), nil
}

// ListTransactions returns copies of matching records in insertion order
func (m *FileRepository) ListTransactions(ctx context.Context, filter usecase.TransactionFilter) ([]*models.TransactionDetails, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*models.TransactionDetails, 0, len(m.order))
	for _, id := range m.order {
		tx := m.transactions[id]
		if filter.ChainID != 0 && tx.ChainID != filter.ChainID {
			continue
		}
		if filter.Status != "" && tx.Status != filter.Status {
			continue
		}
		if filter.From != nil && tx.From != *filter.From {
			continue
		}
		result = append(result, cloneDetails(tx))
	}
	return result, nil
}

func cloneDetails(tx *models.TransactionDetails) *models.TransactionDetails {
	c := *tx
	c.Options.Request = tx.Options.Request.Clone()
	if tx.Receipt != nil {
		receipt := *tx.Receipt
		c.Receipt = &receipt
	}
	return &c
}

// Ensure the repository implements the interface
var _ usecase.TransactionStore = (*FileRepository)(nil)
