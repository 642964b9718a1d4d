package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/models"
)

// ChainProvider is the subset of an ethclient connection the wallet needs
type ChainProvider interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

// ProviderResolver hands out connections per chain and routing kind
type ProviderResolver interface {
	GetProvider(ctx context.Context, chainID uint64, rpcType domain.RPCType) (ChainProvider, error)
}

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	ListNetworks(ctx context.Context) []*domain.Network
	ResolveNetwork(ctx context.Context, input string) (*domain.Network, error)
	GetNetworkByChainID(ctx context.Context, chainID uint64) (*domain.Network, error)
}

// Signer holds key material for one account
type Signer interface {
	Address() common.Address
	SignTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// SignerManager resolves signing credentials for accounts
type SignerManager interface {
	GetSignerForAccount(ctx context.Context, account domain.AccountMeta) (Signer, error)
}

// AccountRepository lists the accounts known to the wallet
type AccountRepository interface {
	GetAccount(ctx context.Context, name string) (*domain.AccountMeta, error)
	ListAccounts(ctx context.Context) []domain.AccountMeta
}

// TransactionFilter narrows ListTransactions
type TransactionFilter struct {
	ChainID uint64
	Status  models.TransactionStatus
	From    *common.Address
}

// TransactionStore is the append-only transaction log. Records are only
// changed through UpdateTransaction.
type TransactionStore interface {
	AddTransaction(ctx context.Context, tx *models.TransactionDetails) error
	UpdateTransaction(ctx context.Context, id string, update func(tx *models.TransactionDetails) error) (*models.TransactionDetails, error)
	GetTransaction(ctx context.Context, id string) (*models.TransactionDetails, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]*models.TransactionDetails, error)
}

// AnalyticsSink receives named events. Delivery failures never reach the caller.
type AnalyticsSink interface {
	SendEvent(ctx context.Context, name string, properties map[string]any)
}

// Localizer supplies translated strings and number formatting
type Localizer interface {
	T(key string, args ...any) string
	FormatPercent(fraction decimal.Decimal) string
}

// CalldataClassifier infers what a transaction does from its calldata
type CalldataClassifier interface {
	Classify(to string, data []byte) models.TransactionTypeInfo
}

// ConnectivityChecker reports whether the wallet is online
type ConnectivityChecker interface {
	Status(ctx context.Context) domain.NetworkStatus
}

// SwapSnapshotLoader reads swap form snapshots from a file
type SwapSnapshotLoader interface {
	Load(ctx context.Context, path string) ([]SwapSnapshot, error)
}

// SwapSnapshot is one form state plus the gas context needed to check it
type SwapSnapshot struct {
	Name          string
	Info          domain.DerivedSwapInfo
	GasFee        *big.Int
	NativeBalance *big.Int
	GasFeeUSD     *decimal.Decimal
}

// Interactive ports

// AccountSelector picks an account when none was named
type AccountSelector interface {
	SelectAccount(ctx context.Context, accounts []domain.AccountMeta, prompt string) (*domain.AccountMeta, error)
}

// TransactionSelector picks one or more transactions
type TransactionSelector interface {
	SelectTransactions(ctx context.Context, txs []*models.TransactionDetails, title string) ([]*models.TransactionDetails, error)
}

// Confirmer asks the user for an explicit yes before an irreversible action
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
