package app

import (
	"log/slog"

	"github.com/trebuchet-org/swapguard/internal/domain/config"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Accounts       usecase.AccountRepository
	Networks       usecase.NetworkResolver
	Classifier     usecase.CalldataClassifier
	Selector       usecase.AccountSelector
	TxSelector     usecase.TransactionSelector
	Confirmer      usecase.Confirmer
	SnapshotLoader usecase.SwapSnapshotLoader
	Sink           usecase.ProgressSink

	// Use cases
	CheckSwap         *usecase.CheckSwap
	SendTransaction   *usecase.SendTransaction
	ListTransactions  *usecase.ListTransactions
	ShowTransaction   *usecase.ShowTransaction
	WatchTransactions *usecase.WatchTransactions
	ListNetworks      *usecase.ListNetworks
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	accounts usecase.AccountRepository,
	networks usecase.NetworkResolver,
	classifier usecase.CalldataClassifier,
	selector usecase.AccountSelector,
	txSelector usecase.TransactionSelector,
	confirmer usecase.Confirmer,
	snapshotLoader usecase.SwapSnapshotLoader,
	sink usecase.ProgressSink,
	checkSwap *usecase.CheckSwap,
	sendTransaction *usecase.SendTransaction,
	listTransactions *usecase.ListTransactions,
	showTransaction *usecase.ShowTransaction,
	watchTransactions *usecase.WatchTransactions,
	listNetworks *usecase.ListNetworks,
) (*App, error) {
	return &App{
		Config:            cfg,
		Log:               log,
		Accounts:          accounts,
		Networks:          networks,
		Classifier:        classifier,
		Selector:          selector,
		TxSelector:        txSelector,
		Confirmer:         confirmer,
		SnapshotLoader:    snapshotLoader,
		Sink:              sink,
		CheckSwap:         checkSwap,
		SendTransaction:   sendTransaction,
		ListTransactions:  listTransactions,
		ShowTransaction:   showTransaction,
		WatchTransactions: watchTransactions,
		ListNetworks:      listNetworks,
	}, nil
}
