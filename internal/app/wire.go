//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/swapguard/internal/adapters"
	"github.com/trebuchet-org/swapguard/internal/config"
	"github.com/trebuchet-org/swapguard/internal/logging"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, func(), error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewEvaluateSwapWarnings,
		usecase.NewFormatWarnings,
		usecase.NewCheckSwap,
		usecase.NewSendTransaction,
		usecase.NewListTransactions,
		usecase.NewShowTransaction,
		usecase.NewWatchTransactions,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil, nil
}
