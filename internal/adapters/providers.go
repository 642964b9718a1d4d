package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/swapguard/internal/adapters/abi"
	"github.com/trebuchet-org/swapguard/internal/adapters/analytics"
	"github.com/trebuchet-org/swapguard/internal/adapters/blockchain"
	"github.com/trebuchet-org/swapguard/internal/adapters/i18n"
	"github.com/trebuchet-org/swapguard/internal/adapters/interactive"
	"github.com/trebuchet-org/swapguard/internal/adapters/network"
	"github.com/trebuchet-org/swapguard/internal/adapters/repository/transactions"
	"github.com/trebuchet-org/swapguard/internal/adapters/scenario"
	"github.com/trebuchet-org/swapguard/internal/adapters/senders"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// RepositorySet provides file-backed storage
var RepositorySet = wire.NewSet(
	transactions.ProvideFileRepository,
	wire.Bind(new(usecase.TransactionStore), new(*transactions.FileRepository)),

	scenario.NewYAMLLoader,
	wire.Bind(new(usecase.SwapSnapshotLoader), new(*scenario.YAMLLoader)),
)

// NetworkSet provides network configuration resolution
var NetworkSet = wire.NewSet(
	network.NewResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*network.Resolver)),
)

// BlockchainSet provides RPC-backed implementations
var BlockchainSet = wire.NewSet(
	blockchain.ProvideProviderPool,
	wire.Bind(new(usecase.ProviderResolver), new(*blockchain.ProviderPool)),

	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.ConnectivityChecker), new(*blockchain.CheckerAdapter)),

	abi.NewCalldataDecoder,
	wire.Bind(new(usecase.CalldataClassifier), new(*abi.CalldataDecoder)),
)

// SendersSet provides accounts and their signing keys
var SendersSet = wire.NewSet(
	senders.NewManager,
	wire.Bind(new(usecase.SignerManager), new(*senders.Manager)),
	wire.Bind(new(usecase.AccountRepository), new(*senders.Manager)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.AccountSelector), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.TransactionSelector), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.Confirmer), new(*interactive.SelectorAdapter)),
)

// PresentationSet provides copy and event delivery
var PresentationSet = wire.NewSet(
	i18n.ProvideLocalizer,
	wire.Bind(new(usecase.Localizer), new(*i18n.Localizer)),

	analytics.NewSink,
	wire.Bind(new(usecase.AnalyticsSink), new(*analytics.Sink)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	RepositorySet,
	NetworkSet,
	BlockchainSet,
	SendersSet,
	InteractiveSet,
	PresentationSet,
)
