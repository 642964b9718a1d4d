package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/models"
)

// EventSwapSubmitted is emitted once per broadcast swap
const EventSwapSubmitted = "Swap Submitted"

// Submission step names, reported in StepError and progress events
const (
	StepCheckAccount    = "checkAccount"
	StepResolveProvider = "resolveProvider"
	StepResolveSigner   = "resolveSigner"
	StepHexlify         = "hexlify"
	StepPopulate        = "populate"
	StepSign            = "sign"
	StepBroadcast       = "broadcast"
	StepRecord          = "record"
	StepAnalytics       = "analytics"
)

// SendTransactionParams contains parameters for submitting a transaction
type SendTransactionParams struct {
	// TxID overrides the generated record id
	TxID                  string
	ChainID               uint64
	Account               domain.AccountMeta
	Request               models.RawTransactionRequest
	SubmitViaPrivateRPC   bool
	TypeInfo              models.TransactionTypeInfo
	TransactionOriginType models.TransactionOriginType
	// Analytics carries swap metadata forwarded with the submitted event
	Analytics map[string]any
}

// SendTransactionResult is the outcome of a successful broadcast
type SendTransactionResult struct {
	Hash             common.Hash
	PopulatedRequest models.TransactionRequest
	Transaction      *models.TransactionDetails
}

// SendTransaction signs, broadcasts and records a transaction
type SendTransaction struct {
	providers ProviderResolver
	signers   SignerManager
	store     TransactionStore
	analytics AnalyticsSink
	sink      ProgressSink
	log       *slog.Logger
	now       func() time.Time
}

// NewSendTransaction creates a new SendTransaction use case
func NewSendTransaction(
	providers ProviderResolver,
	signers SignerManager,
	store TransactionStore,
	analytics AnalyticsSink,
	sink ProgressSink,
	log *slog.Logger,
) *SendTransaction {
	return &SendTransaction{
		providers: providers,
		signers:   signers,
		store:     store,
		analytics: analytics,
		sink:      sink,
		log:       log.With("component", "SendTransaction"),
		now:       time.Now,
	}
}

// submission is the state threaded through the pipeline
type submission struct {
	params   SendTransactionParams
	id       string
	provider ChainProvider
	signer   Signer
	request  models.TransactionRequest
	signed   *types.Transaction
	hash     common.Hash
	details  *models.TransactionDetails
}

type submitStep struct {
	name string
	run  func(ctx context.Context, s *submission) error
}

func (uc *SendTransaction) steps() []submitStep {
	return []submitStep{
		{StepCheckAccount, uc.checkAccount},
		{StepResolveProvider, uc.resolveProvider},
		{StepResolveSigner, uc.resolveSigner},
		{StepHexlify, uc.hexlify},
		{StepPopulate, uc.populate},
		{StepSign, uc.sign},
		{StepBroadcast, uc.broadcast},
		{StepRecord, uc.record},
		{StepAnalytics, uc.sendAnalytics},
	}
}

// Run executes the submission pipeline. The first failing step aborts the
// run; nothing is recorded unless the transaction was broadcast.
func (uc *SendTransaction) Run(ctx context.Context, params SendTransactionParams) (*SendTransactionResult, error) {
	uc.log.Debug("sending transaction", "chainId", params.ChainID, "to", params.Request.To, "account", params.Account.Address.Hex())

	s := &submission{params: params}
	steps := uc.steps()
	for i, step := range steps {
		uc.sink.OnProgress(ctx, ProgressEvent{
			Stage:   step.name,
			Current: i + 1,
			Total:   len(steps),
			Message: stepMessage(step.name),
			Spinner: true,
		})
		if err := step.run(ctx, s); err != nil {
			uc.sink.Error(fmt.Sprintf("%s failed: %v", step.name, err))
			return s.result(), &domain.StepError{Step: step.name, Err: err}
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: len(steps),
		Total:   len(steps),
		Message: "Transaction submitted",
	})
	return s.result(), nil
}

// result is nil until the transaction has been broadcast
func (s *submission) result() *SendTransactionResult {
	if s.hash == (common.Hash{}) {
		return nil
	}
	return &SendTransactionResult{
		Hash:             s.hash,
		PopulatedRequest: s.request,
		Transaction:      s.details,
	}
}

// checkAccount runs before any network call: a watch-only account or a
// reused record id must never reach broadcast.
func (uc *SendTransaction) checkAccount(ctx context.Context, s *submission) error {
	if !s.params.Account.CanSign() {
		return domain.ErrAccountCannotSign
	}

	s.id = s.params.TxID
	if s.id == "" {
		s.id = uuid.NewString()
	}
	_, err := uc.store.GetTransaction(ctx, s.id)
	switch {
	case err == nil:
		return fmt.Errorf("transaction %s: %w", s.id, domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("failed to look up transaction %s: %w", s.id, err)
	}
	return nil
}

func (uc *SendTransaction) resolveProvider(ctx context.Context, s *submission) error {
	rpcType := domain.RPCTypePublic
	if s.params.SubmitViaPrivateRPC {
		rpcType = domain.RPCTypePrivate
	}
	provider, err := uc.providers.GetProvider(ctx, s.params.ChainID, rpcType)
	if err != nil {
		return err
	}
	s.provider = provider
	return nil
}

func (uc *SendTransaction) resolveSigner(ctx context.Context, s *submission) error {
	signer, err := uc.signers.GetSignerForAccount(ctx, s.params.Account)
	if err != nil {
		return err
	}
	s.signer = signer
	return nil
}

func (uc *SendTransaction) hexlify(_ context.Context, s *submission) error {
	req, err := s.params.Request.Hexlify()
	if err != nil {
		return err
	}
	s.request = req
	return nil
}

// populate fills whatever the caller left unset, the way a connected signer would
func (uc *SendTransaction) populate(ctx context.Context, s *submission) error {
	req := &s.request
	from := s.signer.Address()
	if req.From != nil && *req.From != from {
		return fmt.Errorf("from address mismatch: request has %s, signer is %s", req.From.Hex(), from.Hex())
	}
	req.From = &from

	chainID, err := s.provider.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %w", err)
	}
	if chainID.Uint64() != s.params.ChainID {
		return fmt.Errorf("%w: provider is on chain %s, expected %d", domain.ErrInvalidChainID, chainID, s.params.ChainID)
	}
	if req.ChainID != nil && req.ChainID.ToInt().Cmp(chainID) != 0 {
		return fmt.Errorf("%w: request has chain %s, expected %s", domain.ErrInvalidChainID, req.ChainID.ToInt(), chainID)
	}
	req.ChainID = (*hexutil.Big)(chainID)

	if req.Nonce == nil {
		nonce, err := s.provider.PendingNonceAt(ctx, from)
		if err != nil {
			return fmt.Errorf("failed to get nonce: %w", err)
		}
		req.Nonce = (*hexutil.Uint64)(&nonce)
	}

	if err := uc.populateFees(ctx, s.provider, req); err != nil {
		return err
	}

	if req.GasLimit == nil {
		msg := ethereum.CallMsg{
			From:      from,
			To:        req.To,
			Value:     bigOrNil(req.Value),
			Data:      req.Data,
			GasPrice:  bigOrNil(req.GasPrice),
			GasFeeCap: bigOrNil(req.MaxFeePerGas),
			GasTipCap: bigOrNil(req.MaxPriorityFeePerGas),
		}
		gas, err := s.provider.EstimateGas(ctx, msg)
		if err != nil {
			return fmt.Errorf("failed to estimate gas: %w", err)
		}
		req.GasLimit = (*hexutil.Uint64)(&gas)
	}

	return nil
}

// populateFees supports legacy (0) and dynamic fee (2) transactions only
func (uc *SendTransaction) populateFees(ctx context.Context, provider ChainProvider, req *models.TransactionRequest) error {
	if req.Type != nil {
		switch t := uint64(*req.Type); t {
		case types.LegacyTxType, types.DynamicFeeTxType:
		default:
			return fmt.Errorf("unsupported transaction type %d", t)
		}
	}
	if req.GasPrice != nil && req.IsDynamicFee() {
		return fmt.Errorf("gasPrice cannot be combined with dynamic fee fields")
	}

	legacy := req.GasPrice != nil || (req.Type != nil && uint64(*req.Type) == types.LegacyTxType)
	if legacy {
		if req.GasPrice == nil {
			price, err := provider.SuggestGasPrice(ctx)
			if err != nil {
				return fmt.Errorf("failed to get gas price: %w", err)
			}
			req.GasPrice = (*hexutil.Big)(price)
		}
		return nil
	}

	if req.MaxFeePerGas != nil && req.MaxPriorityFeePerGas != nil {
		return nil
	}

	head, err := provider.HeaderByNumber(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to get latest header: %w", err)
	}
	if head.BaseFee == nil {
		if req.Type != nil || req.MaxFeePerGas != nil || req.MaxPriorityFeePerGas != nil {
			return fmt.Errorf("chain has no base fee: dynamic fee transactions are not supported")
		}
		price, err := provider.SuggestGasPrice(ctx)
		if err != nil {
			return fmt.Errorf("failed to get gas price: %w", err)
		}
		req.GasPrice = (*hexutil.Big)(price)
		return nil
	}

	if req.MaxPriorityFeePerGas == nil {
		tip, err := provider.SuggestGasTipCap(ctx)
		if err != nil {
			return fmt.Errorf("failed to get gas tip cap: %w", err)
		}
		req.MaxPriorityFeePerGas = (*hexutil.Big)(tip)
	}
	if req.MaxFeePerGas == nil {
		maxFee := new(big.Int).Mul(head.BaseFee, big.NewInt(2))
		maxFee.Add(maxFee, req.MaxPriorityFeePerGas.ToInt())
		req.MaxFeePerGas = (*hexutil.Big)(maxFee)
	}
	dynamic := hexutil.Uint64(types.DynamicFeeTxType)
	req.Type = &dynamic
	return nil
}

func (uc *SendTransaction) sign(ctx context.Context, s *submission) error {
	tx, err := s.request.ToTransaction()
	if err != nil {
		return err
	}
	signed, err := s.signer.SignTx(ctx, tx, s.request.ChainID.ToInt())
	if err != nil {
		return err
	}
	s.signed = signed
	return nil
}

func (uc *SendTransaction) broadcast(ctx context.Context, s *submission) error {
	if err := s.provider.SendTransaction(ctx, s.signed); err != nil {
		return err
	}
	s.hash = s.signed.Hash()
	uc.log.Debug("transaction submitted", "hash", s.hash.Hex())
	return nil
}

func (uc *SendTransaction) record(ctx context.Context, s *submission) error {
	s.details = &models.TransactionDetails{
		ID:       s.id,
		ChainID:  s.params.ChainID,
		Routing:  string(domain.RoutingClassic),
		Hash:     s.hash,
		TypeInfo: s.params.TypeInfo,
		From:     s.params.Account.Address,
		Options: models.TransactionOptions{
			Request:             s.request,
			SubmitViaPrivateRPC: s.params.SubmitViaPrivateRPC,
		},
		Status:                models.TransactionStatusPending,
		AddedTime:             uc.now(),
		TransactionOriginType: s.params.TransactionOriginType,
	}

	if err := uc.store.AddTransaction(ctx, s.details); err != nil {
		return err
	}
	uc.log.Debug("transaction added", "id", s.id, "chainId", s.params.ChainID, "type", s.params.TypeInfo.Type)
	return nil
}

// sendAnalytics never fails the submission
func (uc *SendTransaction) sendAnalytics(ctx context.Context, s *submission) error {
	if s.params.TypeInfo.Type != models.TransactionTypeSwap {
		return nil
	}

	if s.params.Analytics == nil {
		// swaps from dapps and wallet connections don't always carry metadata
		if s.params.TransactionOriginType == models.TransactionOriginInternal {
			uc.log.Error("missing analytics for swap",
				"error", errors.New("missing `analytics` for swap when adding transaction"),
				"id", s.details.ID,
				"hash", s.hash.Hex(),
			)
		}
		return nil
	}

	props := map[string]any{
		"routing":          s.details.Routing,
		"transaction_hash": s.hash.Hex(),
	}
	for k, v := range s.params.Analytics {
		props[k] = v
	}
	uc.analytics.SendEvent(ctx, EventSwapSubmitted, props)
	return nil
}

func stepMessage(step string) string {
	switch step {
	case StepCheckAccount:
		return "Checking account"
	case StepResolveProvider:
		return "Connecting to network"
	case StepResolveSigner:
		return "Loading signer"
	case StepHexlify:
		return "Encoding request"
	case StepPopulate:
		return "Populating transaction"
	case StepSign:
		return "Signing transaction"
	case StepBroadcast:
		return "Broadcasting transaction"
	case StepRecord:
		return "Recording transaction"
	default:
		return strings.ToUpper(step[:1]) + step[1:]
	}
}

func bigOrNil(v *hexutil.Big) *big.Int {
	if v == nil {
		return nil
	}
	return v.ToInt()
}
