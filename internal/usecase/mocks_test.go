package usecase_test

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/models"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// MockProviderResolver is a mock implementation of ProviderResolver
type MockProviderResolver struct {
	mock.Mock
}

func (m *MockProviderResolver) GetProvider(ctx context.Context, chainID uint64, rpcType domain.RPCType) (usecase.ChainProvider, error) {
	args := m.Called(ctx, chainID, rpcType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.ChainProvider), args.Error(1)
}

// MockChainProvider is a mock implementation of ChainProvider
type MockChainProvider struct {
	mock.Mock
}

func (m *MockChainProvider) ChainID(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainProvider) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockChainProvider) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainProvider) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainProvider) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Header), args.Error(1)
}

func (m *MockChainProvider) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockChainProvider) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockChainProvider) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	args := m.Called(ctx, txHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Receipt), args.Error(1)
}

func (m *MockChainProvider) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	args := m.Called(ctx, account, blockNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// MockSignerManager is a mock implementation of SignerManager
type MockSignerManager struct {
	mock.Mock
}

func (m *MockSignerManager) GetSignerForAccount(ctx context.Context, account domain.AccountMeta) (usecase.Signer, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.Signer), args.Error(1)
}

// keySigner signs with a real key so hashes in tests are genuine
type keySigner struct {
	key *ecdsa.PrivateKey
	err error
}

func newKeySigner() *keySigner {
	key, err := crypto.GenerateKey()
	if err != nil {
		panic(err)
	}
	return &keySigner{key: key}
}

func (s *keySigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

func (s *keySigner) SignTx(_ context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
}

// MockTransactionStore is a mock implementation of TransactionStore
type MockTransactionStore struct {
	mock.Mock
}

func (m *MockTransactionStore) AddTransaction(ctx context.Context, tx *models.TransactionDetails) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionStore) UpdateTransaction(ctx context.Context, id string, update func(tx *models.TransactionDetails) error) (*models.TransactionDetails, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionDetails), args.Error(1)
}

func (m *MockTransactionStore) GetTransaction(ctx context.Context, id string) (*models.TransactionDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionDetails), args.Error(1)
}

func (m *MockTransactionStore) ListTransactions(ctx context.Context, filter usecase.TransactionFilter) ([]*models.TransactionDetails, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TransactionDetails), args.Error(1)
}

// recordingAnalytics keeps every event it is sent
type recordingAnalytics struct {
	mu     sync.Mutex
	events []analyticsEvent
}

type analyticsEvent struct {
	name  string
	props map[string]any
}

func (r *recordingAnalytics) SendEvent(_ context.Context, name string, props map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, analyticsEvent{name: name, props: props})
}

// MockConnectivityChecker is a mock implementation of ConnectivityChecker
type MockConnectivityChecker struct {
	mock.Mock
}

func (m *MockConnectivityChecker) Status(ctx context.Context) domain.NetworkStatus {
	args := m.Called(ctx)
	return args.Get(0).(domain.NetworkStatus)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	errors []string
}

func (m *MockProgressSink) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(string) {}

func (m *MockProgressSink) Error(message string) {
	m.errors = append(m.errors, message)
}

// MockNetworkResolver is a mock implementation of NetworkResolver
type MockNetworkResolver struct {
	mock.Mock
}

func (m *MockNetworkResolver) ListNetworks(ctx context.Context) []*domain.Network {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Network)
}

func (m *MockNetworkResolver) ResolveNetwork(ctx context.Context, input string) (*domain.Network, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Network), args.Error(1)
}

func (m *MockNetworkResolver) GetNetworkByChainID(ctx context.Context, chainID uint64) (*domain.Network, error) {
	args := m.Called(ctx, chainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Network), args.Error(1)
}
