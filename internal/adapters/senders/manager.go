package senders

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/config"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// Manager holds the configured accounts and the keys of those that can sign
type Manager struct {
	accounts map[string]*account // lowercased name -> account
}

type account struct {
	meta domain.AccountMeta
	key  *ecdsa.PrivateKey // nil for readonly accounts
}

// NewManager builds accounts from the [accounts] section of swapguard.toml
func NewManager(cfg *config.RuntimeConfig) (*Manager, error) {
	m := &Manager{accounts: make(map[string]*account)}

	for name, ac := range cfg.Accounts {
		acc, err := buildAccount(name, ac)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", name, err)
		}
		key := strings.ToLower(name)
		if _, dup := m.accounts[key]; dup {
			return nil, fmt.Errorf("account %s: %w", name, domain.ErrAlreadyExists)
		}
		m.accounts[key] = acc
	}

	return m, nil
}

func buildAccount(name string, ac config.AccountConfig) (*account, error) {
	switch domain.AccountType(ac.Type) {
	case domain.AccountTypePrivateKey:
		if ac.PrivateKey == "" {
			return nil, fmt.Errorf("private key is required for private_key account")
		}
		key, err := parsePrivateKey(ac.PrivateKey)
		if err != nil {
			return nil, err
		}
		address := crypto.PubkeyToAddress(key.PublicKey)
		if ac.Address != "" && !domain.AreAddressesEqual(ac.Address, address.Hex()) {
			return nil, fmt.Errorf("address %s does not match private key (%s)", ac.Address, address.Hex())
		}
		return &account{
			meta: domain.AccountMeta{Name: name, Address: address, Type: domain.AccountTypePrivateKey},
			key:  key,
		}, nil

	case domain.AccountTypeReadonly:
		checksummed, ok := domain.GetValidAddress(ac.Address, false)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, ac.Address)
		}
		return &account{
			meta: domain.AccountMeta{Name: name, Address: common.HexToAddress(checksummed), Type: domain.AccountTypeReadonly},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported account type: %q", ac.Type)
	}
}

// GetAccount looks an account up by name. An empty name picks the default:
// an account called "default", or the only account if there is just one.
func (m *Manager) GetAccount(ctx context.Context, name string) (*domain.AccountMeta, error) {
	if name == "" {
		return m.defaultAccount()
	}
	acc, ok := m.accounts[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("account '%s': %w", name, domain.ErrNotFound)
	}
	meta := acc.meta
	return &meta, nil
}

func (m *Manager) defaultAccount() (*domain.AccountMeta, error) {
	if acc, ok := m.accounts["default"]; ok {
		meta := acc.meta
		return &meta, nil
	}
	if len(m.accounts) == 1 {
		for _, acc := range m.accounts {
			meta := acc.meta
			return &meta, nil
		}
	}
	return nil, fmt.Errorf("no default account configured: %w", domain.ErrNotFound)
}

// ListAccounts returns all accounts ordered by name
func (m *Manager) ListAccounts(ctx context.Context) []domain.AccountMeta {
	accounts := make([]domain.AccountMeta, 0, len(m.accounts))
	for _, acc := range m.accounts {
		accounts = append(accounts, acc.meta)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Name < accounts[j].Name })
	return accounts
}

// GetSignerForAccount returns the signer holding the account's key
func (m *Manager) GetSignerForAccount(ctx context.Context, meta domain.AccountMeta) (usecase.Signer, error) {
	if !meta.CanSign() {
		return nil, domain.ErrAccountCannotSign
	}
	for _, acc := range m.accounts {
		if acc.meta.Address == meta.Address && acc.key != nil {
			return &privateKeySigner{key: acc.key, address: acc.meta.Address}, nil
		}
	}
	return nil, fmt.Errorf("no key for account %s: %w", meta.Address.Hex(), domain.ErrNotFound)
}

// parsePrivateKey decodes a hex private key, with or without 0x prefix
func parsePrivateKey(privateKeyHex string) (*ecdsa.PrivateKey, error) {
	privateKeyHex = strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x")

	privateKeyBytes, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}

	privateKey, err := crypto.ToECDSA(privateKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to create private key: %w", err)
	}
	return privateKey, nil
}

// privateKeySigner signs with an in-memory key
type privateKeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

func (s *privateKeySigner) Address() common.Address {
	return s.address
}

func (s *privateKeySigner) SignTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
}

// Ensure the manager implements the interfaces
var (
	_ usecase.SignerManager     = (*Manager)(nil)
	_ usecase.AccountRepository = (*Manager)(nil)
)
