package domain

import "github.com/ethereum/go-ethereum/common"

// AccountType describes what an account is capable of
type AccountType string

const (
	AccountTypeSignerMnemonic AccountType = "signer_mnemonic"
	AccountTypePrivateKey     AccountType = "private_key"
	AccountTypeReadonly       AccountType = "readonly"
)

// AccountMeta identifies a wallet account
type AccountMeta struct {
	Name    string         `json:"name,omitempty"`
	Address common.Address `json:"address"`
	Type    AccountType    `json:"type"`
}

// CanSign is false for watch-only accounts
func (a AccountMeta) CanSign() bool {
	switch a.Type {
	case AccountTypeSignerMnemonic, AccountTypePrivateKey:
		return true
	default:
		return false
	}
}

// RPCType selects how a transaction is routed to the network
type RPCType string

const (
	RPCTypePublic  RPCType = "public"
	RPCTypePrivate RPCType = "private"
)

// Network is a chain the wallet can talk to
type Network struct {
	ChainID       uint64 `json:"chainId"`
	Name          string `json:"name"`
	RPCURL        string `json:"rpcUrl"`
	PrivateRPCURL string `json:"privateRpcUrl,omitempty"`
	ExplorerURL   string `json:"explorerUrl,omitempty"`
	NativeSymbol  string `json:"nativeSymbol,omitempty"`
}

// Endpoint returns the RPC URL for the given routing, or "" if none is configured
func (n *Network) Endpoint(rpcType RPCType) string {
	if rpcType == RPCTypePrivate {
		return n.PrivateRPCURL
	}
	return n.RPCURL
}
