package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// TransactionStatus represents the status of a submitted transaction
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// IsFinal reports whether the status is terminal
func (s TransactionStatus) IsFinal() bool {
	return s == TransactionStatusSuccess || s == TransactionStatusFailed
}

// TransactionType is the kind of user action a transaction performs
type TransactionType string

const (
	TransactionTypeSwap    TransactionType = "SWAP"
	TransactionTypeSend    TransactionType = "SEND"
	TransactionTypeApprove TransactionType = "APPROVE"
	TransactionTypeWrap    TransactionType = "WRAP"
	TransactionTypeUnknown TransactionType = "UNKNOWN"
)

// TransactionOriginType records who asked for the transaction
type TransactionOriginType string

const (
	TransactionOriginInternal TransactionOriginType = "INTERNAL"
	TransactionOriginExternal TransactionOriginType = "EXTERNAL"
)

// TradeType says which side of a swap was fixed by the user
type TradeType string

const (
	TradeTypeExactInput  TradeType = "EXACT_INPUT"
	TradeTypeExactOutput TradeType = "EXACT_OUTPUT"
)

// TransactionTypeInfo carries the type-specific payload of a transaction
type TransactionTypeInfo struct {
	Type TransactionType `json:"type"`

	// Swap fields
	TradeType                       TradeType `json:"tradeType,omitempty"`
	InputCurrencyID                 string    `json:"inputCurrencyId,omitempty"`
	OutputCurrencyID                string    `json:"outputCurrencyId,omitempty"`
	InputCurrencyAmountRaw          string    `json:"inputCurrencyAmountRaw,omitempty"`
	OutputCurrencyAmountRaw         string    `json:"outputCurrencyAmountRaw,omitempty"`
	ExpectedInputCurrencyAmountRaw  string    `json:"expectedInputCurrencyAmountRaw,omitempty"`
	ExpectedOutputCurrencyAmountRaw string    `json:"expectedOutputCurrencyAmountRaw,omitempty"`
	Confirmed                       bool      `json:"confirmed,omitempty"`

	// Send / approve fields
	Recipient string `json:"recipient,omitempty"`
	TokenID   string `json:"tokenId,omitempty"`
}

// SwapAmounts returns the raw input and output amounts of a swap. Confirmed
// swaps report what was executed; pending ones report the fixed side and the
// expected amount on the other side.
func (t TransactionTypeInfo) SwapAmounts() (input, output string) {
	switch {
	case t.Confirmed:
		return t.InputCurrencyAmountRaw, t.OutputCurrencyAmountRaw
	case t.TradeType == TradeTypeExactOutput:
		return t.ExpectedInputCurrencyAmountRaw, t.OutputCurrencyAmountRaw
	default:
		return t.InputCurrencyAmountRaw, t.ExpectedOutputCurrencyAmountRaw
	}
}

// TransactionOptions are the submission options, including the populated request
type TransactionOptions struct {
	Request             TransactionRequest `json:"request"`
	SubmitViaPrivateRPC bool               `json:"submitViaPrivateRpc,omitempty"`
}

// TransactionReceipt is the on-chain outcome filled in by the status watcher
type TransactionReceipt struct {
	BlockNumber   uint64      `json:"blockNumber"`
	BlockHash     common.Hash `json:"blockHash"`
	GasUsed       uint64      `json:"gasUsed"`
	ConfirmedTime time.Time   `json:"confirmedTime"`
}

// TransactionDetails is the persisted record of a submitted transaction
type TransactionDetails struct {
	// Identification
	ID      string      `json:"id"`
	ChainID uint64      `json:"chainId"`
	Hash    common.Hash `json:"hash"`
	Routing string      `json:"routing"`

	// Payload
	TypeInfo TransactionTypeInfo `json:"typeInfo"`
	From     common.Address      `json:"from"`
	Options  TransactionOptions  `json:"options"`

	// Lifecycle
	Status                TransactionStatus     `json:"status"`
	AddedTime             time.Time             `json:"addedTime"`
	TransactionOriginType TransactionOriginType `json:"transactionOriginType"`
	Receipt               *TransactionReceipt   `json:"receipt,omitempty"`
}
