package models

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/swapguard/internal/domain"
)

// RawTransactionRequest is a transaction request as supplied by a caller.
// Numeric fields accept base-10 or 0x-prefixed hex strings; empty means unset.
type RawTransactionRequest struct {
	From                 string `json:"from,omitempty" yaml:"from,omitempty"`
	To                   string `json:"to,omitempty" yaml:"to,omitempty"`
	Nonce                string `json:"nonce,omitempty" yaml:"nonce,omitempty"`
	GasLimit             string `json:"gasLimit,omitempty" yaml:"gasLimit,omitempty"`
	GasPrice             string `json:"gasPrice,omitempty" yaml:"gasPrice,omitempty"`
	MaxFeePerGas         string `json:"maxFeePerGas,omitempty" yaml:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas string `json:"maxPriorityFeePerGas,omitempty" yaml:"maxPriorityFeePerGas,omitempty"`
	Value                string `json:"value,omitempty" yaml:"value,omitempty"`
	Data                 string `json:"data,omitempty" yaml:"data,omitempty"`
	ChainID              string `json:"chainId,omitempty" yaml:"chainId,omitempty"`
	Type                 string `json:"type,omitempty" yaml:"type,omitempty"`
}

// TransactionRequest is a request with every numeric field in canonical hex
// form. It is what gets persisted with a TransactionDetails record.
type TransactionRequest struct {
	From                 *common.Address `json:"from,omitempty"`
	To                   *common.Address `json:"to,omitempty"`
	Nonce                *hexutil.Uint64 `json:"nonce,omitempty"`
	GasLimit             *hexutil.Uint64 `json:"gasLimit,omitempty"`
	GasPrice             *hexutil.Big    `json:"gasPrice,omitempty"`
	MaxFeePerGas         *hexutil.Big    `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *hexutil.Big    `json:"maxPriorityFeePerGas,omitempty"`
	Value                *hexutil.Big    `json:"value,omitempty"`
	Data                 hexutil.Bytes   `json:"data,omitempty"`
	ChainID              *hexutil.Big    `json:"chainId,omitempty"`
	Type                 *hexutil.Uint64 `json:"type,omitempty"`
}

// Hexlify validates the raw request and converts it to canonical hex form
func (r RawTransactionRequest) Hexlify() (TransactionRequest, error) {
	var out TransactionRequest
	var err error

	if out.From, err = parseAddress("from", r.From); err != nil {
		return out, err
	}
	if out.To, err = parseAddress("to", r.To); err != nil {
		return out, err
	}

	bigFields := []struct {
		name string
		raw  string
		dst  **hexutil.Big
	}{
		{"gasPrice", r.GasPrice, &out.GasPrice},
		{"maxFeePerGas", r.MaxFeePerGas, &out.MaxFeePerGas},
		{"maxPriorityFeePerGas", r.MaxPriorityFeePerGas, &out.MaxPriorityFeePerGas},
		{"value", r.Value, &out.Value},
		{"chainId", r.ChainID, &out.ChainID},
	}
	for _, f := range bigFields {
		v, err := parseQuantity(f.name, f.raw)
		if err != nil {
			return out, err
		}
		if v != nil {
			*f.dst = (*hexutil.Big)(v)
		}
	}

	uintFields := []struct {
		name string
		raw  string
		dst  **hexutil.Uint64
	}{
		{"nonce", r.Nonce, &out.Nonce},
		{"gasLimit", r.GasLimit, &out.GasLimit},
		{"type", r.Type, &out.Type},
	}
	for _, f := range uintFields {
		v, err := parseQuantity(f.name, f.raw)
		if err != nil {
			return out, err
		}
		if v == nil {
			continue
		}
		if !v.IsUint64() {
			return out, fmt.Errorf("%w: %s overflows uint64", domain.ErrInvalidQuantity, f.name)
		}
		u := hexutil.Uint64(v.Uint64())
		*f.dst = &u
	}

	if r.Data != "" {
		data := r.Data
		if !strings.HasPrefix(data, "0x") && !strings.HasPrefix(data, "0X") {
			data = "0x" + data
		}
		decoded, err := hexutil.Decode(strings.ToLower(data[:2]) + data[2:])
		if err != nil {
			return out, fmt.Errorf("invalid data: %w", err)
		}
		out.Data = decoded
	}

	return out, nil
}

// IsDynamicFee reports whether the request uses EIP-1559 fee fields
func (r TransactionRequest) IsDynamicFee() bool {
	if r.Type != nil {
		return uint64(*r.Type) == types.DynamicFeeTxType
	}
	return r.MaxFeePerGas != nil || r.MaxPriorityFeePerGas != nil
}

// Clone returns a deep copy of the request
func (r TransactionRequest) Clone() TransactionRequest {
	c := r
	c.From = cloneAddress(r.From)
	c.To = cloneAddress(r.To)
	c.Nonce = cloneUint64(r.Nonce)
	c.GasLimit = cloneUint64(r.GasLimit)
	c.GasPrice = cloneBig(r.GasPrice)
	c.MaxFeePerGas = cloneBig(r.MaxFeePerGas)
	c.MaxPriorityFeePerGas = cloneBig(r.MaxPriorityFeePerGas)
	c.Value = cloneBig(r.Value)
	c.ChainID = cloneBig(r.ChainID)
	c.Type = cloneUint64(r.Type)
	if r.Data != nil {
		c.Data = append(hexutil.Bytes{}, r.Data...)
	}
	return c
}

// ToTransaction builds an unsigned transaction from a populated request
func (r TransactionRequest) ToTransaction() (*types.Transaction, error) {
	if r.Nonce == nil || r.GasLimit == nil {
		return nil, fmt.Errorf("request is not populated: nonce and gasLimit are required")
	}

	if r.IsDynamicFee() {
		if r.MaxFeePerGas == nil {
			return nil, fmt.Errorf("request is not populated: maxFeePerGas is required")
		}
		return types.NewTx(&types.DynamicFeeTx{
			ChainID:   bigOrZero(r.ChainID),
			Nonce:     uint64(*r.Nonce),
			GasTipCap: bigOrZero(r.MaxPriorityFeePerGas),
			GasFeeCap: r.MaxFeePerGas.ToInt(),
			Gas:       uint64(*r.GasLimit),
			To:        r.To,
			Value:     bigOrZero(r.Value),
			Data:      r.Data,
		}), nil
	}

	if r.GasPrice == nil {
		return nil, fmt.Errorf("request is not populated: gasPrice is required")
	}
	return types.NewTx(&types.LegacyTx{
		Nonce:    uint64(*r.Nonce),
		GasPrice: r.GasPrice.ToInt(),
		Gas:      uint64(*r.GasLimit),
		To:       r.To,
		Value:    bigOrZero(r.Value),
		Data:     r.Data,
	}), nil
}

func parseAddress(field, raw string) (*common.Address, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	valid, ok := domain.GetValidAddress(raw, false)
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidAddress, field, raw)
	}
	addr := common.HexToAddress(valid)
	return &addr, nil
}

// parseQuantity parses a base-10 or 0x-hex quantity. Empty input returns nil.
func parseQuantity(field, raw string) (*big.Int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
		if s == "" {
			return new(big.Int), nil
		}
	}

	v, ok := new(big.Int).SetString(s, base)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidQuantity, field, raw)
	}
	return v, nil
}

func bigOrZero(v *hexutil.Big) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v.ToInt()
}

func cloneAddress(a *common.Address) *common.Address {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func cloneUint64(v *hexutil.Uint64) *hexutil.Uint64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneBig(v *hexutil.Big) *hexutil.Big {
	if v == nil {
		return nil
	}
	return (*hexutil.Big)(new(big.Int).Set(v.ToInt()))
}
