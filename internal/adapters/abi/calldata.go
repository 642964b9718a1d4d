package abi

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/swapguard/internal/domain/models"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// walletABI covers the ERC-20 and WETH calls a wallet sends directly
const walletABI = `[
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"deposit","stateMutability":"payable","inputs":[],"outputs":[]},
	{"type":"function","name":"withdraw","stateMutability":"nonpayable","inputs":[{"name":"wad","type":"uint256"}],"outputs":[]}
]`

// DecodedCall is a calldata payload matched against a known method
type DecodedCall struct {
	Method string
	Inputs []DecodedInput
}

// DecodedInput represents a decoded function input
type DecodedInput struct {
	Name  string
	Type  string
	Value any
}

// Arg returns the input named name, or nil
func (c *DecodedCall) Arg(name string) any {
	for _, in := range c.Inputs {
		if in.Name == name {
			return in.Value
		}
	}
	return nil
}

// CalldataDecoder recognizes token transfers, approvals and wraps
type CalldataDecoder struct {
	abi abi.ABI
	log *slog.Logger
}

// NewCalldataDecoder creates a decoder over the built-in wallet ABI
func NewCalldataDecoder(log *slog.Logger) (*CalldataDecoder, error) {
	parsed, err := abi.JSON(strings.NewReader(walletABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse wallet ABI: %w", err)
	}
	return &CalldataDecoder{
		abi: parsed,
		log: log.With("component", "CalldataDecoder"),
	}, nil
}

// Decode matches the 4-byte selector and unpacks the arguments
func (d *CalldataDecoder) Decode(data []byte) (*DecodedCall, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("calldata too short: %d bytes", len(data))
	}
	method, err := d.abi.MethodById(data[:4])
	if err != nil {
		return nil, err
	}

	values, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method.RawName, err)
	}

	decoded := &DecodedCall{Method: method.RawName}
	for i, input := range method.Inputs {
		if i < len(values) {
			decoded.Inputs = append(decoded.Inputs, DecodedInput{
				Name:  input.Name,
				Type:  input.Type.String(),
				Value: values[i],
			})
		}
	}
	return decoded, nil
}

// Classify infers the transaction kind. Empty calldata is a native send;
// anything unrecognized is Unknown.
func (d *CalldataDecoder) Classify(to string, data []byte) models.TransactionTypeInfo {
	if len(data) == 0 {
		if to == "" {
			return models.TransactionTypeInfo{Type: models.TransactionTypeUnknown}
		}
		return models.TransactionTypeInfo{Type: models.TransactionTypeSend, Recipient: to}
	}

	call, err := d.Decode(data)
	if err != nil {
		d.log.Debug("calldata not recognized", "error", err)
		return models.TransactionTypeInfo{Type: models.TransactionTypeUnknown}
	}

	switch call.Method {
	case "transfer":
		return models.TransactionTypeInfo{Type: models.TransactionTypeSend, Recipient: addressArg(call, "to")}
	case "approve":
		return models.TransactionTypeInfo{Type: models.TransactionTypeApprove, Recipient: addressArg(call, "spender")}
	case "deposit", "withdraw":
		return models.TransactionTypeInfo{Type: models.TransactionTypeWrap}
	default:
		return models.TransactionTypeInfo{Type: models.TransactionTypeUnknown}
	}
}

func addressArg(call *DecodedCall, name string) string {
	if addr, ok := call.Arg(name).(common.Address); ok {
		return addr.Hex()
	}
	return ""
}

// Ensure the decoder implements the interface
var _ usecase.CalldataClassifier = (*CalldataDecoder)(nil)
