package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidChainID is returned when a chain ID is invalid
	ErrInvalidChainID = errors.New("invalid chain ID")

	// ErrAccountCannotSign is returned when a watch-only account is asked to sign
	ErrAccountCannotSign = errors.New("account must support signing")

	// ErrUnknownNetwork is returned when a network name or chain ID can't be resolved
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrNoRPCEndpoint is returned when a network has no endpoint for the requested routing
	ErrNoRPCEndpoint = errors.New("no RPC endpoint configured")

	// ErrInvalidQuantity is returned when a numeric transaction field can't be parsed
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// StepError records which step of a multi-step operation failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// UnknownNetworkErr is returned when a network name or chain ID can't be resolved.
type UnknownNetworkErr struct {
	Input       string
	Suggestions []string
}

func (e UnknownNetworkErr) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown network: %s", e.Input)
	}
	return fmt.Sprintf("unknown network: %s (did you mean %s?)", e.Input, strings.Join(e.Suggestions, ", "))
}

func (e UnknownNetworkErr) Is(target error) bool {
	return target == ErrUnknownNetwork
}
