package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrUsage is returned when the command line cannot be turned into a request
	ErrUsage = errors.New("usage error")

	// ErrContractNotFound is returned when a contract artifact can't be found
	ErrContractNotFound = errors.New("contract not found")

	// ErrMissingABI is returned when an artifact has no abi field
	ErrMissingABI = errors.New("artifact has no abi")
)

// ContractNotFoundError carries the artifact path that was looked up and the
// closest contract names found next to it.
type ContractNotFoundError struct {
	ContractName string
	ArtifactPath string
	Suggestions  []string
	Err          error
}

func (e *ContractNotFoundError) Error() string {
	var b strings.Builder
	b.WriteString("Contract not found. Did you provide the correct contract name?")
	if e.ArtifactPath != "" {
		fmt.Fprintf(&b, "\n  looked for: %s", e.ArtifactPath)
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, "\n  did you mean: %s", strings.Join(e.Suggestions, ", "))
	}
	return b.String()
}

func (e *ContractNotFoundError) Is(target error) bool {
	return target == ErrContractNotFound
}

func (e *ContractNotFoundError) Unwrap() error {
	return e.Err
}

// UsageError builds an ErrUsage-wrapping error with a specific message.
func UsageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
