package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when the request parameters are invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIdenticalAddresses is returned when a token pair is built from the same token twice.
	ErrIdenticalAddresses = errors.New("identical addresses")

	// ErrZeroAddress is returned when a token pair contains the zero address.
	ErrZeroAddress = errors.New("zero address")

	// ErrInsufficientAmount is returned by Quote for a zero input amount.
	ErrInsufficientAmount = errors.New("insufficient amount")

	// ErrInsufficientLiquidity is returned when the pool does not have enough
	// reserves to satisfy the requested swap.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrInsufficientInputAmount is returned when a swap input amount is zero.
	ErrInsufficientInputAmount = errors.New("insufficient input amount")

	// ErrInsufficientOutputAmount is returned when a requested swap output amount is zero.
	ErrInsufficientOutputAmount = errors.New("insufficient output amount")

	// ErrInvalidPath is returned when a swap path has fewer than two tokens.
	ErrInvalidPath = errors.New("invalid path")

	// ErrMismatchedLengths is returned when parallel candidate slices differ in length.
	ErrMismatchedLengths = errors.New("mismatched lengths")

	// ErrEmptyFactoryList is returned when an aggregation request has no candidate factories.
	ErrEmptyFactoryList = errors.New("empty factory list")

	// ErrArithmeticRange is returned when checked arithmetic overflows, underflows
	// or divides by zero.
	ErrArithmeticRange = errors.New("arithmetic range")

	// ErrStateRead is returned when factory or pool state cannot be read.
	ErrStateRead = errors.New("state read failed")
)

// StateReadError wraps a failed read against factory or pool state.
type StateReadError struct {
	Op  string
	Err error
}

func (e *StateReadError) Error() string {
	return e.Op + ": " + ErrStateRead.Error() + ": " + e.Err.Error()
}

func (e *StateReadError) Unwrap() error {
	return e.Err
}

// Is reports ErrStateRead as a match so callers do not need errors.As.
func (e *StateReadError) Is(target error) bool {
	return target == ErrStateRead
}

// IsLibraryError reports whether err is one of the amount or routing failures
// produced by the computation library.
func IsLibraryError(err error) bool {
	for _, kind := range []error{
		ErrIdenticalAddresses,
		ErrZeroAddress,
		ErrInsufficientAmount,
		ErrInsufficientLiquidity,
		ErrInsufficientInputAmount,
		ErrInsufficientOutputAmount,
		ErrInvalidPath,
		ErrMismatchedLengths,
		ErrEmptyFactoryList,
		ErrArithmeticRange,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
