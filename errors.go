package unitwatch

import (
	"errors"
	"fmt"
)

// Common errors returned by unitwatch operations
var (
	// ErrInvalidUnit indicates the unit name lacks a recognized type suffix
	ErrInvalidUnit = errors.New("unitwatch: invalid unit name")

	// ErrConnect indicates the bus connection could not be established
	ErrConnect = errors.New("unitwatch: bus connection failed")

	// ErrResolve indicates the manager could not load the unit
	ErrResolve = errors.New("unitwatch: unit resolution failed")

	// ErrReadState indicates the ActiveState property could not be read
	ErrReadState = errors.New("unitwatch: state read failed")

	// ErrSubscribe indicates the change subscription could not be installed
	ErrSubscribe = errors.New("unitwatch: subscribe failed")

	// ErrDecode indicates a property value was not of the expected type
	ErrDecode = errors.New("unitwatch: decode")
)

// OpError represents an error from a unitwatch operation
type OpError struct {
	// Op is the operation that failed
	Op Operation
	// Unit is the unit name or object path involved
	Unit string
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *OpError) Error() string {
	if e.Unit == "" {
		return fmt.Sprintf("unitwatch %s: %v", e.Op.String(), e.Err)
	}
	return fmt.Sprintf("unitwatch %s %q: %v", e.Op.String(), e.Unit, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *OpError) Unwrap() error {
	return e.Err
}

// opError wraps cause under the sentinel kind so that both errors.Is(err, kind)
// and errors.Is(err, cause) hold.
func opError(op Operation, unit string, kind, cause error) *OpError {
	if cause == nil {
		return &OpError{Op: op, Unit: unit, Err: kind}
	}
	return &OpError{Op: op, Unit: unit, Err: fmt.Errorf("%w: %w", kind, cause)}
}
