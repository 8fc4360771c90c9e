package ai

import (
	"errors"
	"fmt"
)

// TransportError wraps a failure of the model-call boundary itself: network
// errors, non-2xx HTTP statuses, timeouts, undecodable response bodies. It is
// never recovered inside the reasoning loop, because without a response there
// is nothing to continue the conversation with; callers decide retry policy.
type TransportError struct {
	// Operation names the call that failed, e.g. "chat completion".
	Operation string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("transport error: %v", e.Err)
	}
	return fmt.Sprintf("transport error: %s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying cause so errors.Is/As keep working.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps err as a [TransportError] for the named operation.
func NewTransportError(operation string, err error) *TransportError {
	return &TransportError{Operation: operation, Err: err}
}

// IsTransport reports whether err is (or wraps) a [TransportError].
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
