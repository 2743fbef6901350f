package usecase

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when a mutating call carries no
// authenticated identity.
var ErrNotAuthenticated = errors.New("not authenticated")

// ValidationError reports a malformed field on the creation form. It is
// surfaced inline to the caller and never logged server-side.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransportError wraps a datastore or network failure. The in-memory
// collection is left unchanged when one occurs; no operation is retried.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsTransportError reports whether err is a TransportError
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
