package store

import "github.com/pkg/errors"

// Sentinel errors for the store taxonomy. Handlers map these onto HTTP
// status codes, everything else is a 500.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrCrewFull            = errors.New("crew is full")
	ErrNoDefaultCollection = errors.New("no default collection exists")
)

// ValidationError reports a rejected field value. It is returned unwrapped
// so callers can surface the reason directly.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
