package errs

import "errors"

// Error kinds surfaced to API callers. Concrete errors are marked with one of
// these so the transport layer can map them without knowing every sentinel.
var (
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrNotFound    = errors.New("not found")
	ErrState       = errors.New("invalid state")
	ErrTransaction = errors.New("transaction failed")
)

// Kind returns the name of the first kind err is marked with, or "" when none matches.
func Kind(err error) string {
	switch {
	case Is(err, ErrValidation):
		return "ValidationError"
	case Is(err, ErrConflict):
		return "ConflictError"
	case Is(err, ErrNotFound):
		return "NotFoundError"
	case Is(err, ErrState):
		return "StateError"
	case Is(err, ErrTransaction):
		return "TransactionError"
	default:
		return ""
	}
}

// Sentinel builds a package-level sentinel already marked with its kind.
func Sentinel(msg string, kind error) error {
	return Mark(New(msg), kind)
}
