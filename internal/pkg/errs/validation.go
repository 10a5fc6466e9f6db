package errs

import (
	"errors"
	"strings"
)

// ValidationError names the request fields that failed validation.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Fields, ", ")
}

func NewValidation(msg string, fields ...string) error {
	return Mark(&ValidationError{Message: msg, Fields: fields}, ErrValidation)
}

func ValidationFields(err error) []string {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Fields
	}
	return nil
}
