package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg and the caller's stack. A nil err stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches kind to err so Is(err, kind) holds without changing its message.
func Mark(err error, kind error) error {
	if err == nil {
		return kind
	}
	return cr.Mark(err, kind)
}

// Is understands both cockroachdb marks and std wrapping chains.
func Is(err, reference error) bool {
	if err == nil {
		return false
	}
	return cr.Is(err, reference) || errors.Is(err, reference)
}

// StackLines renders err with its recorded stack and keeps the first max lines.
func StackLines(err error, max int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if max > 0 && len(lines) > max {
		lines = lines[:max]
	}
	return lines
}
