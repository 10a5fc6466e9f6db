//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"appointment-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	notFound := errs.Sentinel("booking not found", errs.ErrNotFound)

	testCases := []struct {
		name string
		err  error
		want string
	}{
		{name: "sentinel", err: notFound, want: "NotFoundError"},
		{name: "wrapped sentinel", err: errs.Wrap(notFound, "load booking"), want: "NotFoundError"},
		{name: "std wrapped sentinel", err: fmt.Errorf("reschedule: %w", notFound), want: "NotFoundError"},
		{name: "validation", err: errs.NewValidation("missing required fields", "date"), want: "ValidationError"},
		{name: "marked conflict", err: errs.Mark(errors.New("slot taken"), errs.ErrConflict), want: "ConflictError"},
		{name: "state", err: errs.Sentinel("already rejected", errs.ErrState), want: "StateError"},
		{name: "unmarked", err: errors.New("io timeout"), want: ""},
		{name: "nil", err: nil, want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.Kind(tc.err))
		})
	}
}

func TestWrap_KeepsMessageAndNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))

	err := errs.Wrap(errs.New("pool closed"), "begin transaction")
	assert.Equal(t, "begin transaction: pool closed", err.Error())
}

func TestMark_NilFallsBackToKind(t *testing.T) {
	assert.Same(t, errs.ErrState, errs.Mark(nil, errs.ErrState))
}

func TestValidationFields(t *testing.T) {
	err := errs.Wrap(errs.NewValidation("missing required fields", "packageId", "sessions[0].date"), "create booking")

	assert.Equal(t, []string{"packageId", "sessions[0].date"}, errs.ValidationFields(err))
	assert.Contains(t, err.Error(), "missing required fields: packageId, sessions[0].date")
	assert.Nil(t, errs.ValidationFields(errors.New("plain")))
}

func TestStackLines(t *testing.T) {
	assert.Nil(t, errs.StackLines(nil, 5))

	lines := errs.StackLines(errs.Wrap(errs.New("deadlock detected"), "claim slots"), 3)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "claim slots")
}
