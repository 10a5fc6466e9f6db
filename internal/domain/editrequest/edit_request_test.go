//go:build unit

package editrequest_test

import (
	"testing"
	"time"

	"appointment-engine/internal/domain/editrequest"
	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validChanges() []editrequest.Change {
	return []editrequest.Change{{SessionID: uuid.New(), NewDate: "2024-06-12", NewSlotID: "S2"}}
}

func TestNew(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		r, err := editrequest.New("SER00001", uuid.New(), uuid.New(), validChanges(), time.Now())
		require.NoError(t, err)
		assert.Equal(t, editrequest.StatusPending, r.Status())
	})

	t.Run("names missing fields", func(t *testing.T) {
		_, err := editrequest.New("SER00001", uuid.Nil, uuid.New(), []editrequest.Change{{SessionID: uuid.New()}}, time.Now())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.ElementsMatch(t,
			[]string{"appointmentId", "sessions[0].newDate", "sessions[0].newSlotId"},
			errs.ValidationFields(err))
	})

	t.Run("requires sessions", func(t *testing.T) {
		_, err := editrequest.New("SER00001", uuid.New(), uuid.New(), nil, time.Now())
		assert.Equal(t, []string{"sessions"}, errs.ValidationFields(err))
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to editrequest.Status
		want     bool
	}{
		{editrequest.StatusPending, editrequest.StatusApproved, true},
		{editrequest.StatusPending, editrequest.StatusRejected, true},
		{editrequest.StatusPending, editrequest.StatusPending, true},
		{editrequest.StatusApproved, editrequest.StatusRejected, false},
		{editrequest.StatusApproved, editrequest.StatusPending, false},
		{editrequest.StatusRejected, editrequest.StatusApproved, false},
		{editrequest.StatusRejected, editrequest.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRequest_Update(t *testing.T) {
	approved := editrequest.StatusApproved
	pending := editrequest.StatusPending

	t.Run("nothing supplied", func(t *testing.T) {
		r, err := editrequest.New("SER00001", uuid.New(), uuid.New(), validChanges(), time.Now())
		require.NoError(t, err)

		err = r.Update(nil, nil, time.Now())
		assert.True(t, errs.Is(err, editrequest.ErrNothingToUpdate))
	})

	t.Run("terminal state refuses to move", func(t *testing.T) {
		r, err := editrequest.New("SER00001", uuid.New(), uuid.New(), validChanges(), time.Now())
		require.NoError(t, err)
		require.NoError(t, r.Update(nil, &approved, time.Now()))

		err = r.Update(nil, &pending, time.Now())
		assert.True(t, errs.Is(err, editrequest.ErrInvalidTransition))
		assert.True(t, errs.Is(err, errs.ErrState))
		assert.Equal(t, editrequest.StatusApproved, r.Status())
	})

	t.Run("replaces sessions only", func(t *testing.T) {
		r, err := editrequest.New("SER00001", uuid.New(), uuid.New(), validChanges(), time.Now())
		require.NoError(t, err)
		next := validChanges()

		require.NoError(t, r.Update(next, nil, time.Now()))
		assert.Equal(t, next, r.Changes())
		assert.Equal(t, editrequest.StatusPending, r.Status())
	})
}
