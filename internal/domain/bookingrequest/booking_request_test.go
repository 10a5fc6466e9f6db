//go:build unit

package bookingrequest_test

import (
	"testing"
	"time"

	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T) *bookingrequest.Request {
	t.Helper()
	r, err := bookingrequest.New("REQ-00001", uuid.New(), uuid.New(), uuid.New(), nil, "", time.Now())
	require.NoError(t, err)
	return r
}

func TestNew_MissingFields(t *testing.T) {
	_, err := bookingrequest.New("REQ-00001", uuid.Nil, uuid.New(), uuid.Nil, nil, "", time.Now())

	assert.True(t, errs.Is(err, errs.ErrValidation))
	assert.Equal(t, []string{"package", "therapy"}, errs.ValidationFields(err))
}

func TestRequest_Reject(t *testing.T) {
	t.Run("pending request is rejected", func(t *testing.T) {
		r := newRequest(t)
		require.NoError(t, r.Reject())
		assert.Equal(t, bookingrequest.StatusRejected, r.Status())
	})

	t.Run("second reject fails", func(t *testing.T) {
		r := newRequest(t)
		require.NoError(t, r.Reject())
		err := r.Reject()
		assert.True(t, errs.Is(err, bookingrequest.ErrAlreadyRejected))
		assert.Equal(t, "StateError", errs.Kind(err))
	})

	t.Run("approved request cannot be rejected", func(t *testing.T) {
		r := newRequest(t)
		require.NoError(t, r.Approve(uuid.New()))
		assert.True(t, errs.Is(r.Reject(), bookingrequest.ErrAlreadyApproved))
	})
}

func TestRequest_ApproveLinksBooking(t *testing.T) {
	r := newRequest(t)
	bookingID := uuid.New()

	require.NoError(t, r.Approve(bookingID))

	assert.Equal(t, bookingrequest.StatusApproved, r.Status())
	require.NotNil(t, r.BookingID())
	assert.Equal(t, bookingID, *r.BookingID())
	assert.True(t, errs.Is(r.Approve(uuid.New()), bookingrequest.ErrAlreadyApproved))
}

func TestRequest_Update(t *testing.T) {
	t.Run("nothing supplied", func(t *testing.T) {
		r := newRequest(t)
		assert.ErrorIs(t, r.Update(bookingrequest.Changes{}), bookingrequest.ErrNothingToUpdate)
	})

	t.Run("empty id is reported", func(t *testing.T) {
		r := newRequest(t)
		nilID := uuid.Nil

		err := r.Update(bookingrequest.Changes{TherapyTypeID: &nilID})

		assert.Equal(t, []string{"therapy"}, errs.ValidationFields(err))
	})

	t.Run("empty session list clears preferences", func(t *testing.T) {
		r := newRequest(t)

		require.NoError(t, r.Update(bookingrequest.Changes{Sessions: []bookingrequest.PreferredSession{}}))
		assert.Empty(t, r.Sessions())
	})

	t.Run("rejected request is frozen", func(t *testing.T) {
		r := newRequest(t)
		require.NoError(t, r.Reject())
		remark := "x"

		err := r.Update(bookingrequest.Changes{Remark: &remark})

		assert.ErrorIs(t, err, bookingrequest.ErrAlreadyRejected)
	})
}
