//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/handler/httperr"
	"appointment-engine/internal/pkg/errs"
	testhttp "appointment-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abort(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	httperr.Abort(c, err, "Failed to process request")
	return w
}

func TestAbort(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantKind   string
		wantFields []string
	}{
		{
			name:       "validation reports every field",
			err:        errs.NewValidation("missing required fields", "packageId", "sessions"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "missing required fields",
			wantKind:   "ValidationError",
			wantFields: []string{"packageId", "sessions"},
		},
		{
			name:       "not found",
			err:        bookingrequest.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "booking request not found",
			wantKind:   "NotFoundError",
		},
		{
			name:       "state transition",
			err:        bookingrequest.ErrAlreadyApproved,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "booking request already approved",
			wantKind:   "StateError",
		},
		{
			name:       "unclassified error hides its message",
			err:        errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to process request",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := abort(tc.err)

			body := testhttp.DecodeErrorResponse(t, w, tc.wantStatus, tc.wantMsg)
			assert.Equal(t, tc.wantKind, body.Error.Kind)
			assert.Equal(t, tc.wantFields, body.Detail.Fields)
			assert.NotContains(t, w.Body.String(), "connection reset")
		})
	}
}

func TestAbort_ConflictListsEverySlot(t *testing.T) {
	provider := uuid.New()
	err := errs.Wrap(booking.NewConflictError([]booking.Conflict{
		{Date: "2025-03-10", SlotID: "s09", ProviderID: provider},
		{Date: "2025-03-12", SlotID: "s10", ProviderID: provider},
	}), "create booking")

	w := abort(err)

	body := testhttp.DecodeErrorResponse(t, w, http.StatusConflict, "already booked")
	assert.Equal(t, "ConflictError", body.Error.Kind)
	require.Len(t, body.Detail.Conflicts, 2)
	assert.Equal(t, "2025-03-12", body.Detail.Conflicts[1].Date)
	assert.Equal(t, "s10", body.Detail.Conflicts[1].SlotID)
	assert.Equal(t, provider.String(), body.Detail.Conflicts[1].ProviderID)
}
