//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/editrequest"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/tests/common/builder"
	repositorymock "appointment-engine/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEditRequestRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		dbErr        error
		expectErr    error
		expectKind   infra.RepositoryErrorKind
		expectFields []string
	}{
		{name: "success: request stored"},
		{
			name:      "error: booking already has a pending request",
			dbErr:     &pgconn.PgError{Code: "23505", ConstraintName: repository.PendingEditRequestConstraint},
			expectErr: editrequest.ErrPendingRequestExists,
		},
		{
			name:       "error: other unique violation stays a repository error",
			dbErr:      &pgconn.PgError{Code: "23505", ConstraintName: "session_edit_requests_request_code_key"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:         "error: patient does not exist",
			dbErr:        &pgconn.PgError{Code: "23503", ConstraintName: "session_edit_requests_patient_id_fkey"},
			expectFields: []string{"patientId"},
		},
		{
			name:      "error: booking does not exist",
			dbErr:     &pgconn.PgError{Code: "23503", ConstraintName: "session_edit_requests_booking_id_fkey"},
			expectErr: booking.ErrBookingNotFound,
		},
		{
			name:       "error: database error occurs",
			dbErr:      errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockEditRequestWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewEditRequestRepository(mockQueries, mockDB)

			req := builder.NewEditRequestBuilder().BuildDomain()
			mockQueries.EXPECT().CreateSessionEditRequest(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateSessionEditRequestParams) error {
					assert.Equal(t, req.ID(), arg.ID)
					assert.Equal(t, req.BookingID(), arg.BookingID)
					return tc.dbErr
				})

			err := repo.Create(ctx, mockDB, req)

			switch {
			case tc.expectErr != nil:
				assert.ErrorIs(t, err, tc.expectErr)
			case tc.expectFields != nil:
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				assert.Equal(t, tc.expectFields, errs.ValidationFields(err))
			case tc.expectKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestEditRequestRepository_UpdateAndDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockEditRequestWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewEditRequestRepository(mockQueries, mockDB)
	req := builder.NewEditRequestBuilder().BuildDomain()

	mockQueries.EXPECT().UpdateSessionEditRequest(ctx, mockDB, gomock.Any()).Return(int64(0), nil)
	mockQueries.EXPECT().DeleteSessionEditRequest(ctx, mockDB, req.ID()).Return(int64(0), nil)

	assert.True(t, infra.IsKind(repo.Update(ctx, mockDB, req), infra.KindNotFound))
	assert.True(t, infra.IsKind(repo.Delete(ctx, mockDB, req.ID()), infra.KindNotFound))
}
