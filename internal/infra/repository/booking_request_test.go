//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"appointment-engine/internal/domain/bookingrequest"
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

func TestBookingRequestRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		affected     int64
		dbErr        error
		expectErr    error
		expectFields []string
		expectKind   infra.RepositoryErrorKind
	}{
		{name: "success: request rewritten", affected: 1},
		{name: "error: request not found", affected: 0, expectKind: infra.KindNotFound},
		{
			name:         "error: package does not exist",
			dbErr:        &pgconn.PgError{Code: "23503", ConstraintName: "booking_requests_package_id_fkey"},
			expectErr:    bookingrequest.ErrPackageNotFound,
			expectFields: []string{"packageId"},
		},
		{
			name:         "error: patient does not exist",
			dbErr:        &pgconn.PgError{Code: "23503", ConstraintName: "booking_requests_patient_id_fkey"},
			expectFields: []string{"patientId"},
		},
		{name: "error: database error occurs", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingRequestWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRequestRepository(mockQueries, mockDB)

			req := builder.NewBookingRequestBuilder().BuildDomain()
			mockQueries.EXPECT().UpdateBookingRequest(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingRequestParams) (int64, error) {
					assert.Equal(t, req.ID(), arg.ID)
					assert.Equal(t, req.PackageID(), arg.PackageID)
					var sessions []bookingrequest.PreferredSession
					require.NoError(t, json.Unmarshal(arg.Sessions, &sessions))
					assert.Equal(t, req.Sessions(), sessions)
					return tc.affected, tc.dbErr
				})

			err := repo.Update(ctx, mockDB, req)

			switch {
			case tc.expectFields != nil:
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				assert.Equal(t, tc.expectFields, errs.ValidationFields(err))
				if tc.expectErr != nil {
					assert.True(t, errs.Is(err, tc.expectErr))
				}
			case tc.expectKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
