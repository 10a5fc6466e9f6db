package repository

import (
	"context"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/editrequest"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository/converter"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// PendingEditRequestConstraint allows one pending edit request per booking.
const PendingEditRequestConstraint = "uq_session_edit_requests_pending"

const editRequestBookingConstraint = "session_edit_requests_booking_id_fkey"

type EditRequestWriteQueries interface {
	CreateSessionEditRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSessionEditRequestParams) error
	UpdateSessionEditRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSessionEditRequestParams) (int64, error)
	DeleteSessionEditRequest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type EditRequestRepository struct {
	queries EditRequestWriteQueries
	db      sqlc.DBTX
}

func NewEditRequestRepository(queries EditRequestWriteQueries, db sqlc.DBTX) *EditRequestRepository {
	return &EditRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EditRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *editrequest.Request) error {
	params, err := converter.EditRequestToCreateParams(req)
	if err != nil {
		return errs.Wrap(err, "failed to encode session changes")
	}
	if err := r.queries.CreateSessionEditRequest(ctx, tx, params); err != nil {
		if infra.ConstraintName(err) == PendingEditRequestConstraint {
			return editrequest.ErrPendingRequestExists
		}
		wrapped := infra.WrapRepoErr("failed to create session edit request", err)
		if infra.ConstraintName(wrapped) == editRequestBookingConstraint {
			return booking.ErrBookingNotFound
		}
		if ref := unknownReference(wrapped); ref != nil {
			return ref
		}
		return wrapped
	}
	return nil
}

func (r *EditRequestRepository) Update(ctx context.Context, tx sqlc.DBTX, req *editrequest.Request) error {
	params, err := converter.EditRequestToUpdateParams(req)
	if err != nil {
		return errs.Wrap(err, "failed to encode session changes")
	}
	affected, err := r.queries.UpdateSessionEditRequest(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update session edit request", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("session edit request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EditRequestRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteSessionEditRequest(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete session edit request", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("session edit request not found", nil, infra.KindNotFound)
	}
	return nil
}
