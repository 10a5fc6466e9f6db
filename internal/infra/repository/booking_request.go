package repository

import (
	"context"

	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository/converter"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRequestWriteQueries interface {
	CreateBookingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingRequestParams) error
	UpdateBookingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingRequestParams) (int64, error)
	UpdateBookingRequestStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingRequestStatusParams) (int64, error)
	DeleteBookingRequest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BookingRequestRepository struct {
	queries BookingRequestWriteQueries
	db      sqlc.DBTX
}

func NewBookingRequestRepository(queries BookingRequestWriteQueries, db sqlc.DBTX) *BookingRequestRepository {
	return &BookingRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *bookingrequest.Request) error {
	params, err := converter.BookingRequestToCreateParams(req)
	if err != nil {
		return errs.Wrap(err, "failed to encode preferred sessions")
	}
	if err := r.queries.CreateBookingRequest(ctx, tx, params); err != nil {
		wrapped := infra.WrapRepoErr("failed to create booking request", err)
		ref := unknownReference(wrapped)
		if ref == nil {
			return wrapped
		}
		if infra.ConstraintName(wrapped) == bookingRequestPackageConstraint {
			return errs.Mark(ref, bookingrequest.ErrPackageNotFound)
		}
		return ref
	}
	return nil
}

// Update rewrites the requested package, patient, therapy, sessions and remark.
func (r *BookingRequestRepository) Update(ctx context.Context, tx sqlc.DBTX, req *bookingrequest.Request) error {
	params, err := converter.BookingRequestToUpdateParams(req)
	if err != nil {
		return errs.Wrap(err, "failed to encode preferred sessions")
	}
	affected, err := r.queries.UpdateBookingRequest(ctx, tx, params)
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to update booking request", err)
		ref := unknownReference(wrapped)
		if ref == nil {
			return wrapped
		}
		if infra.ConstraintName(wrapped) == bookingRequestPackageConstraint {
			return errs.Mark(ref, bookingrequest.ErrPackageNotFound)
		}
		return ref
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRequestRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, req *bookingrequest.Request) error {
	affected, err := r.queries.UpdateBookingRequestStatus(ctx, tx, sqlc.UpdateBookingRequestStatusParams{
		ID:        req.ID(),
		Status:    string(req.Status()),
		BookingID: pgconv.UUIDPtrToPgtype(req.BookingID()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking request status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRequestRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteBookingRequest(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking request", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound)
	}
	return nil
}
