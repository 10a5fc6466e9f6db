package repository

import (
	"context"
	"time"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/payment"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository/converter"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// SessionSlotConstraint is the unique index that makes a slot exclusive.
const SessionSlotConstraint = "uq_booking_sessions_slot"

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	UpdateBookingPaymentStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID, status string) (int64, error)
	InsertBookingSessions(ctx context.Context, db sqlc.DBTX, args []sqlc.InsertBookingSessionParams) error
	DeleteSessionsByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (int64, error)
	MarkSessionCheckedIn(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkSessionCheckedInParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params, err := converter.BookingToCreateParams(b)
	if err != nil {
		return errs.NewValidation("invalid booking dates", "paymentDueDate", "followupDate")
	}
	if err := r.queries.CreateBooking(ctx, tx, params); err != nil {
		wrapped := infra.WrapRepoErr("failed to create booking", err)
		if ref := unknownReference(wrapped); ref != nil {
			return ref
		}
		return wrapped
	}
	return r.insertSessions(ctx, tx, b)
}

// Update rewrites the booking row and replaces its sessions wholesale.
func (r *BookingRepository) Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params, err := converter.BookingToUpdateParams(b)
	if err != nil {
		return errs.NewValidation("invalid booking dates", "paymentDueDate", "followupDate")
	}
	affected, err := r.queries.UpdateBooking(ctx, tx, params)
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to update booking", err)
		if ref := unknownReference(wrapped); ref != nil {
			return ref
		}
		return wrapped
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if _, err := r.queries.DeleteSessionsByBooking(ctx, tx, b.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear booking sessions", err)
	}
	return r.insertSessions(ctx, tx, b)
}

func (r *BookingRepository) insertSessions(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params, err := converter.SessionsToInsertParams(b)
	if err != nil {
		return errs.NewValidation("invalid session date", "sessions")
	}
	if err := r.queries.InsertBookingSessions(ctx, tx, params); err != nil {
		wrapped := infra.WrapRepoErr("failed to insert booking sessions", err)
		if ref := unknownReference(wrapped); ref != nil {
			return ref
		}
		return wrapped
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteBooking(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) MarkSessionCheckedIn(ctx context.Context, tx sqlc.DBTX, bookingID, sessionID uuid.UUID, at time.Time) error {
	_, err := r.queries.MarkSessionCheckedIn(ctx, tx, sqlc.MarkSessionCheckedInParams{
		ID:          sessionID,
		BookingID:   bookingID,
		CheckedInAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to check in session", err)
	}
	return nil
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status payment.Status) error {
	affected, err := r.queries.UpdateBookingPaymentStatus(ctx, tx, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking payment status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
