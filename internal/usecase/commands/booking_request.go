package commands

import (
	"context"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/domain/sequence"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequestInput struct {
	PackageID     uuid.UUID
	PatientID     uuid.UUID
	TherapyTypeID uuid.UUID
	Sessions      []bookingrequest.PreferredSession
	Remark        string
}

// UpdateBookingRequestInput leaves a field unchanged when it is nil.
type UpdateBookingRequestInput struct {
	PackageID     *uuid.UUID
	PatientID     *uuid.UUID
	TherapyTypeID *uuid.UUID
	Sessions      []bookingrequest.PreferredSession
	Remark        *string
}

func (in UpdateBookingRequestInput) changes() bookingrequest.Changes {
	return bookingrequest.Changes{
		PackageID:     in.PackageID,
		PatientID:     in.PatientID,
		TherapyTypeID: in.TherapyTypeID,
		Sessions:      in.Sessions,
		Remark:        in.Remark,
	}
}

type BookingRequestCommands interface {
	Create(ctx context.Context, in CreateBookingRequestInput) (*bookingrequest.Request, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateBookingRequestInput) (*bookingrequest.Request, error)
	Reject(ctx context.Context, id uuid.UUID) (*bookingrequest.Request, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRequestUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingRequestUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingRequestCommands {
	return &bookingRequestUseCaseImpl{uow: uow, clock: clk}
}

func (uc *bookingRequestUseCaseImpl) Create(ctx context.Context, in CreateBookingRequestInput) (*bookingrequest.Request, error) {
	var created *bookingrequest.Request
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		seq, err := tx.Sequences().Next(ctx, tx.DB(), sequence.CounterRequest)
		if err != nil {
			return err
		}
		req, err := bookingrequest.New(sequence.BookingRequestID(seq), in.PackageID, in.PatientID, in.TherapyTypeID, in.Sessions, in.Remark, uc.clock.Now())
		if err != nil {
			return err
		}

		if _, err = tx.Reads().PackageByID(ctx, in.PackageID); err != nil {
			if errs.Is(err, booking.ErrPackageNotFound) {
				return bookingrequest.ErrPackageNotFound
			}
			return err
		}

		if err = tx.BookingRequests().Create(ctx, tx.DB(), req); err != nil {
			return err
		}
		created = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *bookingRequestUseCaseImpl) Update(ctx context.Context, id uuid.UUID, in UpdateBookingRequestInput) (*bookingrequest.Request, error) {
	changes := in.changes()
	if changes.IsEmpty() {
		return nil, bookingrequest.ErrNothingToUpdate
	}

	var updated *bookingrequest.Request
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Reads().BookingRequestByID(ctx, id)
		if err != nil {
			return err
		}
		if err = req.Update(changes); err != nil {
			return err
		}

		if in.PackageID != nil {
			if _, err = tx.Reads().PackageByID(ctx, *in.PackageID); err != nil {
				if errs.Is(err, booking.ErrPackageNotFound) {
					return bookingrequest.ErrPackageNotFound
				}
				return err
			}
		}

		if err = tx.BookingRequests().Update(ctx, tx.DB(), req); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return bookingrequest.ErrNotFound
			}
			return err
		}
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *bookingRequestUseCaseImpl) Reject(ctx context.Context, id uuid.UUID) (*bookingrequest.Request, error) {
	var rejected *bookingrequest.Request
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Reads().BookingRequestByID(ctx, id)
		if err != nil {
			return err
		}
		if err = req.Reject(); err != nil {
			return err
		}
		if err = tx.BookingRequests().UpdateStatus(ctx, tx.DB(), req); err != nil {
			return err
		}
		rejected = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rejected, nil
}

func (uc *bookingRequestUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.BookingRequests().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return bookingrequest.ErrNotFound
			}
			return err
		}
		return nil
	})
}
