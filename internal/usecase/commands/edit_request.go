package commands

import (
	"context"

	"appointment-engine/internal/domain/editrequest"
	"appointment-engine/internal/domain/sequence"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateEditRequestInput struct {
	BookingID uuid.UUID
	PatientID uuid.UUID
	Changes   []editrequest.Change
}

// UpdateEditRequestInput leaves a field unchanged when it is nil.
type UpdateEditRequestInput struct {
	Changes []editrequest.Change
	Status  *string
}

type EditRequestCommands interface {
	Create(ctx context.Context, in CreateEditRequestInput) (*editrequest.Request, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateEditRequestInput) (*editrequest.Request, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type editRequestUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEditRequestUseCase(uow shared.UnitOfWork, clk clock.Clock) EditRequestCommands {
	return &editRequestUseCaseImpl{uow: uow, clock: clk}
}

func (uc *editRequestUseCaseImpl) Create(ctx context.Context, in CreateEditRequestInput) (*editrequest.Request, error) {
	if err := editrequest.ValidateChanges(in.BookingID, in.PatientID, in.Changes); err != nil {
		return nil, err
	}

	var created *editrequest.Request
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().BookingByID(ctx, in.BookingID); err != nil {
			return err
		}
		pending, err := tx.Reads().HasPendingEditRequest(ctx, in.BookingID)
		if err != nil {
			return err
		}
		if pending {
			return editrequest.ErrPendingRequestExists
		}

		seq, err := tx.Sequences().Next(ctx, tx.DB(), sequence.CounterSessionEditRequest)
		if err != nil {
			return err
		}
		req, err := editrequest.New(sequence.SessionEditRequestID(seq), in.BookingID, in.PatientID, in.Changes, uc.clock.Now())
		if err != nil {
			return err
		}
		if err = tx.EditRequests().Create(ctx, tx.DB(), req); err != nil {
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

func (uc *editRequestUseCaseImpl) Update(ctx context.Context, id uuid.UUID, in UpdateEditRequestInput) (*editrequest.Request, error) {
	if in.Changes == nil && in.Status == nil {
		return nil, editrequest.ErrNothingToUpdate
	}
	var status *editrequest.Status
	if in.Status != nil {
		s, err := editrequest.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		status = &s
	}

	var updated *editrequest.Request
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Reads().EditRequestByID(ctx, id)
		if err != nil {
			return err
		}
		if err = req.Update(in.Changes, status, uc.clock.Now()); err != nil {
			return err
		}
		if err = tx.EditRequests().Update(ctx, tx.DB(), req); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return editrequest.ErrNotFound
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

func (uc *editRequestUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.EditRequests().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return editrequest.ErrNotFound
			}
			return err
		}
		return nil
	})
}
