package commands

import (
	"context"

	"appointment-engine/internal/domain/discount"
	"appointment-engine/internal/domain/jobcard"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/usecase/shared"
)

type CreateJobCardInput struct {
	Spec     jobcard.Spec
	DealCode string
}

type JobCardCommands interface {
	Create(ctx context.Context, in CreateJobCardInput) (*jobcard.JobCard, error)
}

type jobCardUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings BookingSettings
}

func NewJobCardUseCase(uow shared.UnitOfWork, clk clock.Clock, settings BookingSettings) JobCardCommands {
	return &jobCardUseCaseImpl{uow: uow, clock: clk, settings: settings}
}

// Create prices the job card against the business's deal for the code. An
// unknown or expired code prices at full cost.
func (uc *jobCardUseCaseImpl) Create(ctx context.Context, in CreateJobCardInput) (*jobcard.JobCard, error) {
	var created *jobcard.JobCard
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var deal *discount.Deal
		if discount.NormalizeCode(in.DealCode) != "" {
			businessID := in.Spec.BusinessID
			d, err := tx.Reads().ActiveDeal(ctx, in.DealCode, &businessID, clock.Today(uc.clock, uc.settings.Location))
			if err != nil {
				return err
			}
			deal = d
		}

		jc, err := jobcard.New(in.Spec, deal, uc.clock.Now())
		if err != nil {
			return err
		}
		if err = tx.JobCards().Create(ctx, tx.DB(), jc); err != nil {
			return err
		}
		created = jc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
