package commands

import (
	"context"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/payment"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CollectPaymentResult struct {
	PaymentID   uuid.UUID
	PaymentCode string
	AmountCents int64
	AlreadyPaid bool
}

type PaymentCommands interface {
	CollectPayment(ctx context.Context, bookingID uuid.UUID) (*CollectPaymentResult, error)
}

type paymentUseCaseImpl struct {
	uow    shared.UnitOfWork
	events EventPublisher
	clock  clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, events EventPublisher, clk clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, events: events, clock: clk}
}

// CollectPayment settles the booking's payment and writes its income record.
// Collecting twice leaves exactly one record.
func (uc *paymentUseCaseImpl) CollectPayment(ctx context.Context, bookingID uuid.UUID) (*CollectPaymentResult, error) {
	if bookingID == uuid.Nil {
		return nil, errs.NewValidation("missing required fields", "bookingId")
	}

	var (
		result   *CollectPaymentResult
		recorded bool
		apptID   string
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.PaymentID() == nil {
			return booking.ErrNoPaymentReference
		}

		p, err := tx.Reads().PaymentByID(ctx, *b.PaymentID())
		if err != nil {
			return err
		}

		alreadyPaid := p.IsPaid()
		if !alreadyPaid {
			p.MarkPaid(now)
			if err = tx.Payments().MarkPaid(ctx, tx.DB(), p); err != nil {
				return err
			}
		}
		if b.PaymentStatus() != payment.StatusPaid {
			b.MarkPaid(now)
			if err = tx.Bookings().UpdatePaymentStatus(ctx, tx.DB(), b.ID(), payment.StatusPaid); err != nil {
				return err
			}
		}

		recorded, err = tx.Finance().RecordIncome(ctx, tx.DB(), payment.NewIncome(p, b.AppointmentID(), now))
		if err != nil {
			return err
		}

		apptID = b.AppointmentID()
		result = &CollectPaymentResult{
			PaymentID:   p.ID(),
			PaymentCode: p.Code(),
			AmountCents: p.AmountCents(),
			AlreadyPaid: alreadyPaid,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if recorded {
		publish(ctx, uc.events, EventPaymentCollected, PaymentEvent{
			BookingID:     bookingID,
			AppointmentID: apptID,
			PaymentID:     result.PaymentID,
			PaymentCode:   result.PaymentCode,
			AmountCents:   result.AmountCents,
			OccurredAt:    uc.clock.Now(),
		})
	}
	return result, nil
}
