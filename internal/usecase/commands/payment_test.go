//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/payment"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/tests/common/builder"
	commandsmock "appointment-engine/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCollectPayment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		paymentStatus payment.Status
		recorded      bool
		expectAlready bool
	}{
		{name: "first collection settles and records income", paymentStatus: payment.StatusPending, recorded: true},
		{name: "repeat collection leaves one record", paymentStatus: payment.StatusPaid, recorded: false, expectAlready: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTxMocks(ctrl)
			events := commandsmock.NewMockEventPublisher(ctrl)
			uc := commands.NewPaymentUseCase(m.uow, events, clock.NewFixed(now))

			bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.PaymentStatus = tc.paymentStatus })
			b := bb.BuildDomain()
			p := bb.BuildPayment()

			m.expectTx()
			m.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
			m.reads.EXPECT().PaymentByID(gomock.Any(), *b.PaymentID()).Return(p, nil)
			if tc.paymentStatus != payment.StatusPaid {
				m.payments.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), p).Return(nil)
				m.bookings.EXPECT().UpdatePaymentStatus(gomock.Any(), gomock.Any(), b.ID(), payment.StatusPaid).Return(nil)
			}
			m.finance.EXPECT().RecordIncome(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, rec payment.FinanceRecord) (bool, error) {
					assert.Equal(t, p.ID(), rec.PaymentID)
					assert.Equal(t, "Payment for Booking #"+b.AppointmentID(), rec.Description)
					return tc.recorded, nil
				})
			if tc.recorded {
				events.EXPECT().Publish(gomock.Any(), commands.EventPaymentCollected, gomock.Any()).Return(nil)
			}

			res, err := uc.CollectPayment(ctx, b.ID())

			require.NoError(t, err)
			assert.Equal(t, tc.expectAlready, res.AlreadyPaid)
			assert.Equal(t, p.ID(), res.PaymentID)
			assert.True(t, p.IsPaid())
			assert.Equal(t, payment.StatusPaid, b.PaymentStatus())
		})
	}
}

func TestCollectPayment_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("booking without payment reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		uc := commands.NewPaymentUseCase(m.uow, nil, clock.NewSystem())
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.PaymentID = nil }).BuildDomain()

		m.expectTx()
		m.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)

		_, err := uc.CollectPayment(ctx, b.ID())
		assert.ErrorIs(t, err, booking.ErrNoPaymentReference)
	})

	t.Run("missing booking id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := commands.NewPaymentUseCase(newTxMocks(ctrl).uow, nil, clock.NewSystem())

		_, err := uc.CollectPayment(ctx, uuid.Nil)
		require.Error(t, err)
	})
}
