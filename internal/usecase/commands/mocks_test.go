//go:build unit

package commands_test

import (
	"context"

	"appointment-engine/internal/usecase/shared"
	sharedmock "appointment-engine/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// txMocks wires a mocked transaction whose repositories are all mocks.
type txMocks struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	bookings    *sharedmock.MockBookingRepository
	payments    *sharedmock.MockPaymentRepository
	finance     *sharedmock.MockFinanceRepository
	sequences   *sharedmock.MockSequenceRepository
	capacity    *sharedmock.MockCapacityRepository
	editReqs    *sharedmock.MockEditRequestRepository
	bookingReqs *sharedmock.MockBookingRequestRepository
	jobCards    *sharedmock.MockJobCardRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		reads:       sharedmock.NewMockCommandReads(ctrl),
		bookings:    sharedmock.NewMockBookingRepository(ctrl),
		payments:    sharedmock.NewMockPaymentRepository(ctrl),
		finance:     sharedmock.NewMockFinanceRepository(ctrl),
		sequences:   sharedmock.NewMockSequenceRepository(ctrl),
		capacity:    sharedmock.NewMockCapacityRepository(ctrl),
		editReqs:    sharedmock.NewMockEditRequestRepository(ctrl),
		bookingReqs: sharedmock.NewMockBookingRequestRepository(ctrl),
		jobCards:    sharedmock.NewMockJobCardRepository(ctrl),
	}
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Payments().Return(m.payments).AnyTimes()
	m.tx.EXPECT().Finance().Return(m.finance).AnyTimes()
	m.tx.EXPECT().Sequences().Return(m.sequences).AnyTimes()
	m.tx.EXPECT().Capacity().Return(m.capacity).AnyTimes()
	m.tx.EXPECT().EditRequests().Return(m.editReqs).AnyTimes()
	m.tx.EXPECT().BookingRequests().Return(m.bookingReqs).AnyTimes()
	m.tx.EXPECT().JobCards().Return(m.jobCards).AnyTimes()
	return m
}

// expectTx runs the unit of work's callback against the mocked transaction.
func (m *txMocks) expectTx() {
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
}
