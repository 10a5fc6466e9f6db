//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/domain/sequence"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func inputFrom(rb *builder.BookingRequestBuilder) commands.CreateBookingRequestInput {
	return commands.CreateBookingRequestInput{
		PackageID:     rb.PackageID,
		PatientID:     rb.PatientID,
		TherapyTypeID: rb.TherapyTypeID,
		Sessions:      rb.Sessions,
		Remark:        rb.Remark,
	}
}

func TestBookingRequest_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success: pending request with generated code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTxMocks(ctrl)
		uc := commands.NewBookingRequestUseCase(m.uow, clock.NewFixed(now))
		rb := builder.NewBookingRequestBuilder()

		m.expectTx()
		m.sequences.EXPECT().Next(gomock.Any(), gomock.Any(), sequence.CounterRequest).Return(int64(4), nil)
		m.reads.EXPECT().PackageByID(gomock.Any(), rb.PackageID).Return(builder.NewBookingBuilder().BuildPackage(), nil)
		m.bookingReqs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		req, err := uc.Create(ctx, inputFrom(rb))

		require.NoError(t, err)
		assert.Equal(t, "REQ-00004", req.Code())
		assert.Equal(t, bookingrequest.StatusPending, req.Status())
		assert.Equal(t, rb.Sessions, req.Sessions())
		assert.Equal(t, now, req.CreatedAt())
	})

	t.Run("error: unknown package", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTxMocks(ctrl)
		uc := commands.NewBookingRequestUseCase(m.uow, clock.NewFixed(now))
		rb := builder.NewBookingRequestBuilder()

		m.expectTx()
		m.sequences.EXPECT().Next(gomock.Any(), gomock.Any(), sequence.CounterRequest).Return(int64(5), nil)
		m.reads.EXPECT().PackageByID(gomock.Any(), rb.PackageID).Return(nil, booking.ErrPackageNotFound)

		_, err := uc.Create(ctx, inputFrom(rb))

		assert.ErrorIs(t, err, bookingrequest.ErrPackageNotFound)
	})

	t.Run("error: every missing field is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTxMocks(ctrl)
		uc := commands.NewBookingRequestUseCase(m.uow, clock.NewFixed(now))

		m.expectTx()
		m.sequences.EXPECT().Next(gomock.Any(), gomock.Any(), sequence.CounterRequest).Return(int64(6), nil)

		_, err := uc.Create(ctx, commands.CreateBookingRequestInput{})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, []string{"package", "patient", "therapy"}, errs.ValidationFields(err))
	})
}

func TestBookingRequest_Reject(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		status  bookingrequest.Status
		wantErr error
	}{
		{name: "pending request is rejected", status: bookingrequest.StatusPending},
		{name: "rejecting twice fails", status: bookingrequest.StatusRejected, wantErr: bookingrequest.ErrAlreadyRejected},
		{name: "approved request cannot be rejected", status: bookingrequest.StatusApproved, wantErr: bookingrequest.ErrAlreadyApproved},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newTxMocks(ctrl)
			uc := commands.NewBookingRequestUseCase(m.uow, clock.NewSystem())
			req := builder.NewBookingRequestBuilder().
				With(func(b *builder.BookingRequestBuilder) { b.Status = tc.status }).
				BuildDomain()

			m.expectTx()
			m.reads.EXPECT().BookingRequestByID(gomock.Any(), req.ID()).Return(req, nil)
			if tc.wantErr == nil {
				m.bookingReqs.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), req).Return(nil)
			}

			got, err := uc.Reject(ctx, req.ID())

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bookingrequest.StatusRejected, got.Status())
		})
	}
}

func TestBookingRequest_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success: supplied fields replaced, others kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTxMocks(ctrl)
		uc := commands.NewBookingRequestUseCase(m.uow, clock.NewSystem())
		rb := builder.NewBookingRequestBuilder()
		req := rb.BuildDomain()
		pkg := uuid.New()
		remark := "evenings only"

		m.expectTx()
		m.reads.EXPECT().BookingRequestByID(gomock.Any(), req.ID()).Return(req, nil)
		m.reads.EXPECT().PackageByID(gomock.Any(), pkg).Return(builder.NewBookingBuilder().BuildPackage(), nil)
		m.bookingReqs.EXPECT().Update(gomock.Any(), gomock.Any(), req).Return(nil)

		got, err := uc.Update(ctx, req.ID(), commands.UpdateBookingRequestInput{PackageID: &pkg, Remark: &remark})

		require.NoError(t, err)
		assert.Equal(t, pkg, got.PackageID())
		assert.Equal(t, "evenings only", got.Remark())
		assert.Equal(t, rb.PatientID, got.PatientID())
		assert.Equal(t, rb.Sessions, got.Sessions())
	})

	t.Run("error: nothing supplied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTxMocks(ctrl)
		uc := commands.NewBookingRequestUseCase(m.uow, clock.NewSystem())

		_, err := uc.Update(ctx, uuid.New(), commands.UpdateBookingRequestInput{})

		assert.ErrorIs(t, err, bookingrequest.ErrNothingToUpdate)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("error: unknown request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTxMocks(ctrl)
		uc := commands.NewBookingRequestUseCase(m.uow, clock.NewSystem())
		id := uuid.New()
		remark := "x"

		m.expectTx()
		m.reads.EXPECT().BookingRequestByID(gomock.Any(), id).Return(nil, bookingrequest.ErrNotFound)

		_, err := uc.Update(ctx, id, commands.UpdateBookingRequestInput{Remark: &remark})

		assert.ErrorIs(t, err, bookingrequest.ErrNotFound)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("error: unknown package", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTxMocks(ctrl)
		uc := commands.NewBookingRequestUseCase(m.uow, clock.NewSystem())
		req := builder.NewBookingRequestBuilder().BuildDomain()
		pkg := uuid.New()

		m.expectTx()
		m.reads.EXPECT().BookingRequestByID(gomock.Any(), req.ID()).Return(req, nil)
		m.reads.EXPECT().PackageByID(gomock.Any(), pkg).Return(nil, booking.ErrPackageNotFound)

		_, err := uc.Update(ctx, req.ID(), commands.UpdateBookingRequestInput{PackageID: &pkg})

		assert.ErrorIs(t, err, bookingrequest.ErrPackageNotFound)
	})

	t.Run("error: approved request is frozen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTxMocks(ctrl)
		uc := commands.NewBookingRequestUseCase(m.uow, clock.NewSystem())
		req := builder.NewBookingRequestBuilder().
			With(func(b *builder.BookingRequestBuilder) { b.Status = bookingrequest.StatusApproved }).
			BuildDomain()
		remark := "x"

		m.expectTx()
		m.reads.EXPECT().BookingRequestByID(gomock.Any(), req.ID()).Return(req, nil)

		_, err := uc.Update(ctx, req.ID(), commands.UpdateBookingRequestInput{Remark: &remark})

		assert.ErrorIs(t, err, bookingrequest.ErrAlreadyApproved)
		assert.True(t, errs.Is(err, errs.ErrState))
	})
}

func TestBookingRequest_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTxMocks(ctrl)
	uc := commands.NewBookingRequestUseCase(m.uow, clock.NewSystem())
	id := uuid.New()

	m.expectTx()
	m.bookingReqs.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
		Return(infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound))

	err := uc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, bookingrequest.ErrNotFound)
}
