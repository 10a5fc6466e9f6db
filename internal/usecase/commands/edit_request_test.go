//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/editrequest"
	"appointment-engine/internal/domain/sequence"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EditRequestUseCaseTestSuite struct {
	suite.Suite
	ctx  context.Context
	ctrl *gomock.Controller
	*txMocks
	uc commands.EditRequestCommands
}

func TestEditRequestUseCaseSuite(t *testing.T) {
	suite.Run(t, new(EditRequestUseCaseTestSuite))
}

func (s *EditRequestUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.txMocks = newTxMocks(s.ctrl)
	s.uc = commands.NewEditRequestUseCase(s.uow, clock.NewFixed(time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)))
}

func (s *EditRequestUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EditRequestUseCaseTestSuite) createInput() commands.CreateEditRequestInput {
	e := builder.NewEditRequestBuilder()
	return commands.CreateEditRequestInput{BookingID: e.BookingID, PatientID: e.PatientID, Changes: e.Changes}
}

func (s *EditRequestUseCaseTestSuite) TestCreate_Success() {
	in := s.createInput()

	s.expectTx()
	s.reads.EXPECT().BookingByID(gomock.Any(), in.BookingID).Return(builder.NewBookingBuilder().BuildDomain(), nil)
	s.reads.EXPECT().HasPendingEditRequest(gomock.Any(), in.BookingID).Return(false, nil)
	s.sequences.EXPECT().Next(gomock.Any(), gomock.Any(), sequence.CounterSessionEditRequest).Return(int64(12), nil)
	s.editReqs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	req, err := s.uc.Create(s.ctx, in)

	s.Require().NoError(err)
	s.Equal("SER00012", req.Code())
	s.Equal(editrequest.StatusPending, req.Status())
}

func (s *EditRequestUseCaseTestSuite) TestCreate_RejectsSecondPendingRequest() {
	in := s.createInput()

	s.expectTx()
	s.reads.EXPECT().BookingByID(gomock.Any(), in.BookingID).Return(builder.NewBookingBuilder().BuildDomain(), nil)
	s.reads.EXPECT().HasPendingEditRequest(gomock.Any(), in.BookingID).Return(true, nil)

	_, err := s.uc.Create(s.ctx, in)

	s.ErrorIs(err, editrequest.ErrPendingRequestExists)
	s.True(errs.Is(err, errs.ErrState))
}

func (s *EditRequestUseCaseTestSuite) TestCreate_UnknownBooking() {
	in := s.createInput()

	s.expectTx()
	s.reads.EXPECT().BookingByID(gomock.Any(), in.BookingID).Return(nil, booking.ErrBookingNotFound)

	_, err := s.uc.Create(s.ctx, in)
	s.ErrorIs(err, booking.ErrBookingNotFound)
}

func (s *EditRequestUseCaseTestSuite) TestCreate_Validation() {
	in := s.createInput()
	in.PatientID = uuid.Nil
	in.Changes = []editrequest.Change{{SessionID: uuid.New()}}

	_, err := s.uc.Create(s.ctx, in)

	s.Equal([]string{"patientId", "sessions[0].newDate", "sessions[0].newSlotId"}, errs.ValidationFields(err))
}

func (s *EditRequestUseCaseTestSuite) TestUpdate() {
	approved := string(editrequest.StatusApproved)
	bogus := "archived"

	s.Run("nothing to update", func() {
		_, err := s.uc.Update(s.ctx, uuid.New(), commands.UpdateEditRequestInput{})
		s.ErrorIs(err, editrequest.ErrNothingToUpdate)
	})

	s.Run("unknown status", func() {
		_, err := s.uc.Update(s.ctx, uuid.New(), commands.UpdateEditRequestInput{Status: &bogus})
		s.ErrorIs(err, editrequest.ErrInvalidStatus)
	})

	s.Run("approve pending request", func() {
		req := builder.NewEditRequestBuilder().BuildDomain()
		s.expectTx()
		s.reads.EXPECT().EditRequestByID(gomock.Any(), req.ID()).Return(req, nil)
		s.editReqs.EXPECT().Update(gomock.Any(), gomock.Any(), req).Return(nil)

		updated, err := s.uc.Update(s.ctx, req.ID(), commands.UpdateEditRequestInput{Status: &approved})
		s.Require().NoError(err)
		s.Equal(editrequest.StatusApproved, updated.Status())
	})

	s.Run("terminal request cannot move back", func() {
		pending := string(editrequest.StatusPending)
		req := builder.NewEditRequestBuilder().With(func(b *builder.EditRequestBuilder) {
			b.Status = editrequest.StatusRejected
		}).BuildDomain()
		s.expectTx()
		s.reads.EXPECT().EditRequestByID(gomock.Any(), req.ID()).Return(req, nil)

		_, err := s.uc.Update(s.ctx, req.ID(), commands.UpdateEditRequestInput{Status: &pending})
		s.ErrorIs(err, editrequest.ErrInvalidTransition)
	})

	s.Run("row vanished", func() {
		req := builder.NewEditRequestBuilder().BuildDomain()
		s.expectTx()
		s.reads.EXPECT().EditRequestByID(gomock.Any(), req.ID()).Return(req, nil)
		s.editReqs.EXPECT().Update(gomock.Any(), gomock.Any(), req).
			Return(infra.WrapRepoErr("session edit request not found", nil, infra.KindNotFound))

		_, err := s.uc.Update(s.ctx, req.ID(), commands.UpdateEditRequestInput{Status: &approved})
		s.ErrorIs(err, editrequest.ErrNotFound)
	})
}

func (s *EditRequestUseCaseTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	s.expectTx()
	s.editReqs.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
		Return(infra.WrapRepoErr("session edit request not found", nil, infra.KindNotFound))

	s.ErrorIs(s.uc.Delete(s.ctx, id), editrequest.ErrNotFound)
}
