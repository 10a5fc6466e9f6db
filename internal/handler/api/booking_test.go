//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/handler/api"
	resdto "appointment-engine/internal/handler/dto/response"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/internal/usecase/queries"
	"appointment-engine/tests/common/builder"
	"appointment-engine/tests/common/httptest"
	"appointment-engine/tests/common/testutil"
	commandsmock "appointment-engine/tests/mock/commands"
	queriesmock "appointment-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockPayments *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockPayments, s.mockQueries)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings", s.handler.List)
	s.router.POST("/bookings/check-in", s.handler.CheckIn)
	s.router.GET("/bookings/reception-desk", s.handler.ReceptionDesk)
	s.router.GET("/bookings/calendar", s.handler.Calendar)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.PUT("/bookings/:id", s.handler.Update)
	s.router.DELETE("/bookings/:id", s.handler.Delete)
	s.router.POST("/bookings/:id/collect-payment", s.handler.CollectPayment)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 with the populated booking", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.BookingInput) (uuid.UUID, error) {
				s.Equal(b.PackageID, in.PackageID)
				s.Len(in.Sessions, 2)
				s.Equal("s10", in.Sessions[1].SlotID)
				return view.ID, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(b.AppointmentID, body.AppointmentID)
		s.Len(body.Sessions, 2)
	})

	s.Run("error: 409 lists every conflicting slot", func() {
		conflicts := []booking.Conflict{
			{Date: "2025-03-10", SlotID: "s09", ProviderID: b.ProviderID},
			{Date: "2025-03-12", SlotID: "s10", ProviderID: b.ProviderID},
		}
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, booking.NewConflictError(conflicts))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		body := httptest.DecodeErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
		s.Require().Len(body.Detail.Conflicts, 2)
		s.Equal("2025-03-10", body.Detail.Conflicts[0].Date)
		s.Equal("s10", body.Detail.Conflicts[1].SlotID)
	})

	s.Run("error: 400 names every missing field", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Without("packageId", "sessions"))
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.NewValidation("missing required fields", "packageId", "sessions"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		body := httptest.DecodeErrorResponse(s.T(), rec, http.StatusBadRequest, "missing required fields")
		s.Equal([]string{"packageId", "sessions"}, body.Detail.Fields)
	})

	s.Run("success: empty ids reach the use case as absent", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("packageId", ""),
			testutil.Field("therapyId", ""),
		)
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.BookingInput) (uuid.UUID, error) {
				s.Equal(uuid.Nil, in.PackageID)
				s.Equal(uuid.Nil, in.TherapyTypeID)
				s.Equal(b.PatientID, in.PatientID)
				return uuid.Nil, errs.NewValidation("missing required fields", "packageId", "therapyId")
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		body := httptest.DecodeErrorResponse(s.T(), rec, http.StatusBadRequest, "missing required fields")
		s.Equal([]string{"packageId", "therapyId"}, body.Detail.Fields)
	})

	s.Run("error: 400 names the malformed id", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("packageId", "not-a-uuid"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		body := httptest.DecodeErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid identifier")
		s.Equal([]string{"packageId"}, body.Detail.Fields)
	})

	s.Run("error: 400 names the malformed session provider", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.SessionField(0, "providerId", "PRV001"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		body := httptest.DecodeErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid identifier")
		s.Equal([]string{"sessions[0].providerId"}, body.Detail.Fields)
	})

	s.Run("error: 400 when the body is not json", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "[", "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdate() {
	b := builder.NewBookingBuilder()
	view := b.BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: returns the refreshed booking", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), view.ID, gomock.Any()).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, b.BuildRequestDTO(), "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when the booking is gone", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), view.ID, gomock.Any()).Return(booking.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, b.BuildRequestDTO(), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 400 on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/abc", b.BuildRequestDTO(), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *BookingHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id).Return(nil)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id).Return(booking.ErrBookingNotFound)
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	view := builder.NewBookingBuilder().BuildView()
	patientID := uuid.New()

	s.Run("success: passes filters and returns the next cursor", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.BookingFilter{PatientID: &patientID, From: "2025-03-01", To: "2025-03-31"}, gomock.Nil(), 5).
			Return([]*queries.BookingView{view}, &queries.Cursor{After: "next-page"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?patientId="+patientID.String()+"&from=2025-03-01&to=2025-03-31&limit=5", nil, "")

		var body struct {
			Bookings   []resdto.BookingResponse `json:"bookings"`
			NextCursor string                   `json:"nextCursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Bookings, 1)
		s.Equal("next-page", body.NextCursor)
	})

	s.Run("error: 400 on invalid providerId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?providerId=nope", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid providerId")
	})
}

// ================================================================================
// TestCheckIn / TestCollectPayment
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckIn() {
	bookingID, sessionID := uuid.New(), uuid.New()
	reqBody := map[string]any{"bookingId": bookingID.String(), "sessionId": sessionID.String()}

	s.mockCommands.EXPECT().CheckIn(gomock.Any(), bookingID, sessionID).
		Return(&commands.CheckInResult{AlreadyCheckedIn: true}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/check-in", reqBody, "")

	var body resdto.CheckInResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.True(body.AlreadyCheckedIn)
	s.Equal(sessionID, body.SessionID)
}

func (s *BookingHandlerTestSuite) TestCollectPayment() {
	id := uuid.New()
	paymentID := uuid.New()

	s.mockPayments.EXPECT().CollectPayment(gomock.Any(), id).Return(&commands.CollectPaymentResult{
		PaymentID:   paymentID,
		PaymentCode: "INV-2025-00001",
		AmountCents: 45000,
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/collect-payment", nil, "")

	var body resdto.CollectPaymentResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("INV-2025-00001", body.PaymentCode)
	s.Equal(int64(45000), body.AmountCents)
	s.False(body.AlreadyPaid)
}

// ================================================================================
// TestReceptionDesk / TestCalendar
// ================================================================================

func (s *BookingHandlerTestSuite) TestReceptionDesk() {
	s.mockQueries.EXPECT().ReceptionDesk(gomock.Any(), "").Return([]*queries.BookingView{}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/reception-desk", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"bookings":[]}`, rec.Body.String())
}

func (s *BookingHandlerTestSuite) TestCalendar() {
	s.Run("error: 400 names the missing range ends", func() {
		s.mockQueries.EXPECT().Calendar(gomock.Any(), "", "", gomock.Nil()).
			Return(nil, errs.NewValidation("missing date range", "from", "to"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/calendar", nil, "")

		body := httptest.DecodeErrorResponse(s.T(), rec, http.StatusBadRequest, "missing date range")
		s.Equal([]string{"from", "to"}, body.Detail.Fields)
	})
}
