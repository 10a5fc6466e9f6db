//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/domain/editrequest"
	"appointment-engine/internal/domain/jobcard"
	"appointment-engine/internal/handler/api"
	resdto "appointment-engine/internal/handler/dto/response"
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

type RequestHandlersTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller

	editCommands    *commandsmock.MockEditRequestCommands
	editQueries     *queriesmock.MockEditRequestQueries
	requestCommands *commandsmock.MockBookingRequestCommands
	requestQueries  *queriesmock.MockBookingRequestQueries
	jobCards        *commandsmock.MockJobCardCommands
	availability    *queriesmock.MockAvailabilityQueries
}

func (s *RequestHandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.editCommands = commandsmock.NewMockEditRequestCommands(s.mockCtrl)
	s.editQueries = queriesmock.NewMockEditRequestQueries(s.mockCtrl)
	s.requestCommands = commandsmock.NewMockBookingRequestCommands(s.mockCtrl)
	s.requestQueries = queriesmock.NewMockBookingRequestQueries(s.mockCtrl)
	s.jobCards = commandsmock.NewMockJobCardCommands(s.mockCtrl)
	s.availability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)

	edits := api.NewEditRequestHandler(s.editCommands, s.editQueries)
	s.router.POST("/session-edit-requests", edits.Create)
	s.router.GET("/session-edit-requests", edits.List)
	s.router.PUT("/session-edit-requests/:id", edits.Update)
	s.router.DELETE("/session-edit-requests/:id", edits.Delete)

	requests := api.NewBookingRequestHandler(s.requestCommands, s.requestQueries)
	s.router.POST("/booking-requests", requests.Create)
	s.router.GET("/booking-requests", requests.List)
	s.router.GET("/booking-requests/:id", requests.Get)
	s.router.PUT("/booking-requests/:id", requests.Update)
	s.router.POST("/booking-requests/:id/reject", requests.Reject)
	s.router.DELETE("/booking-requests/:id", requests.Delete)

	s.router.POST("/job-cards", api.NewJobCardHandler(s.jobCards).Create)
	s.router.GET("/providers/:id/availability", api.NewAvailabilityHandler(s.availability).ForProvider)
}

func (s *RequestHandlersTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestHandlersSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlersTestSuite))
}

// ================================================================================
// Session edit requests
// ================================================================================

func (s *RequestHandlersTestSuite) TestEditRequest_Create() {
	eb := builder.NewEditRequestBuilder()
	reqBody := eb.BuildCreateRequestDTO()

	s.Run("success: returns 201 with the generated request id", func() {
		s.editCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(eb.BuildDomain(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/session-edit-requests", reqBody, "")

		var body resdto.EditRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("SER00001", body.RequestID)
		s.Equal(eb.BookingID, body.BookingID)
		s.Len(body.Sessions, 1)
	})

	s.Run("error: 400 when a pending request already exists", func() {
		s.editCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, editrequest.ErrPendingRequestExists)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/session-edit-requests", reqBody, "")

		body := httptest.DecodeErrorResponse(s.T(), rec, http.StatusBadRequest, "pending edit request already exists")
		s.Equal("StateError", body.Error.Kind)
	})

	s.Run("error: 400 on malformed session id", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("appointmentId", "nope"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/session-edit-requests", requestMap, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *RequestHandlersTestSuite) TestEditRequest_List() {
	view := builder.NewEditRequestBuilder().BuildView()

	s.editQueries.EXPECT().List(gomock.Any(), &view.BookingID, "pending").Return([]*queries.EditRequestView{view}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
		"/session-edit-requests?appointmentId="+view.BookingID.String()+"&status=pending", nil, "")

	var body struct {
		Requests []resdto.EditRequestResponse `json:"requests"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Requests, 1)
	s.Equal(view.RequestID, body.Requests[0].RequestID)
}

func (s *RequestHandlersTestSuite) TestEditRequest_UpdateAndDelete() {
	id := uuid.New()
	url := "/session-edit-requests/" + id.String()

	s.Run("error: terminal request cannot move", func() {
		s.editCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, editrequest.ErrInvalidTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "pending"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid status transition")
	})

	s.Run("success: approve", func() {
		approved := builder.NewEditRequestBuilder().
			With(func(b *builder.EditRequestBuilder) { b.Status = editrequest.StatusApproved }).
			BuildDomain()
		s.editCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(approved, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "approved"}, "")

		var body resdto.EditRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("approved", body.Status)
	})

	s.Run("error: delete unknown request", func() {
		s.editCommands.EXPECT().Delete(gomock.Any(), id).Return(editrequest.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

// ================================================================================
// Booking requests
// ================================================================================

func (s *RequestHandlersTestSuite) TestBookingRequest_Create() {
	rb := builder.NewBookingRequestBuilder()
	reqBody := rb.BuildCreateRequestDTO()

	s.Run("success: returns 201 with REQ code", func() {
		s.requestCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(rb.BuildDomain(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking-requests", reqBody, "")

		var body resdto.BookingRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("REQ-00001", body.RequestID)
		s.Equal("pending", body.Status)
	})

	s.Run("error: 400 for unknown package", func() {
		s.requestCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, bookingrequest.ErrPackageNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking-requests", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "package not found")
	})
}

func (s *RequestHandlersTestSuite) TestBookingRequest_Update() {
	rb := builder.NewBookingRequestBuilder()
	existing := rb.BuildDomain()
	url := "/booking-requests/" + existing.ID().String()

	s.Run("success: only supplied fields reach the use case", func() {
		s.requestCommands.EXPECT().Update(gomock.Any(), existing.ID(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.UpdateBookingRequestInput) (*bookingrequest.Request, error) {
				s.Require().NotNil(in.Remark)
				s.Equal("evenings only", *in.Remark)
				s.Nil(in.PackageID)
				s.Nil(in.Sessions)
				return existing, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"remark": "evenings only"}, "")

		var body resdto.BookingRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("REQ-00001", body.RequestID)
	})

	s.Run("error: 400 when nothing is supplied", func() {
		s.requestCommands.EXPECT().Update(gomock.Any(), existing.ID(), gomock.Any()).Return(nil, bookingrequest.ErrNothingToUpdate)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "nothing to update")
	})

	s.Run("error: 404 for unknown request", func() {
		s.requestCommands.EXPECT().Update(gomock.Any(), existing.ID(), gomock.Any()).Return(nil, bookingrequest.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"remark": "x"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/booking-requests/nope", map[string]any{"remark": "x"}, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *RequestHandlersTestSuite) TestBookingRequest_GetRejectDelete() {
	view := builder.NewBookingRequestBuilder().BuildView()

	s.Run("get", func() {
		s.requestQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking-requests/"+view.ID.String(), nil, "")

		var body resdto.BookingRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.PackageID, body.PackageID)
		s.Equal("mornings only", body.Remark)
	})

	s.Run("reject approved request", func() {
		s.requestCommands.EXPECT().Reject(gomock.Any(), view.ID).Return(nil, bookingrequest.ErrAlreadyApproved)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking-requests/"+view.ID.String()+"/reject", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already approved")
	})

	s.Run("delete", func() {
		s.requestCommands.EXPECT().Delete(gomock.Any(), view.ID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/booking-requests/"+view.ID.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})
}

// ================================================================================
// Job cards / availability
// ================================================================================

func (s *RequestHandlersTestSuite) TestJobCard_Create() {
	jb := builder.NewJobCardBuilder()
	reqBody := jb.BuildCreateRequestDTO()

	s.Run("success: returns the priced breakdown", func() {
		in := reqBody.ToInput()
		jc, err := jobcard.New(in.Spec, nil, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
		s.Require().NoError(err)
		s.jobCards.EXPECT().Create(gomock.Any(), gomock.Any()).Return(jc, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/job-cards", reqBody, "")

		var body resdto.JobCardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(5000), body.SubtotalCents)
		s.Equal(int64(5000), body.TotalPayableCents)
		s.False(body.DealApplied)
		s.Equal("Pending", body.PaymentStatus)
	})

	s.Run("error: 400 on invalid service type", func() {
		s.jobCards.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, jobcard.ErrInvalidServiceType)
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("serviceType", "Paint"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/job-cards", requestMap, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid service type")
	})
}

func (s *RequestHandlersTestSuite) TestAvailability() {
	providerID := uuid.New()

	s.Run("success", func() {
		s.availability.EXPECT().ForProvider(gomock.Any(), providerID, "2025-03-10", "2025-03-11").Return(&queries.AvailabilityView{
			ProviderID: providerID,
			From:       "2025-03-10",
			To:         "2025-03-11",
			Days: map[string]queries.DayAvailability{
				"2025-03-10": {BookedSlots: map[string][]string{"PRV001": {"s09"}}, SlotCounts: map[string]int{"s09": 1}},
			},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/providers/"+providerID.String()+"/availability?from=2025-03-10&to=2025-03-11", nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{"s09"}, body.Days["2025-03-10"].BookedSlots["PRV001"])
		s.Equal(1, body.Days["2025-03-10"].SlotCounts["s09"])
	})

	s.Run("error: 400 on invalid provider id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/providers/x/availability", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid provider id")
	})
}
