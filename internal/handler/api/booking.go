package api

import (
	"net/http"
	"strconv"

	reqdto "appointment-engine/internal/handler/dto/request"
	resdto "appointment-engine/internal/handler/dto/response"
	"appointment-engine/internal/handler/httperr"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds     commands.BookingCommands
	payments commands.PaymentCommands
	q        queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, payments commands.PaymentCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, payments: payments, q: q}
}

// @Summary Create booking
// @Description Create a booking with its sessions, pricing and pending payment. Rejects the whole request when any requested slot is taken.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err, "Invalid request")
		return
	}
	id, err := h.cmds.CreateBooking(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err, "Create booking failed")
		return
	}
	h.respondWithBooking(c, http.StatusCreated, id)
}

// @Summary Get booking
// @Description Get a populated booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	h.respondWithBooking(c, http.StatusOK, id)
}

// @Summary List bookings
// @Description List bookings filtered by patient, provider and session dates
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param patientId query string false "Patient ID"
// @Param providerId query string false "Provider ID"
// @Param from query string false "First session date (YYYY-MM-DD)"
// @Param to query string false "Last session date (YYYY-MM-DD)"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for the next page"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var filter queries.BookingFilter
	var err error
	if filter.PatientID, err = optionalUUID(c, "patientId"); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid patientId", nil)
		return
	}
	if filter.ProviderID, err = optionalUUID(c, "providerId"); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid providerId", nil)
		return
	}
	filter.From = c.Query("from")
	filter.To = c.Query("to")

	limit := queries.ValidateLimit(0)
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.List(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	list, err := resdto.FromBookingList(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	resp := gin.H{"bookings": list}
	if next != nil {
		resp["nextCursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update booking
// @Description Replace a booking's details and sessions. Only sessions the booking does not already hold are checked for availability.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.BookingRequest true "Update booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.BookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err, "Invalid request")
		return
	}
	if err = h.cmds.UpdateBooking(c.Request.Context(), id, in); err != nil {
		httperr.Abort(c, err, "Update booking failed")
		return
	}
	h.respondWithBooking(c, http.StatusOK, id)
}

// @Summary Delete booking
// @Description Delete a booking and release its slots
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteBooking(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Delete booking failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Check in session
// @Description Mark one session of a booking attended. Repeating the call is a no-op.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckInRequest true "Check-in request"
// @Success 200 {object} resdto.CheckInResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/check-in [post]
func (h *BookingHandler) CheckIn(c *gin.Context) {
	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CheckIn(c.Request.Context(), req.BookingID, req.SessionID)
	if err != nil {
		httperr.Abort(c, err, "Check-in failed")
		return
	}
	c.JSON(http.StatusOK, resdto.CheckInResponse{
		BookingID:        req.BookingID,
		SessionID:        req.SessionID,
		AlreadyCheckedIn: result.AlreadyCheckedIn,
	})
}

// @Summary Collect payment
// @Description Settle the booking's payment and record the income. Safe to repeat.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CollectPaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/collect-payment [post]
func (h *BookingHandler) CollectPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	result, err := h.payments.CollectPayment(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Collect payment failed")
		return
	}
	c.JSON(http.StatusOK, resdto.CollectPaymentResponse{
		PaymentID:   result.PaymentID,
		PaymentCode: result.PaymentCode,
		AmountCents: result.AmountCents,
		AlreadyPaid: result.AlreadyPaid,
	})
}

// @Summary Reception desk
// @Description Bookings with a session on the day plus bookings with an open payment
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/reception-desk [get]
func (h *BookingHandler) ReceptionDesk(c *gin.Context) {
	items, err := h.q.ReceptionDesk(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	list, err := resdto.FromBookingList(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// @Summary Calendar
// @Description One row per session between two dates
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param from query string true "From (YYYY-MM-DD)"
// @Param to query string true "To (YYYY-MM-DD)"
// @Param providerId query string false "Provider ID"
// @Success 200 {array} resdto.CalendarEntryResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/calendar [get]
func (h *BookingHandler) Calendar(c *gin.Context) {
	providerID, err := optionalUUID(c, "providerId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid providerId", nil)
		return
	}
	entries, err := h.q.Calendar(c.Request.Context(), c.Query("from"), c.Query("to"), providerID)
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	res, err := resdto.FromCalendar(entries)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": res})
}

func (h *BookingHandler) respondWithBooking(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load booking")
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(status, res)
}

func optionalUUID(c *gin.Context, key string) (*uuid.UUID, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
