package api

import (
	"net/http"

	reqdto "appointment-engine/internal/handler/dto/request"
	resdto "appointment-engine/internal/handler/dto/response"
	"appointment-engine/internal/handler/httperr"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingRequestHandler struct {
	cmds commands.BookingRequestCommands
	q    queries.BookingRequestQueries
}

func NewBookingRequestHandler(cmds commands.BookingRequestCommands, q queries.BookingRequestQueries) *BookingRequestHandler {
	return &BookingRequestHandler{cmds: cmds, q: q}
}

// @Summary Create booking request
// @Description A patient's request for a package; approved by creating a booking from it
// @Tags booking-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequestRequest true "Create booking request"
// @Success 201 {object} resdto.BookingRequestResponse
// @Failure 400 {object} httperr.Response
// @Router /booking-requests [post]
func (h *BookingRequestHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Create booking request failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingRequest(created))
}

// @Summary List booking requests
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved or rejected"
// @Success 200 {array} resdto.BookingRequestResponse
// @Failure 400 {object} httperr.Response
// @Router /booking-requests [get]
func (h *BookingRequestHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	res, err := resdto.FromBookingRequestViews(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": res})
}

// @Summary Get booking request
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking request ID"
// @Success 200 {object} resdto.BookingRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking-requests/{id} [get]
func (h *BookingRequestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Not found")
		return
	}
	res, err := resdto.FromBookingRequestView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update booking request
// @Description Change the package, patient, therapy, preferred sessions or remark of a pending request
// @Tags booking-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking request ID"
// @Param request body reqdto.UpdateBookingRequestRequest true "Update booking request"
// @Success 200 {object} resdto.BookingRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking-requests/{id} [put]
func (h *BookingRequestHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateBookingRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	updated, err := h.cmds.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Update booking request failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRequest(updated))
}

// @Summary Reject booking request
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking request ID"
// @Success 200 {object} resdto.BookingRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking-requests/{id}/reject [post]
func (h *BookingRequestHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	rejected, err := h.cmds.Reject(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Reject booking request failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRequest(rejected))
}

// @Summary Delete booking request
// @Tags booking-requests
// @Security BearerAuth
// @Param id path string true "Booking request ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking-requests/{id} [delete]
func (h *BookingRequestHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Delete booking request failed")
		return
	}
	c.Status(http.StatusNoContent)
}
