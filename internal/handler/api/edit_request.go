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

type EditRequestHandler struct {
	cmds commands.EditRequestCommands
	q    queries.EditRequestQueries
}

func NewEditRequestHandler(cmds commands.EditRequestCommands, q queries.EditRequestQueries) *EditRequestHandler {
	return &EditRequestHandler{cmds: cmds, q: q}
}

// @Summary Create session edit request
// @Description Propose moving sessions of a booking. A booking has at most one pending request.
// @Tags session-edit-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEditRequestRequest true "Create edit request"
// @Success 201 {object} resdto.EditRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /session-edit-requests [post]
func (h *EditRequestHandler) Create(c *gin.Context) {
	var req reqdto.CreateEditRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Create edit request failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEditRequest(created))
}

// @Summary List session edit requests
// @Tags session-edit-requests
// @Produce json
// @Security BearerAuth
// @Param appointmentId query string false "Booking ID"
// @Param status query string false "pending, approved or rejected"
// @Success 200 {array} resdto.EditRequestResponse
// @Failure 400 {object} httperr.Response
// @Router /session-edit-requests [get]
func (h *EditRequestHandler) List(c *gin.Context) {
	bookingID, err := optionalUUID(c, "appointmentId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointmentId", nil)
		return
	}
	items, err := h.q.List(c.Request.Context(), bookingID, c.Query("status"))
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	res, err := resdto.FromEditRequestViews(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": res})
}

// @Summary Update session edit request
// @Description Replace the proposed sessions and/or move the status
// @Tags session-edit-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Edit request ID"
// @Param request body reqdto.UpdateEditRequestRequest true "Update edit request"
// @Success 200 {object} resdto.EditRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /session-edit-requests/{id} [put]
func (h *EditRequestHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateEditRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	updated, err := h.cmds.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Update edit request failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromEditRequest(updated))
}

// @Summary Delete session edit request
// @Tags session-edit-requests
// @Security BearerAuth
// @Param id path string true "Edit request ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /session-edit-requests/{id} [delete]
func (h *EditRequestHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Delete edit request failed")
		return
	}
	c.Status(http.StatusNoContent)
}
