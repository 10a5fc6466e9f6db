package api

import (
	"net/http"

	resdto "appointment-engine/internal/handler/dto/response"
	"appointment-engine/internal/handler/httperr"
	"appointment-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Provider availability
// @Description Slots already held for a provider per day, with the day's booked counts
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Param from query string true "From (YYYY-MM-DD)"
// @Param to query string true "To (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability/providers/{id} [get]
func (h *AvailabilityHandler) ForProvider(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider id", nil)
		return
	}
	view, err := h.q.ForProvider(c.Request.Context(), providerID, c.Query("from"), c.Query("to"))
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(view))
}
