package api

import (
	"net/http"

	reqdto "appointment-engine/internal/handler/dto/request"
	resdto "appointment-engine/internal/handler/dto/response"
	"appointment-engine/internal/handler/httperr"
	"appointment-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type JobCardHandler struct {
	cmds commands.JobCardCommands
}

func NewJobCardHandler(cmds commands.JobCardCommands) *JobCardHandler {
	return &JobCardHandler{cmds: cmds}
}

// @Summary Create job card
// @Description Price a vehicle service job, applying the business's deal when the code matches
// @Tags job-cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateJobCardRequest true "Create job card request"
// @Success 201 {object} resdto.JobCardResponse
// @Failure 400 {object} httperr.Response
// @Router /job-cards [post]
func (h *JobCardHandler) Create(c *gin.Context) {
	var req reqdto.CreateJobCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	jc, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Create job card failed")
		return
	}
	res, err := resdto.FromJobCard(jc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}
