package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"meetscribe/internal/api/dto"
	"meetscribe/internal/api/middleware"
	"meetscribe/internal/app/pipeline"
)

// MinutesHandler handles minutes generation from an existing transcript.
type MinutesHandler struct {
	pipeline *pipeline.Pipeline
}

// NewMinutesHandler creates a new minutes handler.
func NewMinutesHandler(p *pipeline.Pipeline) *MinutesHandler {
	return &MinutesHandler{pipeline: p}
}

// Generate handles POST /generate-minutes.
// The transcription field is required; date and time metadata are
// optional pass-through.
func (h *MinutesHandler) Generate(c *gin.Context) {
	start := time.Now()

	var req dto.GenerateMinutesRequest
	if err := middleware.ValidateJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	minutes, err := h.pipeline.GenerateMinutes(c.Request.Context(), req.Transcription, req.Metadata())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MinutesResponse{
		Success:        true,
		Minutes:        minutes,
		ProcessingTime: time.Since(start).Seconds(),
	})
}
