package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"meetscribe/internal/api/dto"
	"meetscribe/internal/api/errors"
	"meetscribe/internal/api/middleware"
	"meetscribe/internal/app/pipeline"
)

// TranscriptionHandler handles the standalone transcription endpoint.
type TranscriptionHandler struct {
	pipeline *pipeline.Pipeline
}

// NewTranscriptionHandler creates a new transcription handler.
func NewTranscriptionHandler(p *pipeline.Pipeline) *TranscriptionHandler {
	return &TranscriptionHandler{pipeline: p}
}

// Transcribe handles POST /transcribe.
// Accepts a multipart "audio" field, transcribes it with word-level
// timestamps, and deletes the staged copy before responding.
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	start := time.Now()

	header, err := c.FormFile("audio")
	if err != nil {
		middleware.HandleError(c, errors.NewValidationError("No audio file uploaded"))
		return
	}

	transcript, err := h.pipeline.Transcribe(c.Request.Context(), header)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TranscribeResponse{
		Success:        true,
		Transcription:  transcript.Text,
		Words:          transcript.Words,
		Duration:       transcript.Duration,
		ProcessingTime: time.Since(start).Seconds(),
	})
}
