package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"meetscribe/internal/api/dto"
	"meetscribe/internal/api/errors"
	"meetscribe/internal/api/middleware"
	"meetscribe/internal/app/model"
	"meetscribe/internal/app/pipeline"
)

// MeetingHandler handles the combined upload-to-minutes endpoint.
type MeetingHandler struct {
	pipeline *pipeline.Pipeline
}

// NewMeetingHandler creates a new meeting handler.
func NewMeetingHandler(p *pipeline.Pipeline) *MeetingHandler {
	return &MeetingHandler{pipeline: p}
}

// Process handles POST /process-meeting.
// Multipart "audio" field plus optional meetingDate, startTime and
// endTime form fields. Transcribes, then generates minutes from the
// fresh transcript; no partial result is returned when the second step
// fails.
func (h *MeetingHandler) Process(c *gin.Context) {
	start := time.Now()

	header, err := c.FormFile("audio")
	if err != nil {
		middleware.HandleError(c, errors.NewValidationError("No audio file uploaded"))
		return
	}

	meta := model.MeetingMetadata{
		MeetingDate: c.PostForm("meetingDate"),
		StartTime:   c.PostForm("startTime"),
		EndTime:     c.PostForm("endTime"),
	}

	result, err := h.pipeline.Process(c.Request.Context(), header, meta)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProcessMeetingResponse{
		Success:        true,
		Transcription:  result.Transcript.Text,
		Words:          result.Transcript.Words,
		Duration:       result.Transcript.Duration,
		Minutes:        result.Minutes,
		ProcessingTime: time.Since(start).Seconds(),
	})
}
