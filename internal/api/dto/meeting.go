package dto

import "meetscribe/internal/app/model"

// GenerateMinutesRequest is the body of POST /generate-minutes.
type GenerateMinutesRequest struct {
	Transcription string `json:"transcription" binding:"required"`
	MeetingDate   string `json:"meetingDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
}

// Metadata collects the optional meeting fields of the request.
func (r *GenerateMinutesRequest) Metadata() model.MeetingMetadata {
	return model.MeetingMetadata{
		MeetingDate: r.MeetingDate,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
	}
}

// TranscribeResponse is the success body of POST /transcribe.
type TranscribeResponse struct {
	Success        bool         `json:"success"`
	Transcription  string       `json:"transcription"`
	Words          []model.Word `json:"words"`
	Duration       float64      `json:"duration"`
	ProcessingTime float64      `json:"processingTime"`
}

// MinutesResponse is the success body of POST /generate-minutes.
type MinutesResponse struct {
	Success        bool                  `json:"success"`
	Minutes        *model.MeetingMinutes `json:"minutes"`
	ProcessingTime float64               `json:"processingTime"`
}

// ProcessMeetingResponse is the success body of POST /process-meeting.
type ProcessMeetingResponse struct {
	Success        bool                  `json:"success"`
	Transcription  string                `json:"transcription"`
	Words          []model.Word          `json:"words"`
	Duration       float64               `json:"duration"`
	Minutes        *model.MeetingMinutes `json:"minutes"`
	ProcessingTime float64               `json:"processingTime"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	OpenAI string `json:"openai"`
}
