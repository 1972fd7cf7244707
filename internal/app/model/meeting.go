package model

// MeetingMetadata is optional context supplied by the caller. It is
// passed through into the minutes prompt verbatim, no validation
// beyond presence.
type MeetingMetadata struct {
	MeetingDate string `json:"meetingDate,omitempty"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
}

// Topic is one subject discussed during the meeting.
type Topic struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Decision is an explicit decision captured from the transcript.
type Decision struct {
	Decision string `json:"decision"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
}

// ActionItem is a task assigned during the meeting.
type ActionItem struct {
	Task     string `json:"task"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
}

// MeetingMinutes is the structured summary produced from a transcript.
// Every field is always present in the marshalled form; fields the
// completion model omitted default to empty values.
type MeetingMinutes struct {
	Summary      string       `json:"summary"`
	Participants []string     `json:"participants"`
	Topics       []Topic      `json:"topics"`
	Decisions    []Decision   `json:"decisions"`
	ActionItems  []ActionItem `json:"actionItems"`
	Notes        string       `json:"notes"`
}

// Normalize replaces nil collections with empty ones so marshalled
// minutes always carry every key, even when the completion model
// omitted it.
func (m *MeetingMinutes) Normalize() {
	if m.Participants == nil {
		m.Participants = []string{}
	}
	if m.Topics == nil {
		m.Topics = []Topic{}
	}
	if m.Decisions == nil {
		m.Decisions = []Decision{}
	}
	if m.ActionItems == nil {
		m.ActionItems = []ActionItem{}
	}
}
