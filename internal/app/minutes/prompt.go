package minutes

import (
	"fmt"
	"strings"

	"meetscribe/internal/app/model"
)

// systemPrompt frames the assistant before the transcript is supplied.
const systemPrompt = `You are an assistant that writes meeting minutes. ` +
	`You receive the transcript of a meeting and produce structured minutes as a JSON object.`

// minutesSchema is the exact object shape the completion must return.
// It matches the JSON tags of model.MeetingMinutes.
const minutesSchema = `{
  "summary": "executive summary of the meeting",
  "participants": ["participant name"],
  "topics": [{"title": "", "description": ""}],
  "decisions": [{"decision": "", "owner": "", "deadline": ""}],
  "actionItems": [{"task": "", "owner": "", "deadline": ""}],
  "notes": "other relevant observations"
}`

// promptRules is the fixed instruction set for minutes generation. It
// is policy, not caller-configurable.
const promptRules = `1. Use only information present in the transcript; never invent content.
2. When something is not mentioned, use an empty string or empty list instead of omitting the field.
3. Identify participants by the names mentioned in the transcript.
4. Record a decision only when the transcript contains explicit decision language.
5. Extract action items with their owner and deadline whenever these are stated.
6. Keep a neutral, professional tone.
7. Return only the JSON object, with no text around it.`

// BuildPrompt renders the minutes prompt for a transcript and optional
// meeting metadata. Deterministic: the same input yields byte-identical
// output.
func BuildPrompt(transcription string, meta model.MeetingMetadata) string {
	var b strings.Builder

	b.WriteString("Write the minutes for the meeting transcribed below.\n")
	if meta.MeetingDate != "" {
		fmt.Fprintf(&b, "Meeting date: %s\n", meta.MeetingDate)
	}
	if meta.StartTime != "" {
		fmt.Fprintf(&b, "Start time: %s\n", meta.StartTime)
	}
	if meta.EndTime != "" {
		fmt.Fprintf(&b, "End time: %s\n", meta.EndTime)
	}

	b.WriteString("\nTranscript:\n")
	b.WriteString(transcription)

	b.WriteString("\n\nRules:\n")
	b.WriteString(promptRules)

	b.WriteString("\n\nReturn a JSON object with exactly this shape:\n")
	b.WriteString(minutesSchema)

	return b.String()
}
