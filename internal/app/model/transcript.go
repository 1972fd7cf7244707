package model

// Word is a single transcribed word with its position in the audio,
// in seconds from the start of the recording.
type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Transcript is the result of one transcription call. It is immutable
// once returned by the provider.
type Transcript struct {
	Text     string  `json:"text"`
	Words    []Word  `json:"words"`
	Duration float64 `json:"duration"`
}
