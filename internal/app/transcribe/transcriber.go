package transcribe

import (
	"context"

	"meetscribe/internal/app/model"
	"meetscribe/internal/app/staging"
)

// Transcriber converts a staged audio file into a transcript with
// word-level timestamps.
type Transcriber interface {
	Transcribe(ctx context.Context, f *staging.StagedFile) (*model.Transcript, error)
}
