package transcribe

import (
	"context"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/sashabaranov/go-openai"

	apierrors "meetscribe/internal/api/errors"
	"meetscribe/internal/app/metrics"
	"meetscribe/internal/app/model"
	"meetscribe/internal/app/staging"
)

const (
	// The service transcribes Portuguese-language meetings only.
	language = "pt"

	providerName = "openai/whisper"
)

// OpenAITranscriber implements Transcriber with the OpenAI Whisper API,
// requesting word-level timestamps.
type OpenAITranscriber struct {
	client *openai.Client
}

// NewOpenAITranscriber creates a new OpenAITranscriber instance.
func NewOpenAITranscriber(client *openai.Client) *OpenAITranscriber {
	return &OpenAITranscriber{client: client}
}

// Transcribe sends the staged file to the Whisper API and maps the
// verbose response into a Transcript. The file is held open only for
// the duration of the call. Single-shot: provider failures are
// surfaced, never retried.
func (t *OpenAITranscriber) Transcribe(ctx context.Context, f *staging.StagedFile) (*model.Transcript, error) {
	src, err := os.Open(f.Path)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to read staged audio file", err)
	}
	defer src.Close()

	start := time.Now()
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   src,
		FilePath: f.OriginalName,
		Language: language,
		Format:   openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []openai.TranscriptionTimestampGranularity{
			openai.TranscriptionTimestampGranularityWord,
		},
	})
	metrics.RecordProviderCall(providerName, "transcription",
		lo.Ternary(err == nil, "success", "failed"), time.Since(start).Seconds())
	if err != nil {
		return nil, apierrors.NewUpstreamError("Audio transcription failed", err)
	}

	words := make([]model.Word, 0, len(resp.Words))
	for _, w := range resp.Words {
		words = append(words, model.Word{
			Word:  w.Word,
			Start: w.Start,
			End:   w.End,
		})
	}

	return &model.Transcript{
		Text:     resp.Text,
		Words:    words,
		Duration: resp.Duration,
	}, nil
}
