// Package pipeline composes upload staging, the transcription call and
// minutes generation, and enforces the temp-file cleanup invariant
// shared by the audio endpoints.
package pipeline

import (
	"context"
	"mime/multipart"
	"strings"

	apierrors "meetscribe/internal/api/errors"
	"meetscribe/internal/app/minutes"
	"meetscribe/internal/app/model"
	"meetscribe/internal/app/staging"
	"meetscribe/internal/app/transcribe"
)

// Pipeline runs the meeting-processing flows. One instance is shared by
// all handlers; per-request state lives entirely in the call.
type Pipeline struct {
	store       *staging.Store
	transcriber transcribe.Transcriber
	generator   minutes.Generator
}

// New creates a Pipeline.
func New(store *staging.Store, transcriber transcribe.Transcriber, generator minutes.Generator) *Pipeline {
	return &Pipeline{
		store:       store,
		transcriber: transcriber,
		generator:   generator,
	}
}

// Result is what the combined flow returns to its caller.
type Result struct {
	Transcript *model.Transcript
	Minutes    *model.MeetingMinutes
}

// Transcribe stages the upload, transcribes it, and deletes the staged
// file before returning, on success and on every failure path.
func (p *Pipeline) Transcribe(ctx context.Context, header *multipart.FileHeader) (*model.Transcript, error) {
	var transcript *model.Transcript
	err := p.store.With(header, func(f *staging.StagedFile) error {
		t, err := p.transcriber.Transcribe(ctx, f)
		if err != nil {
			return err
		}
		transcript = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transcript, nil
}

// GenerateMinutes produces minutes from an already-available transcript.
// An absent or blank transcript is caller error, rejected before the
// provider is contacted.
func (p *Pipeline) GenerateMinutes(ctx context.Context, transcription string, meta model.MeetingMetadata) (*model.MeetingMinutes, error) {
	if strings.TrimSpace(transcription) == "" {
		return nil, apierrors.NewValidationError("Transcription text is required")
	}
	return p.generator.Generate(ctx, transcription, meta)
}

// Process runs the combined flow: stage, transcribe, then generate
// minutes from the fresh transcript. Minutes generation starts only
// after transcription completed. The staged file is deleted exactly
// once no matter where the flow fails; a failure after transcription
// yields no partial result.
func (p *Pipeline) Process(ctx context.Context, header *multipart.FileHeader, meta model.MeetingMetadata) (*Result, error) {
	var result Result
	err := p.store.With(header, func(f *staging.StagedFile) error {
		transcript, err := p.transcriber.Transcribe(ctx, f)
		if err != nil {
			return err
		}
		result.Transcript = transcript

		mins, err := p.generator.Generate(ctx, transcript.Text, meta)
		if err != nil {
			return err
		}
		result.Minutes = mins
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
