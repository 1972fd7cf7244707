// Package testutil provides testify mocks for the provider-facing
// interfaces so handler and pipeline tests never reach the network.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"meetscribe/internal/app/model"
	"meetscribe/internal/app/staging"
)

// MockTranscriber is a testify mock for transcribe.Transcriber.
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, f *staging.StagedFile) (*model.Transcript, error) {
	args := m.Called(ctx, f)
	if t, ok := args.Get(0).(*model.Transcript); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockGenerator is a testify mock for minutes.Generator.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, transcription string, meta model.MeetingMetadata) (*model.MeetingMinutes, error) {
	args := m.Called(ctx, transcription, meta)
	if mins, ok := args.Get(0).(*model.MeetingMinutes); ok {
		return mins, args.Error(1)
	}
	return nil, args.Error(1)
}
