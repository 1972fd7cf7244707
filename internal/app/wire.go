//go:build wireinject
// +build wireinject

package app

import (
	"log/slog"

	"github.com/google/wire"

	"meetscribe/internal/api/server"
	"meetscribe/internal/app/minutes"
	"meetscribe/internal/app/pipeline"
	"meetscribe/internal/app/transcribe"
	"meetscribe/internal/config"
)

// InitializeServer wires the full request path: staging store, OpenAI
// transcriber and minutes generator, the pipeline composing them, and
// the HTTP server on top.
func InitializeServer(cfg *config.Config, logger *slog.Logger) (*server.Server, error) {
	wire.Build(
		provideOpenAIClient,
		provideStagingStore,
		provideServerConfig,
		transcribe.NewOpenAITranscriber,
		wire.Bind(new(transcribe.Transcriber), new(*transcribe.OpenAITranscriber)),
		minutes.NewOpenAIGenerator,
		wire.Bind(new(minutes.Generator), new(*minutes.OpenAIGenerator)),
		pipeline.New,
		server.NewServer,
	)
	return nil, nil
}
