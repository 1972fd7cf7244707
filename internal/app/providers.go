package app

import (
	"github.com/sashabaranov/go-openai"

	"meetscribe/internal/api/server"
	"meetscribe/internal/app/staging"
	"meetscribe/internal/config"
)

// provideOpenAIClient builds the single OpenAI client shared by both
// provider calls. The key was validated at startup.
func provideOpenAIClient(cfg *config.Config) *openai.Client {
	return openai.NewClient(cfg.OpenAIKey)
}

func provideStagingStore(cfg *config.Config) (*staging.Store, error) {
	return staging.NewStore(cfg.StagingDir)
}

func provideServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Host:         cfg.Host,
		Port:         cfg.Port,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		Environment:  cfg.Environment,
	}
}
