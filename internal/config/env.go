package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service needs at startup. It is built
// once in main and injected, never read from globals.
type Config struct {
	Host        string
	Port        string
	Environment string

	// StagingDir is where uploaded audio is written before the
	// transcription call. Created at startup if absent.
	StagingDir string

	OpenAIKey string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are fine, the variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load reads the full service configuration from the environment.
// Fail-fast: a missing or malformed OPENAI_API_KEY is a startup error,
// not a per-request one.
func Load() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if key == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required - set it in the environment or a .env file")
	}
	if !strings.HasPrefix(key, "sk-") {
		return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
	}

	return &Config{
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		StagingDir:  getEnv("STAGING_DIR", filepath.Join(os.TempDir(), "meetscribe-uploads")),
		OpenAIKey:   key,

		// Provider calls run for as long as the audio demands, so
		// read/write deadlines stay disabled by default.
		ReadTimeout:  getDurationEnv("READ_TIMEOUT", 0),
		WriteTimeout: getDurationEnv("WRITE_TIMEOUT", 0),
		IdleTimeout:  getDurationEnv("IDLE_TIMEOUT", 2*time.Minute),
	}, nil
}

func getEnv(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(name string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
