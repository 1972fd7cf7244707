package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetscribe/internal/app/minutes"
	"meetscribe/internal/app/pipeline"
	"meetscribe/internal/app/staging"
	"meetscribe/internal/app/transcribe"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	store, err := staging.NewStore(t.TempDir())
	require.NoError(t, err)

	client := openai.NewClient("sk-test")
	pipe := pipeline.New(store, transcribe.NewOpenAITranscriber(client), minutes.NewOpenAIGenerator(client))
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	return NewServer(Config{Host: "127.0.0.1", Port: "0", Environment: "production"}, pipe, client, logger)
}

func TestServer_RoutesRegistered(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "connected", body["openai"])

	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_TranscribeRejectsMissingFileBeforeProvider(t *testing.T) {
	srv := newTestServer(t)

	// No provider stub behind the client: a 400 here proves the
	// request never left the process.
	req := httptest.NewRequest(http.MethodPost, "/transcribe", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "No audio file uploaded", body["error"])
}
