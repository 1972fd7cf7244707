package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *APIError
		status int
	}{
		{"validation maps to 400", NewValidationError("bad input"), http.StatusBadRequest},
		{"upstream maps to 500", NewUpstreamError("provider down", nil), http.StatusInternalServerError},
		{"parse maps to 500", NewParseError("bad response", nil), http.StatusInternalServerError},
		{"internal maps to 500", NewInternalError("boom", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus())
		})
	}
}

func TestErrorBody(t *testing.T) {
	cause := errors.New("connection refused")
	apiErr := NewUpstreamError("Audio transcription failed", cause)

	body, err := json.Marshal(apiErr)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "Audio transcription failed", decoded["error"])
	assert.Equal(t, "connection refused", decoded["details"])

	assert.Equal(t, "Audio transcription failed: connection refused", apiErr.Error())
	assert.ErrorIs(t, apiErr, cause)
}

func TestErrorBodyOmitsEmptyDetails(t *testing.T) {
	body, err := json.Marshal(NewValidationError("No audio file uploaded"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "No audio file uploaded", decoded["error"])
	assert.NotContains(t, decoded, "details")
}
