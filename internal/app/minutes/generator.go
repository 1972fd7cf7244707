// Package minutes turns a meeting transcript into structured minutes
// through a single completion call with a fixed prompt.
package minutes

import (
	"context"
	"encoding/json"
	"time"

	"github.com/samber/lo"
	"github.com/sashabaranov/go-openai"

	apierrors "meetscribe/internal/api/errors"
	"meetscribe/internal/app/metrics"
	"meetscribe/internal/app/model"
)

const (
	completionModel = openai.GPT4oMini

	// Deterministic-leaning sampling; minutes should not vary much
	// between runs over the same transcript.
	temperature = 0.2

	providerName = "openai/chat"
)

// Generator produces meeting minutes from a transcript.
type Generator interface {
	Generate(ctx context.Context, transcription string, meta model.MeetingMetadata) (*model.MeetingMinutes, error)
}

// OpenAIGenerator implements Generator with the OpenAI chat completion
// API in JSON-object mode.
type OpenAIGenerator struct {
	client *openai.Client
}

// NewOpenAIGenerator creates a new OpenAIGenerator instance.
func NewOpenAIGenerator(client *openai.Client) *OpenAIGenerator {
	return &OpenAIGenerator{client: client}
}

// Generate issues one completion request and parses the JSON answer
// into MeetingMinutes. A provider failure is an upstream error; an
// answer that is not valid JSON is a parse error - the provider was
// reachable but violated the contract.
func (g *OpenAIGenerator) Generate(ctx context.Context, transcription string, meta model.MeetingMetadata) (*model.MeetingMinutes, error) {
	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       completionModel,
		Temperature: temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(transcription, meta),
			},
		},
	})
	metrics.RecordProviderCall(providerName, "chat_completion",
		lo.Ternary(err == nil, "success", "failed"), time.Since(start).Seconds())
	if err != nil {
		return nil, apierrors.NewUpstreamError("Minutes generation failed", err)
	}
	if len(resp.Choices) == 0 {
		return nil, apierrors.NewParseError("Completion response contained no choices", nil)
	}

	var minutes model.MeetingMinutes
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &minutes); err != nil {
		return nil, apierrors.NewParseError("Completion response is not valid JSON", err)
	}
	minutes.Normalize()

	return &minutes, nil
}
