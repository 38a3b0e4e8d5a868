package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	domai "github.com/bryanwahyu/textlens/internal/domain/ai"
	"github.com/bryanwahyu/textlens/internal/domain/analysis"
	"github.com/bryanwahyu/textlens/internal/infra/ai/prompt"
)

const maxTokens = 2048

type Client struct {
	client *openai.Client
	model  string
	apiKey string
}

// NewClient builds a chat-completion client. baseURL may point at any
// OpenAI-compatible endpoint (OpenRouter, Gemini gateway, etc).
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		apiKey: apiKey,
	}
}

func (c *Client) Analyze(ctx context.Context, text string) (*analysis.Payload, error) {
	// The missing-credential case surfaces per request, never at startup.
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, domai.ErrMissingAPIKey
	}

	model := c.model
	if model == "" {
		model = "gpt-4o-mini"
	}
	req := openai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.SystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.UserPrompt(text)},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return nil, domai.ErrQuotaExceeded
		}
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, &domai.SchemaError{Reason: "provider returned no choices"}
	}

	return prompt.Parse(resp.Choices[0].Message.Content)
}
