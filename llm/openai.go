package llm

import (
	"context"
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/config"
)

var (
	ErrMissingAPIKey = errors.New("OpenAI API key not provided (set OPENAI_API_KEY)")
	ErrNoChoices     = errors.New("OpenAI API returned no choices")
)

// OpenAIClient calls the OpenAI chat-completions endpoint with a fixed
// temperature and token budget.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	hasKey      bool
}

// NewOpenAIClient builds a client from cfg. The credential is read once and
// kept for the lifetime of the client.
func NewOpenAIClient(cfg config.OpenAIConfig) *OpenAIClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout()}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIClient{
		client:      openai.NewClientWithConfig(oc),
		model:       model,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
		hasKey:      cfg.APIKey != "",
	}
}

// Model returns the model identifier sent with every request.
func (c *OpenAIClient) Model() string { return c.model }

// Complete implements Completer. API errors are returned as-is.
func (c *OpenAIClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	if !c.hasKey {
		return "", ErrMissingAPIKey
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}
