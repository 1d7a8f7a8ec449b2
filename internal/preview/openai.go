package preview

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a network security expert. Provide benefits and recommendations for the following network security feature:"

// Generator produces free-text benefit/recommendation summaries through a
// chat-completion call. One blocking attempt per request with a fixed
// timeout; callers turn failures into inline warning strings.
type Generator struct {
	api         *openai.Client
	model       string
	temperature float32
	timeout     time.Duration
}

// Config configures the preview generator.
type Config struct {
	APIKeyEnv   string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// NewGenerator creates a preview generator, reading the API key once from
// the configured environment variable.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = "OPENAI_API_KEY"
	}
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("missing API key in env %s", cfg.APIKeyEnv)
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Generator{
		api:         openai.NewClient(key),
		model:       model,
		temperature: temperature,
		timeout:     timeout,
	}, nil
}

// Preview implements domain.Previewer.
func (g *Generator) Preview(ctx context.Context, query string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
