package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Config holds Gemini configuration parameters.
type Config struct {
	APIKey string
	Model  string
}

// DefaultModel is the completion model used when none is configured.
const DefaultModel = "gemini-pro"

// ErrNotConfigured reports that no completion credential is available.
var ErrNotConfigured = errors.New("completion api key not configured")

// GeminiClient implements the Generator interface against the Gemini API.
type GeminiClient struct {
	client *genai.Client
	apiKey string
	model  string
}

// NewGeminiClient constructs a GeminiClient if the supplied configuration
// carries a credential.
func NewGeminiClient(cfg Config) (*GeminiClient, error) {
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{client: client, apiKey: apiKey, model: cfg.Model}, nil
}

// Enabled reports whether the client can make outbound calls.
func (c *GeminiClient) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Generate requests a single completion for the prompt and returns the
// raw model text. The call is made exactly once; transient failures
// surface to the caller instead of being retried.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil || !c.Enabled() {
		return "", ErrNotConfigured
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("gemini empty completion")
	}
	return text, nil
}
