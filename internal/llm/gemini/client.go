package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"coverletter-backend/internal/llm"
)

// Models is the subset of *genai.Models used by the client.
type Models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client implements llm.Generator using the Gemini API.
type Client struct {
	models Models
	model  string
}

// NewClient constructs a Gemini client. It performs no network I/O.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("GEMINI_MODEL is required")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{models: gc.Models, model: model}, nil
}

// NewWithModels builds a client on an existing Models implementation.
func NewWithModels(models Models, model string) *Client {
	return &Client{models: models, model: model}
}

// Generate sends prompt as a single user turn and returns the candidate text.
func (c *Client) Generate(ctx context.Context, prompt string, cfg llm.SamplingConfig) (string, error) {
	if c == nil || c.models == nil {
		return "", errors.New("gemini client not initialized")
	}
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := c.models.GenerateContent(ctx, c.model, contents, generationConfig(cfg))
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

func generationConfig(cfg llm.SamplingConfig) *genai.GenerateContentConfig {
	temperature := cfg.Temperature
	topP := cfg.TopP
	topK := cfg.TopK
	return &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		TopK:            &topK,
		MaxOutputTokens: cfg.MaxOutputTokens,
	}
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", errors.New("gemini returned an empty response")
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("prompt blocked by gemini: %s", resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("gemini response has no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		if candidate.FinishReason != "" {
			return "", fmt.Errorf("gemini response has no content (finish reason %s)", candidate.FinishReason)
		}
		return "", errors.New("gemini response has no content")
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		b.WriteString(part.Text)
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", errors.New("gemini response contained no text")
	}
	return b.String(), nil
}
