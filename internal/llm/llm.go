package llm

import (
	"context"
	"errors"
)

// Generator abstracts the external text-generation service: one prompt in, text out.
type Generator interface {
	Generate(ctx context.Context, prompt string, cfg SamplingConfig) (string, error)
}

// SamplingConfig carries the decoding parameters sent with every prompt.
type SamplingConfig struct {
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
}

// CoverLetterSampling is the fixed configuration used for cover letters.
func CoverLetterSampling() SamplingConfig {
	return SamplingConfig{
		Temperature:     0.7,
		TopP:            0.8,
		TopK:            40,
		MaxOutputTokens: 2048,
	}
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is used when no provider is configured (LLM_PROVIDER=placeholder).
type PlaceholderClient struct{}

// Generate returns ErrNotImplemented.
func (PlaceholderClient) Generate(ctx context.Context, prompt string, cfg SamplingConfig) (string, error) {
	_ = ctx
	_ = prompt
	_ = cfg
	return "", ErrNotImplemented
}
