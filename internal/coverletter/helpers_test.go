package coverletter

import (
	"context"
	"sync"

	"coverletter-backend/internal/llm"
)

type fakeGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
	configs []llm.SamplingConfig
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, cfg llm.SamplingConfig) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	f.configs = append(f.configs, cfg)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func (f *fakeGenerator) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

const sampleResume = "John Smith\n" +
	"john.smith@example.com | (555) 123-4567\n" +
	"123 Maple Street, Springfield\n" +
	"\n" +
	"Skills: Go, Kubernetes, PostgreSQL\n" +
	"\n" +
	"Experience\n" +
	"Backend engineer at Acme, 2019-2024\n"
