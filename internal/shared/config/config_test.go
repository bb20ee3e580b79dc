package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LLM_PROVIDER", "GEMINI_API_KEY", "GOOGLE_API_KEY", "GEMINI_MODEL", "MAX_UPLOAD_BYTES", "HTTP_WRITE_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected env dev, got %q", cfg.Env)
	}
	if cfg.LLMProvider != ProviderGemini {
		t.Fatalf("expected gemini provider, got %q", cfg.LLMProvider)
	}
	if cfg.GeminiModel != "gemini-1.5-pro" {
		t.Fatalf("unexpected model %q", cfg.GeminiModel)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("unexpected max upload bytes %d", cfg.MaxUploadBytes)
	}
	if cfg.WriteTimeout != 180*time.Second {
		t.Fatalf("unexpected write timeout %s", cfg.WriteTimeout)
	}
}

func TestLoadGoogleAPIKeyFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg := Load()
	if cfg.GeminiAPIKey != "google-key" {
		t.Fatalf("expected GOOGLE_API_KEY fallback, got %q", cfg.GeminiAPIKey)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "gemini with key",
			cfg:  Config{LLMProvider: ProviderGemini, GeminiAPIKey: "k", GeminiModel: "m", MaxUploadBytes: 1},
		},
		{
			name:    "gemini without key",
			cfg:     Config{LLMProvider: ProviderGemini, GeminiModel: "m", MaxUploadBytes: 1},
			wantErr: true,
		},
		{
			name: "placeholder in dev",
			cfg:  Config{LLMProvider: ProviderPlaceholder, Env: "dev", MaxUploadBytes: 1},
		},
		{
			name:    "placeholder in production",
			cfg:     Config{LLMProvider: ProviderPlaceholder, Env: "production", MaxUploadBytes: 1},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     Config{LLMProvider: "openai", MaxUploadBytes: 1},
			wantErr: true,
		},
		{
			name:    "zero upload limit",
			cfg:     Config{LLMProvider: ProviderPlaceholder, Env: "dev"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
