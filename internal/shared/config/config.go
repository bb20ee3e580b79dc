package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini      = "gemini"
	ProviderPlaceholder = "placeholder"

	defaultGeminiModel    = "gemini-1.5-pro"
	defaultMaxUploadBytes = 10 << 20 // 10MB
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	CORSAllowOrigin []string
	LLMProvider     string
	GeminiAPIKey    string
	GeminiModel     string
	MaxUploadBytes  int64
	// RateLimitPerMinute of zero disables rate limiting on the generation routes.
	RateLimitPerMinute float64
	RateLimitBurst     int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	apiKey := getEnv("GEMINI_API_KEY", os.Getenv("GOOGLE_API_KEY"))

	return Config{
		Port:               getEnv("PORT", "8080"),
		Env:                normalizeEnv(getEnv("ENV", "dev")),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		LLMProvider:        normalizeProvider(getEnv("LLM_PROVIDER", ProviderGemini)),
		GeminiAPIKey:       apiKey,
		GeminiModel:        getEnv("GEMINI_MODEL", defaultGeminiModel),
		MaxUploadBytes:     getEnvInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		RateLimitPerMinute: getEnvFloat("RATE_LIMIT_PER_MINUTE", 10),
		RateLimitBurst:     int(getEnvInt64("RATE_LIMIT_BURST", 5)),
		ReadTimeout:        time.Duration(getEnvInt64("HTTP_READ_TIMEOUT_SECONDS", 30)) * time.Second,
		WriteTimeout:       time.Duration(getEnvInt64("HTTP_WRITE_TIMEOUT_SECONDS", 180)) * time.Second,
	}
}

// Validate reports configuration that would only fail later, at first use.
func (c Config) Validate() error {
	var errs []error
	switch c.LLMProvider {
	case ProviderGemini:
		if strings.TrimSpace(c.GeminiAPIKey) == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required when LLM_PROVIDER=gemini"))
		}
		if strings.TrimSpace(c.GeminiModel) == "" {
			errs = append(errs, errors.New("GEMINI_MODEL must not be empty"))
		}
	case ProviderPlaceholder:
		if c.Env == "production" {
			errs = append(errs, errors.New("LLM_PROVIDER=placeholder is not allowed in production"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_BYTES must be positive"))
	}
	if c.RateLimitPerMinute < 0 || c.RateLimitBurst < 0 {
		errs = append(errs, errors.New("rate limit settings must not be negative"))
	}
	return errors.Join(errs...)
}

func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		_ = godotenv.Load(path)
	}
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return parsed
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "gemini", "google":
		return ProviderGemini
	case "placeholder", "none":
		return ProviderPlaceholder
	default:
		return strings.ToLower(strings.TrimSpace(raw))
	}
}
