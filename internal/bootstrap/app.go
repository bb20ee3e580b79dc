package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/coverletter"
	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/llm/gemini"
	"coverletter-backend/internal/shared/config"
	"coverletter-backend/internal/shared/server"
	"coverletter-backend/internal/shared/server/middleware"
	"coverletter-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	Generator          llm.Generator
	CoverLetterService *coverletter.Service
	CoverLetterHandler *coverletter.Handler
	RateLimiter        *middleware.RateLimiter
}

// Build validates cfg and prepares the generator, services and router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	gen, err := NewGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:      cfg,
		Generator:   gen,
		RateLimiter: middleware.NewRateLimiter(nil),
	}
	app.CoverLetterService = coverletter.NewService(gen)
	app.CoverLetterHandler = coverletter.NewHandler(app.CoverLetterService, cfg.MaxUploadBytes)
	app.Router = server.NewRouter(server.RouterDeps{
		Config:             cfg,
		CoverLetterHandler: app.CoverLetterHandler,
		RateLimiter:        app.RateLimiter,
	})

	return app, nil
}

// NewGenerator returns the text generator selected by cfg.LLMProvider.
func NewGenerator(ctx context.Context, cfg config.Config) (llm.Generator, error) {
	switch cfg.LLMProvider {
	case config.ProviderPlaceholder:
		telemetry.Warn("bootstrap.llm.placeholder", map[string]any{
			"env": cfg.Env,
		})
		return llm.PlaceholderClient{}, nil
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		telemetry.Info("bootstrap.llm.gemini", map[string]any{
			"model": cfg.GeminiModel,
		})
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLMProvider)
	}
}
