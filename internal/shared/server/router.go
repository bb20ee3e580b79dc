package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/coverletter"
	"coverletter-backend/internal/home"
	"coverletter-backend/internal/shared/config"
	"coverletter-backend/internal/shared/metrics"
	"coverletter-backend/internal/shared/server/middleware"
	"coverletter-backend/internal/shared/server/respond"
)

const generateRateLimitGroup = "GENERATE"

// RouterDeps carries the handlers mounted on the engine.
type RouterDeps struct {
	Config             config.Config
	CoverLetterHandler *coverletter.Handler
	RateLimiter        *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = maxMultipartMemory(deps.Config.MaxUploadBytes)

	rules := map[string]middleware.RateLimitRule{}
	if deps.Config.RateLimitPerMinute > 0 {
		rules[generateRateLimitGroup] = middleware.PerMinute(deps.Config.RateLimitPerMinute, deps.Config.RateLimitBurst)
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    rules,
			GroupFor: rateLimitGroup,
			Limiter:  deps.RateLimiter,
		}),
	)

	r.GET("/healthz", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	home.RegisterRoutes(r)
	if deps.CoverLetterHandler != nil {
		deps.CoverLetterHandler.RegisterRoutes(r)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "Not found")
	})

	return r
}

func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodPost && strings.HasPrefix(c.Request.URL.Path, "/generate") {
		return generateRateLimitGroup
	}
	return ""
}

func maxMultipartMemory(limit int64) int64 {
	if limit <= 0 {
		return 10 << 20
	}
	return limit
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
