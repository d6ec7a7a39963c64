package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-generator/internal/generation"
	"resume-generator/internal/services/health"
	"resume-generator/internal/shared/config"
	"resume-generator/internal/shared/metrics"
	"resume-generator/internal/shared/server/middleware"
	"resume-generator/internal/shared/server/respond"
	"resume-generator/internal/uploads"
)

// RouterDeps lists everything the router mounts. Nil handlers are skipped.
type RouterDeps struct {
	Config            config.Config
	GenerationHandler *generation.Handler
	UploadsHandler    *uploads.Handler
	Health            *health.Service
}

var generationPaths = map[string]struct{}{
	"/api/generate-resume":       {},
	"/api/generate-cover-letter": {},
	"/api/mock-interview":        {},
}

// GroupFor maps requests that reach the external generator to the stricter
// rate limit group.
func GroupFor(c *gin.Context) string {
	path := strings.TrimSuffix(c.Request.URL.Path, "/")
	if _, ok := generationPaths[path]; ok {
		return middleware.GroupGeneration
	}
	return middleware.GroupDefault
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	cfg := deps.Config
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				middleware.GroupDefault:    {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
				middleware.GroupGeneration: {Rate: cfg.GenerationRateLimitRPS, Burst: cfg.GenerationRateLimitBurst},
			},
			GroupFor: GroupFor,
		}),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(cfg.ServiceName, cfg.LLMProvider)
	}
	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	if deps.GenerationHandler != nil {
		deps.GenerationHandler.RegisterRoutes(api, api)
	}
	if deps.UploadsHandler != nil {
		deps.UploadsHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})
	return r
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
