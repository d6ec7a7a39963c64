package bootstrap

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"resume-generator/internal/gate"
	"resume-generator/internal/generation"
	"resume-generator/internal/llm"
	anthropicllm "resume-generator/internal/llm/anthropic"
	geminillm "resume-generator/internal/llm/gemini"
	openaillm "resume-generator/internal/llm/openai"
	"resume-generator/internal/services/health"
	"resume-generator/internal/shared/config"
	"resume-generator/internal/shared/server"
	"resume-generator/internal/shared/telemetry"
	"resume-generator/internal/uploads"
)

// App holds the wired dependencies of the HTTP service.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	Generator         llm.Generator
	GenerationService *generation.Service
	GenerationHandler *generation.Handler
	UploadsHandler    *uploads.Handler
	Health            *health.Service

	closers []func() error
}

// Build prepares every dependency and the router. It does not fail when the
// LLM provider cannot be constructed; generation then runs template-only.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	gen, closer := NewGenerator(ctx, cfg)

	app := &App{
		Config:    cfg,
		Generator: gen,
		Health:    health.NewService(cfg.ServiceName, cfg.LLMProvider),
	}
	if closer != nil {
		app.closers = append(app.closers, closer)
	}

	app.GenerationService = generation.NewService(gen, GateFromConfig(cfg), cfg.LLMTimeout)
	app.GenerationHandler = generation.NewHandler(app.GenerationService)
	app.UploadsHandler = uploads.NewHandler(cfg.MaxUploadBytes)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            cfg,
		GenerationHandler: app.GenerationHandler,
		UploadsHandler:    app.UploadsHandler,
		Health:            app.Health,
	})
	if app.Router == nil {
		return nil, errors.New("router not constructed")
	}
	return app, nil
}

// Close releases provider clients.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// GateFromConfig builds the plausibility gate from configured thresholds.
// Unset values fall back to the gate defaults.
func GateFromConfig(cfg config.Config) gate.Gate {
	return gate.Gate{
		MinLength:    cfg.GateMinLength,
		PrefixWindow: cfg.GatePrefixWindow,
	}
}

// NewGenerator returns the configured provider client. A disabled provider,
// a missing key or a constructor error yields the placeholder generator, so
// the resume pipeline always has its template path. The returned closer may
// be nil.
func NewGenerator(ctx context.Context, cfg config.Config) (llm.Generator, func() error) {
	if cfg.LLMProvider == config.ProviderNone {
		telemetry.Info("llm.disabled", nil)
		return llm.Placeholder{}, nil
	}
	if cfg.APIKey() == "" {
		telemetry.Warn("llm.placeholder", map[string]any{
			"provider": cfg.LLMProvider,
			"reason":   "missing api key",
		})
		return llm.Placeholder{}, nil
	}

	var (
		gen    llm.Generator
		closer func() error
		err    error
	)
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		var c *geminillm.Client
		c, err = geminillm.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
		if err == nil {
			gen, closer = c, c.Close
		}
	case config.ProviderAnthropic:
		var c *anthropicllm.Client
		c, err = anthropicllm.NewClient(cfg.AnthropicAPIKey, cfg.LLMModel)
		if err == nil {
			gen = c
		}
	default:
		var c *openaillm.Client
		c, err = openaillm.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.LLMTimeout)
		if err == nil {
			gen = c
		}
	}
	if err != nil {
		telemetry.Warn("llm.placeholder", map[string]any{
			"provider": cfg.LLMProvider,
			"error":    err,
		})
		return llm.Placeholder{}, nil
	}

	telemetry.Info("llm.configured", map[string]any{
		"provider": cfg.LLMProvider,
		"model":    cfg.LLMModel,
	})
	return gen, closer
}
