package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"resume-generator/internal/shared/telemetry"
)

// LLM providers accepted in LLM_PROVIDER.
const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderNone      = "none"
)

var defaultModels = map[string]string{
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderGemini:    "gemini-2.5-pro",
	ProviderAnthropic: "claude-sonnet-4-5",
}

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	ServiceName     string
	CORSAllowOrigin []string
	LogLevel        string
	LogFormat       string

	LLMProvider     string
	LLMModel        string
	LLMTimeout      time.Duration
	OpenAIAPIKey    string
	GeminiAPIKey    string
	AnthropicAPIKey string

	GateMinLength    int
	GatePrefixWindow int

	RateLimitRPS             float64
	RateLimitBurst           int
	GenerationRateLimitRPS   float64
	GenerationRateLimitBurst int

	MaxUploadBytes int64
}

// Load reads configuration from the environment, after a best-effort load
// of local .env files.
func Load() Config {
	loadEnvFiles(".env", "cmd/.env")
	return FromViper(newViper())
}

// loadEnvFiles loads each file on its own so a missing one does not stop
// the rest. Variables already set win.
func loadEnvFiles(paths ...string) {
	for _, p := range paths {
		_ = godotenv.Load(p)
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("SERVICE_NAME", "resume-generator")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "")
	v.SetDefault("LLM_PROVIDER", ProviderOpenAI)
	v.SetDefault("LLM_MODEL", "")
	v.SetDefault("LLM_TIMEOUT_SECONDS", 60)
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("ANTHROPIC_API_KEY", "")
	v.SetDefault("GATE_MIN_LENGTH", 200)
	v.SetDefault("GATE_PREFIX_WINDOW", 500)
	v.SetDefault("RATE_LIMIT_RPS", 5.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("GENERATION_RATE_LIMIT_RPS", 0.5)
	v.SetDefault("GENERATION_RATE_LIMIT_BURST", 5)
	v.SetDefault("MAX_UPLOAD_BYTES", 5<<20)
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	env := normalizeEnv(v.GetString("ENV"))
	provider := normalizeProvider(v.GetString("LLM_PROVIDER"))
	model := strings.TrimSpace(v.GetString("LLM_MODEL"))
	if model == "" {
		model = defaultModels[provider]
	}
	logFormat := strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT")))
	if logFormat == "" {
		logFormat = "console"
		if env == "production" || env == "staging" {
			logFormat = "json"
		}
	}

	cfg := Config{
		Port:            v.GetString("PORT"),
		Env:             env,
		ServiceName:     v.GetString("SERVICE_NAME"),
		CORSAllowOrigin: splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		LogLevel:        strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		LogFormat:       logFormat,

		LLMProvider:     provider,
		LLMModel:        model,
		LLMTimeout:      positiveSeconds(v.GetInt("LLM_TIMEOUT_SECONDS"), 60),
		OpenAIAPIKey:    strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
		GeminiAPIKey:    strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
		AnthropicAPIKey: strings.TrimSpace(v.GetString("ANTHROPIC_API_KEY")),

		GateMinLength:    v.GetInt("GATE_MIN_LENGTH"),
		GatePrefixWindow: v.GetInt("GATE_PREFIX_WINDOW"),

		RateLimitRPS:             v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:           v.GetInt("RATE_LIMIT_BURST"),
		GenerationRateLimitRPS:   v.GetFloat64("GENERATION_RATE_LIMIT_RPS"),
		GenerationRateLimitBurst: v.GetInt("GENERATION_RATE_LIMIT_BURST"),

		MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),
	}

	if cfg.LLMProvider != ProviderNone && cfg.APIKey() == "" {
		telemetry.Warn("config.llm_key_missing", map[string]any{"provider": cfg.LLMProvider})
	}
	return cfg
}

// APIKey returns the key for the configured provider.
func (c Config) APIKey() string {
	switch c.LLMProvider {
	case ProviderOpenAI:
		return c.OpenAIAPIKey
	case ProviderGemini:
		return c.GeminiAPIKey
	case ProviderAnthropic:
		return c.AnthropicAPIKey
	default:
		return ""
	}
}

func positiveSeconds(n, def int) time.Duration {
	if n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
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
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "gemini", "google":
		return ProviderGemini
	case "anthropic", "claude":
		return ProviderAnthropic
	case "none", "off", "disabled":
		return ProviderNone
	default:
		return ProviderOpenAI
	}
}
