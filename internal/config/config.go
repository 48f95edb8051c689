package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mrumer-yk/creative-market-agent/internal/domain"
)

type Config struct {
	HTTPAddr        string
	LogLevel        slog.Level
	GeminiAPIKey    string
	GeminiBaseURL   string
	LLMModel        string
	LLMTimeout      time.Duration
	DefaultAudience string
}

func Load() (Config, error) {
	// Optional .env for local development; real env vars win.
	_ = godotenv.Load()

	c := Config{
		HTTPAddr:        envOr("HTTP_ADDR", ":8080"),
		GeminiAPIKey:    resolveAPIKey(),
		GeminiBaseURL:   envOr("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		LLMModel:        envOr("LLM_MODEL", "gemini-1.5-flash"),
		LLMTimeout:      90 * time.Second,
		DefaultAudience: envOr("DEFAULT_AUDIENCE", "People in Riyadh, Saudi Arabia"),
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		c.LLMTimeout = d
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if c.GeminiAPIKey == "" {
		return Config{}, fmt.Errorf("%w: set GEMINI_API_KEY or GOOGLE_API_KEY", domain.ErrMissingCredential)
	}

	return c, nil
}

// resolveAPIKey checks the configured sources in order; GEMINI_API_KEY wins
// over the legacy GOOGLE_API_KEY name.
func resolveAPIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GOOGLE_API_KEY")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
