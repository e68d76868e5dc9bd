package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the effective revu configuration. All values come from the
// environment; the three endpoint settings are required, everything else
// has a default.
type Config struct {
	APIURL      string
	APIKey      string
	Model       string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int

	// Chunking bounds.
	MaxChunkChars int
	MaxChunks     int

	// Retry budget for completion calls.
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration

	LogLevel string
	NoRedact bool
}

// Default returns a Config with all defaults applied. The required
// endpoint fields are left empty.
func Default() Config {
	return Config{
		Timeout:       60 * time.Second,
		Temperature:   0.2,
		MaxTokens:     700,
		MaxChunkChars: 12000,
		MaxChunks:     12,
		MaxAttempts:   5,
		BaseBackoff:   1 * time.Second,
		MaxBackoff:    10 * time.Second,
		LogLevel:      "info",
	}
}

// Load builds the effective config from defaults plus environment
// variables, then validates that the required settings are present.
func Load() (Config, error) {
	cfg := Default()
	mergeEnv(&cfg)

	var missing []string
	if cfg.APIURL == "" {
		missing = append(missing, "LLM_API_URL")
	}
	if cfg.APIKey == "" {
		missing = append(missing, "LLM_API_KEY")
	}
	if cfg.Model == "" {
		missing = append(missing, "LLM_MODEL_NAME")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("LLM_API_URL"); v != "" {
		cfg.APIURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("LLM_MODEL_NAME"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("LLM_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("LLM_MAX_CHARS_PER_CHUNK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxChunkChars = n
		}
	}
	if v := os.Getenv("LLM_MAX_CHUNKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxChunks = n
		}
	}
	if v := os.Getenv("LLM_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxAttempts = n
		}
	}
	if v := os.Getenv("LLM_BASE_BACKOFF_SECONDS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.BaseBackoff = time.Duration(f * float64(time.Second))
		}
	}
	if v := os.Getenv("LLM_MAX_BACKOFF_SECONDS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.MaxBackoff = time.Duration(f * float64(time.Second))
		}
	}
	if v := os.Getenv("REVU_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("REVU_NO_REDACT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoRedact = b
		}
	}
}
