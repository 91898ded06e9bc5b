package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	ServiceAPIKey string

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Web search (Google Custom Search)
	SearchAPIKey      string
	SearchEngineID    string
	SearchResultCount int
	SearchCacheTTL    time.Duration
	SearchCacheSize   int

	// Upload limits
	MaxUploadBytes int64
	MaxFiles       int

	// Session state
	SessionTTL time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8085"),

		ServiceAPIKey: os.Getenv("TENDER_EXPERT_API_KEY"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envOr("GEMINI_MODEL", "gemini-2.5-flash"),

		SearchAPIKey:      os.Getenv("SEARCH_API_KEY"),
		SearchEngineID:    os.Getenv("SEARCH_ENGINE_ID"),
		SearchResultCount: envInt("SEARCH_RESULT_COUNT", 10),
		SearchCacheTTL:    envDuration("SEARCH_CACHE_TTL", 30*time.Minute),
		SearchCacheSize:   envInt("SEARCH_CACHE_SIZE", 200),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 20971520), // 20MB per file
		MaxFiles:       envInt("MAX_FILES", 10),

		SessionTTL: envDuration("SESSION_TTL", 2*time.Hour),
	}

	if cfg.SearchResultCount <= 0 {
		cfg.SearchResultCount = 10
	}
	if cfg.SearchCacheSize <= 0 {
		cfg.SearchCacheSize = 200
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 20971520
	}
	if cfg.MaxFiles <= 0 {
		cfg.MaxFiles = 10
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 2 * time.Hour
	}

	return cfg
}

// Validate checks required settings. The search keys are optional: without
// them the market search workflow reports "not found" instead of failing.
func (c Config) Validate() error {
	if c.ServiceAPIKey == "" {
		return fmt.Errorf("TENDER_EXPERT_API_KEY is required")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}

// SearchConfigured reports whether the Google Custom Search credentials are set.
func (c Config) SearchConfigured() bool {
	return c.SearchAPIKey != "" && c.SearchEngineID != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
