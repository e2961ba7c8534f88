package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	// Database
	DatabaseURL    string
	DatabaseDriver string

	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseStorageBucket  string

	// Presets come from "database" or "postgrest".
	PresetSource string

	// Matching
	OrphanMatchWindow time.Duration

	// Server
	BaseURL            string
	Port               string
	Environment        string
	LogLevel           string
	CORSAllowedOrigins []string
}

// Load reads configuration from the environment. Overrides run before
// validation so command-line flags can stand in for env vars.
func Load(overrides ...func(*Config)) (*Config, error) {
	window, err := time.ParseDuration(getEnv("ORPHAN_MATCH_WINDOW", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: ORPHAN_MATCH_WINDOW: %w", err)
	}

	cfg := &Config{
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "postgres"),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "product-images"),

		PresetSource: getEnv("PRESET_SOURCE", "database"),

		OrphanMatchWindow: window,

		BaseURL:     getEnv("BASE_URL", ""),
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS",
			"http://localhost:3000,http://localhost:5173,http://127.0.0.1:5173")),
	}

	for _, override := range overrides {
		override(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite, got %q", c.DatabaseDriver)
	}
	switch c.PresetSource {
	case "database":
	case "postgrest":
		if !c.SupabaseEnabled() {
			return fmt.Errorf("PRESET_SOURCE=postgrest requires SUPABASE_URL and SUPABASE_PUBLISHABLE_KEY")
		}
	default:
		return fmt.Errorf("PRESET_SOURCE must be database or postgrest, got %q", c.PresetSource)
	}
	if c.OrphanMatchWindow <= 0 {
		return fmt.Errorf("ORPHAN_MATCH_WINDOW must be positive")
	}
	return nil
}

// SupabaseEnabled reports whether the hosted Supabase APIs are configured.
func (c *Config) SupabaseEnabled() bool {
	return c.SupabaseURL != "" && c.SupabasePublishableKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
