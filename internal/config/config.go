package config

import (
	"log/slog"

	"github.com/jinzhu/configor"
)

// Config holds all runtime configuration. Values come from the environment,
// with an optional config.json for local development.
type Config struct {
	Port string `default:"8080" env:"PORT"`

	// Env selects development behavior vs serving the embedded client.
	Env string `default:"development" env:"ENV"`

	// DatabasePath switches storage to SQLite when set; empty means the
	// in-memory backend.
	DatabasePath string `env:"DATABASE_PATH"`

	JWTSecret  string `default:"fallback-secret" env:"JWT_SECRET"`
	BcryptCost int    `default:"12" env:"BCRYPT_COST"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `default:"gemini-1.5-flash" env:"GEMINI_MODEL"`

	// Rate limit for /api/generate, per user.
	GenerateRate  float64 `default:"0.5" env:"GENERATE_RATE"`
	GenerateBurst float64 `default:"5" env:"GENERATE_BURST"`
}

// Load reads configuration from the environment and an optional config.json.
func Load() Config {
	var cfg Config
	if err := configor.New(&configor.Config{Silent: true}).Load(&cfg, "config.json"); err != nil {
		slog.Warn("config load", "error", err)
	}
	return cfg
}

// IsProduction reports whether the server should serve the embedded client.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
