package config_test

import (
	"testing"

	"github.com/arvindnr/geetika/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env development, got %q", cfg.Env)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Fatalf("expected default model gemini-1.5-flash, got %q", cfg.GeminiModel)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if cfg.IsProduction() {
		t.Fatal("development config must not report production")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_PATH", "/tmp/geetika.db")

	cfg := config.Load()

	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Fatal("expected production mode")
	}
	if cfg.DatabasePath != "/tmp/geetika.db" {
		t.Fatalf("expected database path override, got %q", cfg.DatabasePath)
	}
}
