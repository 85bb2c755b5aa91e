package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arvindnr/geetika/internal/config"
	"github.com/arvindnr/geetika/internal/domain"
	"github.com/arvindnr/geetika/internal/handler"
	"github.com/arvindnr/geetika/internal/provider"
	"github.com/arvindnr/geetika/internal/repository/memory"
	"github.com/arvindnr/geetika/internal/repository/sqlite"
	"github.com/arvindnr/geetika/internal/service"
	"github.com/arvindnr/geetika/web"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := openDatabase(cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(db.Users(), cfg.JWTSecret, cfg.BcryptCost)
	generator := provider.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	contentService := service.NewContentService(db.Users(), db.Generations(), generator)
	limiter := service.NewTokenBucket(cfg.GenerateRate, cfg.GenerateBurst)

	// Seed the demo account (idempotent).
	if err := seedDemoUser(context.Background(), db.Users(), cfg.BcryptCost); err != nil {
		slog.Error("failed to seed demo user", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, contentService, limiter)
	if cfg.IsProduction() {
		handler.RegisterStatic(mux, web.Assets())
		slog.Info("serving embedded client")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.SecurityHeaders(handler.RequestLogger(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openDatabase picks the storage backend: SQLite when a path is configured,
// otherwise the in-memory store.
func openDatabase(cfg config.Config) (domain.Database, error) {
	if cfg.DatabasePath != "" {
		slog.Info("using sqlite storage", "path", cfg.DatabasePath)
		return sqlite.New(cfg.DatabasePath)
	}
	slog.Info("using in-memory storage")
	return memory.New(), nil
}

// seedDemoUser creates the demo account when it does not exist yet.
func seedDemoUser(ctx context.Context, users domain.UserRepository, bcryptCost int) error {
	if _, err := users.GetByUsername(ctx, "demo"); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo"), bcryptCost)
	if err != nil {
		return err
	}

	demo := &domain.User{
		ID:           "demo-user",
		Username:     "demo",
		PasswordHash: string(hash),
	}
	if err := users.Create(ctx, demo); err != nil {
		return err
	}
	slog.Info("demo user seeded", "id", demo.ID, "credits", demo.Credits)
	return nil
}
