package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	httpadapter "github.com/randomtoy/humor-go/internal/adapters/http"
	"github.com/randomtoy/humor-go/internal/adapters/identity/supabase"
	"github.com/randomtoy/humor-go/internal/adapters/llm/openrouter"
	"github.com/randomtoy/humor-go/internal/adapters/sessions"
	"github.com/randomtoy/humor-go/internal/app"
	"github.com/randomtoy/humor-go/internal/config"
	"github.com/randomtoy/humor-go/internal/i18n"
	"github.com/randomtoy/humor-go/internal/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	var sessionStore ports.SessionStore
	switch cfg.SessionBackend {
	case "redis":
		sessionStore = sessions.NewRedisStore(
			cfg.RedisAddr,
			cfg.RedisPassword,
			cfg.RedisDB,
			sessions.WithTTL(cfg.SessionTTL),
		)
	default:
		sessionStore = sessions.NewMemoryStore(cfg.SessionTTL)
	}

	identityClient := supabase.NewClient(
		&http.Client{Timeout: cfg.AuthTimeout},
		cfg.SupabaseURL,
		cfg.SupabaseAnonKey,
		logger,
	)

	llmClient := openrouter.NewClient(
		&http.Client{Timeout: cfg.LLMTimeout},
		cfg.OpenRouterAPIKey,
		cfg.OpenRouterBaseURL,
		cfg.LLMModel,
		logger,
	)

	authSvc := app.NewAuthService(identityClient, sessionStore, logger)
	translationSvc := app.NewTranslationService(llmClient, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	renderer, err := httpadapter.NewRenderer()
	if err != nil {
		logger.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}
	e.Renderer = renderer

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(
		authSvc,
		translationSvc,
		i18n.NewMessages(cfg.DefaultLocale),
		httpadapter.NewMetrics(),
	)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
