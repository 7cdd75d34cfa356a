// cmd/soccerbot/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Snouball98/my-first-chatbot/internal/api"
	"github.com/Snouball98/my-first-chatbot/internal/chat/engine"
	"github.com/Snouball98/my-first-chatbot/internal/common/azureai"
	"github.com/Snouball98/my-first-chatbot/internal/common/config"
	"github.com/Snouball98/my-first-chatbot/internal/common/logger"
	"github.com/Snouball98/my-first-chatbot/internal/common/observability"
	"github.com/Snouball98/my-first-chatbot/internal/models"
	"github.com/Snouball98/my-first-chatbot/internal/session"
)

func main() {
	bootLog := logger.New("info", "console")

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting soccerbot...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Init Azure OpenAI Client ---
	// Missing credentials are not fatal: every turn then gets the
	// model-unavailable reply instead.
	var invoker engine.Invoker
	if cfg.Azure.Enabled() {
		client, err := azureai.New(azureai.Config{
			APIKey:     cfg.Azure.APIKey,
			Endpoint:   cfg.Azure.Endpoint,
			Deployment: cfg.Azure.Deployment,
			APIVersion: cfg.Azure.APIVersion,
			Timeout:    config.GetDuration(cfg.Azure.Timeout),
		}, log)
		if err != nil {
			zapLog.Warn("azure client init failed, model replies disabled", zap.Error(err))
		} else {
			invoker = client
			zapLog.Info("Azure OpenAI client initialized",
				zap.String("deployment", client.Deployment()),
				zap.String("apiVersion", cfg.Azure.APIVersion),
			)
		}
	} else {
		zapLog.Warn("azure credentials not set, model replies disabled")
	}

	// --- Init Chat Engine ---
	sessions := session.NewManager()
	eng := engine.New(engine.Config{
		DefaultMode:        models.Mode(cfg.Chat.DefaultMode),
		DefaultTemperature: cfg.Chat.DefaultTemperature,
		DefaultMaxTokens:   cfg.Chat.DefaultMaxTokens,
	}, invoker, obs, log)

	// --- HTTP Server ---
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = config.GetDuration(cfg.Server.ReadTimeout)
	e.Server.WriteTimeout = config.GetDuration(cfg.Server.WriteTimeout)

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api.NewHandler(eng, sessions, cfg, log).RegisterRoutes(e)

	// --- Idle Session Sweeper ---
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	if ttl := config.GetDuration(cfg.Chat.SessionTTL); ttl > 0 {
		go func() {
			ticker := time.NewTicker(ttl)
			defer ticker.Stop()
			for {
				select {
				case <-sweepCtx.Done():
					return
				case <-ticker.C:
					if removed := sessions.Sweep(ttl); removed > 0 {
						zapLog.Info("idle sessions removed", zap.Int("count", removed))
					}
				}
			}
		}()
		zapLog.Info("session sweeper started", zap.Duration("ttl", ttl))
	}

	// --- Start Server ---
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()
	zapLog.Info("SoccerBot API listening", zap.Int("port", cfg.Server.Port))

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down server", zap.Error(err))
	}

	zapLog.Info("SoccerBot stopped gracefully")
}
