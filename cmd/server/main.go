package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"joborder-agent/internal/agent"
	"joborder-agent/internal/api"
	"joborder-agent/internal/config"
	"joborder-agent/internal/database"
	"joborder-agent/internal/llm"
	"joborder-agent/internal/logger"
	"joborder-agent/internal/sanitize"
)

func main() {
	log := logger.New("info", "json")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	log = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatal("database setup failed", zap.Error(err))
	}
	defer db.Close()

	// Connection problems surface per request, as they always have; the
	// startup ping is informational only.
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.Ping(pingCtx); err != nil {
		log.Warn("database not reachable at startup", zap.Error(err))
	}
	cancel()

	model, err := llm.New(cfg.Ollama, log)
	if err != nil {
		log.Fatal("ollama client setup failed", zap.Error(err))
	}

	sanitizer := sanitize.New(database.NumericTextColumns)
	service := agent.New(model, db, sanitizer, log)
	handler := api.NewHandler(service, db, model, cfg.App, log)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: api.SetupRouter(handler),
	}

	go func() {
		log.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
