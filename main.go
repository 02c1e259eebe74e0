package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jordache-jozz8/BA-system/internal/config"
	"github.com/jordache-jozz8/BA-system/internal/db"
	"github.com/jordache-jozz8/BA-system/internal/handlers"
	"github.com/jordache-jozz8/BA-system/internal/logging"
	"github.com/jordache-jozz8/BA-system/internal/metrics"
)

func main() {
	started := time.Now()
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, os.Stderr)

	stores, err := db.Open(cfg.StoreBackend, cfg.SQLiteDSN, time.Now)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("open store")
	}
	defer stores.Close()

	gin.SetMode(gin.ReleaseMode)
	r := handlers.NewRouter(handlers.Options{
		Stores:          stores,
		Logger:          log,
		Metrics:         metrics.New(stores, log),
		DemoToken:       cfg.DemoToken,
		CORSAllowOrigin: cfg.CORSAllowOrigin,
		Started:         started,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("backend", cfg.StoreBackend).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
