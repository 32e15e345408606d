package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sentinelles/internal/catalog/handler"
	"sentinelles/internal/catalog/service"
	pgstore "sentinelles/internal/catalog/store/postgres"
	"sentinelles/internal/platform/config"
	"sentinelles/internal/platform/httpserver"
	"sentinelles/internal/platform/logger"
	"sentinelles/internal/platform/metrics"
	"sentinelles/internal/platform/middleware"
	"sentinelles/internal/platform/postgres"
	"sentinelles/internal/seed"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the catalog packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx := context.Background()

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	if cfg.SeedOnStart {
		if err := seed.Run(ctx, db, log, m); err != nil {
			log.Error("seed failed", "error", err)
			os.Exit(1)
		}
	}

	svc := service.New(pgstore.New(db), m)
	h := handler.New(svc, log)

	router := chi.NewRouter()
	router.Use(
		middleware.Recovery(log),
		middleware.RequestID,
		middleware.Logger(log),
		middleware.Timeout(30*time.Second),
		middleware.Latency(m),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	h.Register(router)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting sentinelles api", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
