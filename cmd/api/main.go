package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/rmarquez/shopcore-backend/api/routes"
	"github.com/rmarquez/shopcore-backend/internal/checkout"
	"github.com/rmarquez/shopcore-backend/internal/seed"
	"github.com/rmarquez/shopcore-backend/internal/store"
	"github.com/rmarquez/shopcore-backend/pkg/config"
	"github.com/rmarquez/shopcore-backend/pkg/env"
	"github.com/rmarquez/shopcore-backend/pkg/logger"
	"github.com/rmarquez/shopcore-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	st := store.New()
	if err := seed.Apply(st); err != nil {
		logg.Error(context.Background(), "failed to seed store", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(st, cfg.Checkout.ProcessingDelay)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics()

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, httpMetrics, st, checkoutService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
