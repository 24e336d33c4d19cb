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

	"bizdash/internal/config"
	"bizdash/internal/logger"
	"bizdash/internal/service"
	generate_excel "bizdash/internal/service/generate-excel"
	"bizdash/internal/storage/driver"
	"bizdash/internal/web"
)

func main() {
	cfg := config.MustConfig()

	log := logger.Setup(cfg.Env, cfg.ErrorLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	data, err := driver.Dataset(*cfg)
	if err != nil {
		log.Error("failed to load dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	storage, closeStorage, err := driver.Open(ctx, *cfg, data)
	if err != nil {
		log.Error("failed to open storage", slog.String("driver", cfg.Storage.Driver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStorage()

	renderer, err := web.New()
	if err != nil {
		log.Error("failed to parse templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	settingsService := service.NewSettingsService(storage)
	dashboardService := service.NewDashboardService(data, settingsService)
	excelService := generate_excel.NewGenerateService(dashboardService)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, dashboardService, settingsService, excelService, renderer),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("server started",
			slog.String("address", cfg.Address),
			slog.String("env", cfg.Env),
			slog.String("storage", cfg.Storage.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", slog.String("error", err.Error()))
	}

	log.Info("server stopped")
}
