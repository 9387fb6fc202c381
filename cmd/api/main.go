// @title Eventhub API
// @version 1.0
// @description Publishes events with optional addresses and images, and manages discount coupons per event.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"eventhub/config"
	_ "eventhub/docs"
	"eventhub/internal/adapters/storage"
	deliveryhttp "eventhub/internal/delivery/http"
	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/metrics"
	"eventhub/internal/migrations"
	"eventhub/internal/repository/postgres"
	"eventhub/internal/services"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.ContextTimeout)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		return err
	}
	logger.Info("connected to database")

	if err := migrations.RunMigrations(db, cfg.AutoMigrate, logger); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	objectStorage, err := storage.NewObjectStorage(storage.Config{
		Provider: cfg.Storage.Provider,
		S3: storage.S3Config{
			Region:          cfg.Storage.Region,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Endpoint:        cfg.Storage.Endpoint,
			UsePathStyle:    cfg.Storage.UsePathStyle,
			PublicBaseURL:   cfg.Storage.PublicBaseURL,
		},
	}, logger)
	if err != nil {
		return err
	}
	objectStorage = storage.Instrumented(objectStorage, m.ImageUploads)

	eventRepo := postgres.NewEventRepository(db)
	addressRepo := postgres.NewAddressRepository(db)
	couponRepo := postgres.NewCouponRepository(db)

	addressService := services.NewAddressService(addressRepo, cfg.ContextTimeout)
	couponService := services.NewCouponService(eventRepo, couponRepo, cfg.ContextTimeout)
	eventService := services.NewEventService(eventRepo, addressService, couponService,
		objectStorage, cfg.Storage.Bucket, logger, cfg.ContextTimeout)

	eventController := controllers.NewEventController(logger, eventService, cfg.MaxUploadMB<<20)
	couponController := controllers.NewCouponController(logger, couponService)

	mux := deliveryhttp.NewRouter(eventController, couponController,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	handler := middleware.CORS(cfg.AllowedOrigins,
		middleware.LoggingMiddleware(logger, middleware.Metrics(m, mux)))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
