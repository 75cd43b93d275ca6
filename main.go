package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/netutil"

	"playlisttracker/internal/config"
	"playlisttracker/internal/domain"
	"playlisttracker/internal/handler"
	"playlisttracker/internal/idcodec"
	"playlisttracker/internal/metrics"
	custommiddleware "playlisttracker/internal/middleware"
	"playlisttracker/internal/playlist"
	"playlisttracker/internal/repository"
	"playlisttracker/internal/service"
	"playlisttracker/internal/validation"
	"playlisttracker/internal/youtube"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repo, err := repository.NewURLRepository(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	if err := repo.Migrate(append([]any{&domain.URLRecord{}}, metrics.Models()...)...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	codec, err := idcodec.New(cfg.App.IDAlphabet)
	if err != nil {
		return fmt.Errorf("failed to create id codec: %w", err)
	}

	yt, err := youtube.NewClient(ctx, &cfg.YouTube)
	if err != nil {
		return fmt.Errorf("failed to create youtube client: %w", err)
	}

	expander := playlist.NewExpander(yt, playlist.Options{
		PageSize:    cfg.YouTube.PageSize,
		MaxPages:    cfg.YouTube.MaxPages,
		PageTimeout: cfg.YouTube.PageTimeout,
	}, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recorder := metrics.NewRecorder(repo.Pool(), metrics.NewCollectors(registry), &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	go collectInfraMetrics(ctx, recorder, repo)

	urlValidator := validation.NewURLValidator(cfg.Validation.MaxURLLength)
	urlService := service.NewURLService(repo, expander, codec, recorder)
	h := handler.New(urlService, urlValidator, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.RequestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))
	e.Use(middleware.BodyLimit(cfg.Server.MaxRequestBodySize))
	e.Use(custommiddleware.Metrics(recorder))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger))

	h.Register(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", addr),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)
	}

	// playlist expansion can take several upstream round trips
	httpServer := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   2 * time.Minute,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	return nil
}

func collectInfraMetrics(ctx context.Context, recorder *metrics.Recorder, repo *repository.URLRepository) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poolStat := repo.Pool().Stat()

			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			recorder.RecordInfra(metrics.InfraMetric{
				Time:         time.Now(),
				PoolAcquired: int(poolStat.AcquiredConns()),
				PoolIdle:     int(poolStat.IdleConns()),
				PoolTotal:    int(poolStat.TotalConns()),
				PoolMax:      int(poolStat.MaxConns()),
				Goroutines:   runtime.NumGoroutine(),
				HeapAllocMB:  float64(memStats.HeapAlloc) / 1024 / 1024,
			})
		}
	}
}
