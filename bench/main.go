package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bench/internal/attack"
	"bench/internal/config"
	"bench/internal/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var ids []string
	if cfg.BenchType != "add" {
		ids, err = seed.Run(ctx, seed.Options{
			BaseURL:            cfg.BaseURL,
			Count:              cfg.SeedCount,
			Workers:            cfg.SeedWorkers,
			BypassSecret:       cfg.RateLimitBypass,
			InsecureSkipVerify: cfg.InsecureSkipVerify,
			Timeout:            cfg.SeedTimeout,
		})
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	return attack.Run(&attack.Config{
		BaseURL:            cfg.BaseURL,
		IDs:                ids,
		Rate:               cfg.Rate,
		Duration:           cfg.Duration,
		WriteRatio:         cfg.WriteRatio,
		Type:               cfg.BenchType,
		RateLimitBypass:    cfg.RateLimitBypass,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Connections:        cfg.Connections,
		MaxWorkers:         cfg.MaxWorkers,
	})
}
