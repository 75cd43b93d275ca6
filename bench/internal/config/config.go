package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BaseURL            string        `env:"BASE_URL" envDefault:"http://localhost:3000"`
	SeedCount          int           `env:"SEED_COUNT" envDefault:"10000"`
	SeedWorkers        int           `env:"SEED_WORKERS" envDefault:"0"`
	Rate               int           `env:"RATE" envDefault:"500"`
	Duration           time.Duration `env:"DURATION" envDefault:"30s"`
	WriteRatio         float64       `env:"WRITE_RATIO" envDefault:"0.1"`
	BenchType          string        `env:"BENCH_TYPE" envDefault:"mixed"`
	RateLimitBypass    string        `env:"RATE_LIMIT_BYPASS_SECRET"`
	InsecureSkipVerify bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
	SeedTimeout        time.Duration `env:"SEED_TIMEOUT" envDefault:"30s"`
	Connections        int           `env:"CONNECTIONS" envDefault:"10000"`
	MaxWorkers         uint64        `env:"MAX_WORKERS" envDefault:"0"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
