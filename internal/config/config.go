package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	App        AppConfig
	YouTube    YouTubeConfig
	Validation ValidationConfig
	RateLimit  RateLimitConfig
	Metrics    MetricsConfig
}

type ServerConfig struct {
	Host               string   `env:"HOST" envDefault:"0.0.0.0"`
	Port               int      `env:"PORT" envDefault:"3000"`
	MaxConnections     int      `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	MaxRequestBodySize string   `env:"SERVER_MAX_BODY_SIZE" envDefault:"64K"`
	CORSAllowOrigins   []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL,required,notEmpty"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`
}

type AppConfig struct {
	IDAlphabet string `env:"ID_ALPHABET"`
}

type YouTubeConfig struct {
	APIKey      string        `env:"YOUTUBE_API_KEY,required,notEmpty"`
	Endpoint    string        `env:"YOUTUBE_API_ENDPOINT"`
	PageSize    int64         `env:"YOUTUBE_PAGE_SIZE" envDefault:"50"`
	MaxPages    int           `env:"YOUTUBE_MAX_PAGES" envDefault:"200"`
	PageTimeout time.Duration `env:"YOUTUBE_PAGE_TIMEOUT" envDefault:"10s"`
}

type ValidationConfig struct {
	MaxURLLength int `env:"VALIDATION_MAX_URL_LENGTH" envDefault:"2048"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"true"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"1000"`
}

// Load reads an optional .env file from the working directory and then parses
// the process environment. Variables already set in the environment win.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

func LoadFiles(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
