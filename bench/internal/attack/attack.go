package attack

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var ErrNoSeededIDs = errors.New("attack requires seeded ids")

type Config struct {
	BaseURL            string
	IDs                []string
	Rate               int
	Duration           time.Duration
	WriteRatio         float64
	Type               string
	RateLimitBypass    string
	InsecureSkipVerify bool
	Connections        int
	MaxWorkers         uint64
}

func Run(cfg *Config) error {
	var targeter vegeta.Targeter

	switch cfg.Type {
	case "add":
		targeter = AddTargeter(cfg.BaseURL, cfg.RateLimitBypass)
	case "read":
		if len(cfg.IDs) == 0 {
			return ErrNoSeededIDs
		}
		targeter = ReadTargeter(cfg.BaseURL, cfg.IDs, cfg.RateLimitBypass)
	case "toggle":
		if len(cfg.IDs) == 0 {
			return ErrNoSeededIDs
		}
		targeter = ToggleTargeter(cfg.BaseURL, cfg.IDs, cfg.RateLimitBypass)
	case "mixed":
		if len(cfg.IDs) == 0 {
			return ErrNoSeededIDs
		}
		targeter = MixedTargeter(cfg.BaseURL, cfg.IDs, cfg.WriteRatio, cfg.RateLimitBypass)
	default:
		return fmt.Errorf("unknown attack type: %s", cfg.Type)
	}

	opts := []func(*vegeta.Attacker){
		vegeta.Redirects(-1),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(5 * time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}),
	}
	if cfg.MaxWorkers > 0 {
		opts = append(opts, vegeta.MaxWorkers(cfg.MaxWorkers))
	}
	attacker := vegeta.NewAttacker(opts...)

	fmt.Printf("Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	return vegeta.NewTextReporter(&metrics).Report(os.Stdout)
}
