package metrics

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"playlisttracker/internal/config"
)

// Copier is the bulk-load part of *pgxpool.Pool.
type Copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Recorder buffers metrics in memory and flushes them to Postgres in batches,
// one goroutine per metric kind. Metrics are also mirrored to Prometheus
// collectors synchronously when collectors are configured.
type Recorder struct {
	db           Copier
	collectors   *Collectors
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	httpSink     *sink[HTTPMetric]
	businessSink *sink[BusinessMetric]
	infraSink    *sink[InfraMetric]
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

type sink[T any] struct {
	kind  string
	ch    chan T
	write func(ctx context.Context, batch []T) error
}

func NewRecorder(db Copier, collectors *Collectors, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	r := &Recorder{
		db:         db,
		collectors: collectors,
		logger:     logger,
		cfg:        cfg,
		shutdownCh: make(chan struct{}),
	}
	r.httpSink = &sink[HTTPMetric]{kind: "http", ch: make(chan HTTPMetric, cfg.BufferSize), write: r.writeHTTP}
	r.businessSink = &sink[BusinessMetric]{kind: "business", ch: make(chan BusinessMetric, cfg.BufferSize), write: r.writeBusiness}
	r.infraSink = &sink[InfraMetric]{kind: "infra", ch: make(chan InfraMetric, cfg.BufferSize), write: r.writeInfra}
	return r
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if r.collectors != nil {
		r.collectors.observeHTTP(m)
	}
	if r.cfg.Enabled {
		offer(r, r.httpSink, m)
	}
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	m := BusinessMetric{
		Time:       time.Now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	}
	if r.collectors != nil {
		r.collectors.observeBusiness(m)
	}
	if r.cfg.Enabled {
		offer(r, r.businessSink, m)
	}
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if r.collectors != nil {
		r.collectors.observeInfra(m)
	}
	if r.cfg.Enabled {
		offer(r, r.infraSink, m)
	}
}

func offer[T any](r *Recorder, s *sink[T], m T) {
	select {
	case s.ch <- m:
	default:
		r.logger.Warn("metrics buffer full, dropping metric", slog.String("kind", s.kind))
	}
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	flushInterval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go run(ctx, r, r.httpSink, flushInterval)
	go run(ctx, r, r.businessSink, flushInterval)
	go run(ctx, r, r.infraSink, flushInterval)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close stops the flush loops after writing whatever is still buffered.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func run[T any](ctx context.Context, r *Recorder, s *sink[T], interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, r.cfg.FlushThreshold)

	for {
		select {
		case <-ctx.Done():
			drain(r, s, batch)
			return
		case <-r.shutdownCh:
			drain(r, s, batch)
			return
		case m := <-s.ch:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				flush(ctx, r, s, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				flush(ctx, r, s, batch)
				batch = batch[:0]
			}
		}
	}
}

func drain[T any](r *Recorder, s *sink[T], batch []T) {
	for {
		select {
		case m := <-s.ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				flush(ctx, r, s, batch)
				cancel()
			}
			return
		}
	}
}

func flush[T any](ctx context.Context, r *Recorder, s *sink[T], batch []T) {
	if len(batch) == 0 {
		return
	}
	if err := s.write(ctx, batch); err != nil {
		r.logger.Error("failed to write metrics batch",
			slog.String("kind", s.kind),
			slog.Int("size", len(batch)),
			slog.String("error", err.Error()))
	}
}

func (r *Recorder) writeHTTP(ctx context.Context, batch []HTTPMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.RequestID, m.Error}
	}
	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{HTTPMetric{}.TableName()},
		[]string{"time", "method", "path", "status_code", "duration_ms", "client_ip", "request_id", "error"},
		pgx.CopyFromRows(rows),
	)
	return err
}

func (r *Recorder) writeBusiness(ctx context.Context, batch []BusinessMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		labelsJSON, err := json.Marshal(m.Labels)
		if err != nil {
			return err
		}
		rows[i] = []any{m.Time, m.MetricName, m.Value, labelsJSON}
	}
	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{BusinessMetric{}.TableName()},
		[]string{"time", "metric_name", "value", "labels"},
		pgx.CopyFromRows(rows),
	)
	return err
}

func (r *Recorder) writeInfra(ctx context.Context, batch []InfraMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax, m.Goroutines, m.HeapAllocMB}
	}
	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{InfraMetric{}.TableName()},
		[]string{"time", "pool_acquired", "pool_idle", "pool_total", "pool_max", "goroutines", "heap_alloc_mb"},
		pgx.CopyFromRows(rows),
	)
	return err
}
