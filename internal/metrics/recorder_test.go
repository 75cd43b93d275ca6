package metrics

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playlisttracker/internal/config"
)

type copyCall struct {
	table   string
	columns []string
	rows    [][]any
}

type fakeCopier struct {
	mu    sync.Mutex
	calls []copyCall
	err   error
}

func (f *fakeCopier) CopyFrom(_ context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	var rows [][]any
	for rowSrc.Next() {
		values, err := rowSrc.Values()
		if err != nil {
			return 0, err
		}
		rows = append(rows, values)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, copyCall{table: tableName[0], columns: columnNames, rows: rows})
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(rows)), nil
}

func (f *fakeCopier) rowsFor(table string) [][]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows [][]any
	for _, c := range f.calls {
		if c.table == table {
			rows = append(rows, c.rows...)
		}
	}
	return rows
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:        true,
		BufferSize:     100,
		FlushInterval:  10,
		FlushThreshold: 1000,
	}
}

func TestRecorder_FlushesOnClose(t *testing.T) {
	db := &fakeCopier{}
	r := NewRecorder(db, nil, testConfig(), testLogger())
	r.Start(context.Background())

	r.RecordHTTP(HTTPMetric{Time: time.Now(), Method: "GET", Path: "/urls", StatusCode: 200, RequestID: "req-1"})
	r.RecordBusiness("video_added", 1, map[string]string{"source": "single"})
	r.RecordInfra(InfraMetric{Time: time.Now(), PoolAcquired: 2, PoolMax: 10, Goroutines: 7})
	r.Close()

	httpRows := db.rowsFor("http_metrics")
	require.Len(t, httpRows, 1)
	assert.Equal(t, "GET", httpRows[0][1])
	assert.Equal(t, "req-1", httpRows[0][6])

	businessRows := db.rowsFor("business_metrics")
	require.Len(t, businessRows, 1)
	assert.Equal(t, "video_added", businessRows[0][1])
	assert.JSONEq(t, `{"source":"single"}`, string(businessRows[0][3].([]byte)))

	infraRows := db.rowsFor("infra_metrics")
	require.Len(t, infraRows, 1)
	assert.Equal(t, 10, infraRows[0][4])
}

func TestRecorder_FlushesOnThreshold(t *testing.T) {
	db := &fakeCopier{}
	cfg := testConfig()
	cfg.FlushInterval = 60_000
	cfg.FlushThreshold = 3
	r := NewRecorder(db, nil, cfg, testLogger())
	r.Start(context.Background())
	defer r.Close()

	for range 3 {
		r.RecordBusiness("urls_deleted", 1, nil)
	}

	assert.Eventually(t, func() bool {
		return len(db.rowsFor("business_metrics")) == 3
	}, time.Second, 5*time.Millisecond)
}

func TestRecorder_FlushesOnInterval(t *testing.T) {
	db := &fakeCopier{}
	r := NewRecorder(db, nil, testConfig(), testLogger())
	r.Start(context.Background())
	defer r.Close()

	r.RecordHTTP(HTTPMetric{Time: time.Now(), Method: "POST", Path: "/urls", StatusCode: 200})

	assert.Eventually(t, func() bool {
		return len(db.rowsFor("http_metrics")) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestRecorder_DrainsOnContextCancel(t *testing.T) {
	db := &fakeCopier{}
	cfg := testConfig()
	cfg.FlushInterval = 60_000
	r := NewRecorder(db, nil, cfg, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	r.RecordBusiness("playlist_expanded", 1, nil)
	cancel()
	r.Close()

	assert.Len(t, db.rowsFor("business_metrics"), 1)
}

func TestRecorder_WriteErrorDoesNotStopLoop(t *testing.T) {
	db := &fakeCopier{err: errors.New("connection refused")}
	r := NewRecorder(db, nil, testConfig(), testLogger())
	r.Start(context.Background())

	r.RecordHTTP(HTTPMetric{Time: time.Now(), Method: "GET", Path: "/health", StatusCode: 200})
	assert.Eventually(t, func() bool {
		return len(db.rowsFor("http_metrics")) == 1
	}, time.Second, 5*time.Millisecond)

	r.RecordHTTP(HTTPMetric{Time: time.Now(), Method: "GET", Path: "/health", StatusCode: 200})
	r.Close()
	assert.Len(t, db.rowsFor("http_metrics"), 2)
}

func TestRecorder_DropsWhenBufferFull(t *testing.T) {
	db := &fakeCopier{}
	cfg := testConfig()
	cfg.BufferSize = 2
	r := NewRecorder(db, nil, cfg, testLogger())

	// not started, so nothing consumes the channel
	for range 5 {
		r.RecordBusiness("video_added", 1, nil)
	}

	assert.Len(t, r.businessSink.ch, 2)
}

func TestRecorder_Disabled(t *testing.T) {
	db := &fakeCopier{}
	reg := prometheus.NewRegistry()
	collectors := NewCollectors(reg)
	cfg := testConfig()
	cfg.Enabled = false
	r := NewRecorder(db, collectors, cfg, testLogger())
	r.Start(context.Background())

	r.RecordBusiness("video_added", 1, nil)
	r.RecordHTTP(HTTPMetric{Method: "GET", Path: "/urls", StatusCode: 200, DurationMs: 5})
	r.Close()

	assert.Empty(t, db.rowsFor("business_metrics"))
	assert.Empty(t, db.rowsFor("http_metrics"))
	assert.InDelta(t, 1, testutil.ToFloat64(collectors.businessEvents.WithLabelValues("video_added")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(collectors.httpRequests.WithLabelValues("GET", "/urls", "200")), 0)
}

func TestRecorder_CloseIsIdempotent(t *testing.T) {
	r := NewRecorder(&fakeCopier{}, nil, testConfig(), testLogger())
	r.Start(context.Background())
	r.Close()
	assert.NotPanics(t, r.Close)
}
