package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"playlisttracker/internal/config"
	"playlisttracker/internal/domain"
)

var ErrUnknownTarget = errors.New("unknown target kind")

const recordColumns = "id, url, playlist, completed, created_at"

type URLRepository struct {
	pool *pgxpool.Pool
}

func NewURLRepository(ctx context.Context, cfg *config.DatabaseConfig) (*URLRepository, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &URLRepository{pool: pool}, nil
}

// Migrate creates or updates the tables for the given models. GORM runs on a
// database/sql view of the same pool.
func (r *URLRepository) Migrate(models ...any) error {
	sqlDB := stdlib.OpenDBFromPool(r.pool)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open migration session: %w", err)
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (r *URLRepository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *URLRepository) Close() {
	r.pool.Close()
}

func (r *URLRepository) Insert(ctx context.Context, location string, playlist *string) (*domain.URLRecord, error) {
	rows, err := r.pool.Query(ctx,
		`INSERT INTO urls (url, playlist) VALUES ($1, $2) RETURNING `+recordColumns,
		location, playlist,
	)
	if err != nil {
		return nil, err
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.URLRecord])
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// InsertMany writes all locations under one playlist with a single COPY, so
// either every row lands or none does. Ids follow the input order.
func (r *URLRepository) InsertMany(ctx context.Context, playlist string, locations []string) (int64, error) {
	if len(locations) == 0 {
		return 0, nil
	}

	return r.pool.CopyFrom(ctx,
		pgx.Identifier{"urls"},
		[]string{"url", "playlist"},
		pgx.CopyFromSlice(len(locations), func(i int) ([]any, error) {
			return []any{locations[i], playlist}, nil
		}),
	)
}

func (r *URLRepository) Get(ctx context.Context, id int64) (*domain.URLRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+recordColumns+` FROM urls WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.URLRecord])
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *URLRepository) ListAll(ctx context.Context) ([]domain.URLRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+recordColumns+` FROM urls ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[domain.URLRecord])
}

func (r *URLRepository) ListByPlaylist(ctx context.Context, playlist string) ([]domain.URLRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+recordColumns+` FROM urls WHERE playlist = $1 ORDER BY id`, playlist)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[domain.URLRecord])
}

func (r *URLRepository) ListPlaylists(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT playlist FROM urls WHERE playlist IS NOT NULL ORDER BY playlist`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (r *URLRepository) SetCompleted(ctx context.Context, target domain.Target, completed bool) (int64, error) {
	where, arg, err := targetClause(target)
	if err != nil {
		return 0, err
	}
	tag, err := r.pool.Exec(ctx, `UPDATE urls SET completed = $1 WHERE `+where+` = $2`, completed, arg)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *URLRepository) Delete(ctx context.Context, target domain.Target) (int64, error) {
	where, arg, err := targetClause(target)
	if err != nil {
		return 0, err
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM urls WHERE `+where+` = $1`, arg)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func targetClause(target domain.Target) (string, any, error) {
	switch target.Kind {
	case domain.TargetRecord:
		return "id", target.ID, nil
	case domain.TargetLocation:
		return "url", target.Value, nil
	case domain.TargetPlaylist:
		return "playlist", target.Value, nil
	default:
		return "", nil, fmt.Errorf("%w: %d", ErrUnknownTarget, target.Kind)
	}
}
