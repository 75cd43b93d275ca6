package service

//go:generate go tool mockery

import (
	"context"

	"playlisttracker/internal/domain"
)

type Repository interface {
	Insert(ctx context.Context, location string, playlist *string) (*domain.URLRecord, error)
	InsertMany(ctx context.Context, playlist string, locations []string) (int64, error)
	Get(ctx context.Context, id int64) (*domain.URLRecord, error)
	ListAll(ctx context.Context) ([]domain.URLRecord, error)
	ListByPlaylist(ctx context.Context, playlist string) ([]domain.URLRecord, error)
	ListPlaylists(ctx context.Context) ([]string, error)
	SetCompleted(ctx context.Context, target domain.Target, completed bool) (int64, error)
	Delete(ctx context.Context, target domain.Target) (int64, error)
}

type Expander interface {
	Expand(ctx context.Context, playlistID string) ([]string, error)
}

type IDCodec interface {
	Encode(id int64) (string, error)
	Decode(s string) (int64, error)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
