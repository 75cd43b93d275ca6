package handler

import (
	"context"

	"playlisttracker/internal/domain"
)

type URLService interface {
	AddVideo(ctx context.Context, location string) (*domain.URLResponse, error)
	AddPlaylist(ctx context.Context, reference string) (*domain.AddPlaylistResponse, error)
	ListURLs(ctx context.Context) ([]domain.URLResponse, error)
	GetURL(ctx context.Context, id string) (*domain.URLResponse, error)
	ListPlaylist(ctx context.Context, reference string) ([]domain.URLResponse, error)
	ListPlaylists(ctx context.Context) ([]string, error)
	SetVideoCompleted(ctx context.Context, location string, completed bool) error
	SetURLCompleted(ctx context.Context, id string, completed bool) error
	SetPlaylistCompleted(ctx context.Context, reference string, completed bool) error
	DeleteVideo(ctx context.Context, location string) error
	DeleteURL(ctx context.Context, id string) error
	DeletePlaylist(ctx context.Context, reference string) error
}

type RequestValidator interface {
	ValidateURL(url string) error
	ValidatePlaylistURL(url string) error
}
