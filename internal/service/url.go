package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"playlisttracker/internal/domain"
	"playlisttracker/internal/playlist"
)

var (
	ErrURLNotFound     = errors.New("url not found")
	ErrInvalidID       = errors.New("invalid id")
	ErrInvalidPlaylist = errors.New("invalid playlist reference")
	ErrExpansionFailed = errors.New("playlist expansion failed")
)

type URLService struct {
	repo     Repository
	expander Expander
	codec    IDCodec
	recorder BusinessRecorder
}

func NewURLService(repo Repository, expander Expander, codec IDCodec, recorder BusinessRecorder) *URLService {
	return &URLService{
		repo:     repo,
		expander: expander,
		codec:    codec,
		recorder: recorder,
	}
}

// AddVideo stores a single ungrouped video.
func (s *URLService) AddVideo(ctx context.Context, location string) (*domain.URLResponse, error) {
	rec, err := s.repo.Insert(ctx, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to insert url: %w", err)
	}

	s.recorder.RecordBusiness("video_added", 1, nil)

	return s.toResponse(rec)
}

// AddPlaylist expands the referenced playlist and stores every member video
// under the reference as its group key. Nothing is stored when expansion
// fails.
func (s *URLService) AddPlaylist(ctx context.Context, reference string) (*domain.AddPlaylistResponse, error) {
	playlistID, err := playlist.ParseID(reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlaylist, err)
	}

	videoIDs, err := s.expander.Expand(ctx, playlistID)
	if err != nil {
		s.recorder.RecordBusiness("expansion_failed", 1, map[string]string{"playlist_id": playlistID})
		return nil, fmt.Errorf("%w: %w", ErrExpansionFailed, err)
	}

	added, err := s.repo.InsertMany(ctx, reference, videoIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to insert playlist videos: %w", err)
	}

	labels := map[string]string{"playlist_id": playlistID}
	s.recorder.RecordBusiness("playlist_expanded", 1, labels)
	s.recorder.RecordBusiness("playlist_videos_added", float64(added), labels)

	return &domain.AddPlaylistResponse{
		Playlist: reference,
		Added:    added,
	}, nil
}

func (s *URLService) ListURLs(ctx context.Context) ([]domain.URLResponse, error) {
	recs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list urls: %w", err)
	}
	return s.toResponses(recs)
}

func (s *URLService) GetURL(ctx context.Context, id string) (*domain.URLResponse, error) {
	rawID, err := s.decode(id)
	if err != nil {
		return nil, err
	}

	rec, err := s.repo.Get(ctx, rawID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrURLNotFound
		}
		return nil, fmt.Errorf("failed to get url: %w", err)
	}
	return s.toResponse(rec)
}

func (s *URLService) ListPlaylist(ctx context.Context, reference string) ([]domain.URLResponse, error) {
	recs, err := s.repo.ListByPlaylist(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlist: %w", err)
	}
	return s.toResponses(recs)
}

func (s *URLService) ListPlaylists(ctx context.Context) ([]string, error) {
	playlists, err := s.repo.ListPlaylists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	return playlists, nil
}

// SetVideoCompleted updates every record with the given location. Matching
// nothing is not an error.
func (s *URLService) SetVideoCompleted(ctx context.Context, location string, completed bool) error {
	_, err := s.setCompleted(ctx, domain.LocationTarget(location), completed)
	return err
}

func (s *URLService) SetPlaylistCompleted(ctx context.Context, reference string, completed bool) error {
	_, err := s.setCompleted(ctx, domain.PlaylistTarget(reference), completed)
	return err
}

func (s *URLService) SetURLCompleted(ctx context.Context, id string, completed bool) error {
	rawID, err := s.decode(id)
	if err != nil {
		return err
	}

	n, err := s.setCompleted(ctx, domain.RecordTarget(rawID), completed)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrURLNotFound
	}
	return nil
}

func (s *URLService) DeleteVideo(ctx context.Context, location string) error {
	_, err := s.delete(ctx, domain.LocationTarget(location))
	return err
}

func (s *URLService) DeletePlaylist(ctx context.Context, reference string) error {
	_, err := s.delete(ctx, domain.PlaylistTarget(reference))
	return err
}

func (s *URLService) DeleteURL(ctx context.Context, id string) error {
	rawID, err := s.decode(id)
	if err != nil {
		return err
	}

	n, err := s.delete(ctx, domain.RecordTarget(rawID))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrURLNotFound
	}
	return nil
}

func (s *URLService) setCompleted(ctx context.Context, target domain.Target, completed bool) (int64, error) {
	n, err := s.repo.SetCompleted(ctx, target, completed)
	if err != nil {
		return 0, fmt.Errorf("failed to update completed flag: %w", err)
	}

	s.recorder.RecordBusiness("completed_updated", float64(n), map[string]string{
		"target":    target.Kind.String(),
		"completed": strconv.FormatBool(completed),
	})
	return n, nil
}

func (s *URLService) delete(ctx context.Context, target domain.Target) (int64, error) {
	n, err := s.repo.Delete(ctx, target)
	if err != nil {
		return 0, fmt.Errorf("failed to delete urls: %w", err)
	}

	s.recorder.RecordBusiness("urls_deleted", float64(n), map[string]string{
		"target": target.Kind.String(),
	})
	return n, nil
}

func (s *URLService) decode(id string) (int64, error) {
	rawID, err := s.codec.Decode(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidID, err)
	}
	return rawID, nil
}

func (s *URLService) toResponse(rec *domain.URLRecord) (*domain.URLResponse, error) {
	id, err := s.codec.Encode(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to encode id: %w", err)
	}

	return &domain.URLResponse{
		ID:        id,
		URL:       rec.URL,
		Playlist:  rec.Playlist,
		Completed: rec.Completed,
		CreatedAt: rec.CreatedAt,
	}, nil
}

func (s *URLService) toResponses(recs []domain.URLRecord) ([]domain.URLResponse, error) {
	out := make([]domain.URLResponse, 0, len(recs))
	for i := range recs {
		resp, err := s.toResponse(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}
