// Package playlist expands an external playlist into the ordered list of its
// member video ids.
package playlist

//go:generate go tool mockery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// MaxPageSize is the largest page the listing service hands out.
const MaxPageSize = 50

var (
	ErrEmptyPlaylistID = errors.New("playlist id is required")
	ErrTooManyPages    = errors.New("playlist exceeds maximum page count")
	ErrCursorLoop      = errors.New("continuation cursor repeated")
)

// Page is one slice of a playlist listing. An empty NextPageToken means the
// listing is exhausted.
type Page struct {
	VideoIDs      []string
	NextPageToken string
}

type PageFetcher interface {
	FetchPage(ctx context.Context, playlistID, pageToken string, maxResults int64) (*Page, error)
}

// ExpansionError reports the page that failed. Collected is the number of ids
// gathered before the failure; they are not returned to the caller.
type ExpansionError struct {
	PlaylistID string
	Page       int
	Collected  int
	Err        error
}

func (e *ExpansionError) Error() string {
	return fmt.Sprintf("expand playlist %q: page %d: %v", e.PlaylistID, e.Page, e.Err)
}

func (e *ExpansionError) Unwrap() error {
	return e.Err
}

type Options struct {
	PageSize    int64
	MaxPages    int
	PageTimeout time.Duration
}

func DefaultOptions() Options {
	return Options{
		PageSize:    MaxPageSize,
		MaxPages:    200,
		PageTimeout: 10 * time.Second,
	}
}

type Expander struct {
	fetcher PageFetcher
	opts    Options
	logger  *slog.Logger
}

func NewExpander(fetcher PageFetcher, opts Options, logger *slog.Logger) *Expander {
	defaults := DefaultOptions()
	if opts.PageSize <= 0 || opts.PageSize > MaxPageSize {
		opts.PageSize = defaults.PageSize
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = defaults.MaxPages
	}
	if opts.PageTimeout <= 0 {
		opts.PageTimeout = defaults.PageTimeout
	}
	return &Expander{fetcher: fetcher, opts: opts, logger: logger}
}

// Expand walks every page of the playlist and returns the member ids in
// listing order. Any failed page aborts the whole expansion with an
// *ExpansionError; a playlist without members yields an empty slice.
func (e *Expander) Expand(ctx context.Context, playlistID string) ([]string, error) {
	if playlistID == "" {
		return nil, ErrEmptyPlaylistID
	}

	ids := make([]string, 0)
	seen := make(map[string]struct{})
	token := ""

	for page := 1; ; page++ {
		if page > e.opts.MaxPages {
			return nil, &ExpansionError{PlaylistID: playlistID, Page: page, Collected: len(ids), Err: ErrTooManyPages}
		}

		res, err := e.fetch(ctx, playlistID, token)
		if err != nil {
			e.logger.Warn("playlist page fetch failed",
				slog.String("playlist_id", playlistID),
				slog.Int("page", page),
				slog.Int("collected", len(ids)),
				slog.String("error", err.Error()))
			return nil, &ExpansionError{PlaylistID: playlistID, Page: page, Collected: len(ids), Err: err}
		}

		ids = append(ids, res.VideoIDs...)
		e.logger.Debug("playlist page fetched",
			slog.String("playlist_id", playlistID),
			slog.Int("page", page),
			slog.Int("items", len(res.VideoIDs)))

		if res.NextPageToken == "" {
			return ids, nil
		}
		if _, ok := seen[res.NextPageToken]; ok {
			return nil, &ExpansionError{PlaylistID: playlistID, Page: page, Collected: len(ids), Err: ErrCursorLoop}
		}
		seen[res.NextPageToken] = struct{}{}
		token = res.NextPageToken
	}
}

func (e *Expander) fetch(ctx context.Context, playlistID, token string) (*Page, error) {
	ctx, cancel := context.WithTimeout(ctx, e.opts.PageTimeout)
	defer cancel()

	res, err := e.fetcher.FetchPage(ctx, playlistID, token, e.opts.PageSize)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return &Page{}, nil
	}
	return res, nil
}
