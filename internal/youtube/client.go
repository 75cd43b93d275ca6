// Package youtube fetches playlist listings from the YouTube Data API v3.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"playlisttracker/internal/config"
	"playlisttracker/internal/playlist"
)

var (
	ErrAPIKeyRequired   = errors.New("youtube api key is required")
	ErrPlaylistNotFound = errors.New("playlist not found")
)

// Client implements playlist.PageFetcher on top of playlistItems.list.
type Client struct {
	service *youtube.Service
}

func NewClient(ctx context.Context, cfg *config.YouTubeConfig, opts ...option.ClientOption) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}

	clientOpts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(cfg.Endpoint))
	}
	clientOpts = append(clientOpts, opts...)

	service, err := youtube.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &Client{service: service}, nil
}

func (c *Client) FetchPage(ctx context.Context, playlistID, pageToken string, maxResults int64) (*playlist.Page, error) {
	call := c.service.PlaylistItems.List([]string{"contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(maxResults).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrPlaylistNotFound, playlistID)
		}
		return nil, fmt.Errorf("failed to list playlist items: %w", err)
	}

	page := &playlist.Page{
		VideoIDs:      make([]string, 0, len(resp.Items)),
		NextPageToken: resp.NextPageToken,
	}
	for _, item := range resp.Items {
		if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
			continue
		}
		page.VideoIDs = append(page.VideoIDs, item.ContentDetails.VideoId)
	}
	return page, nil
}
