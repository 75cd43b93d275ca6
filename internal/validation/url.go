package validation

import (
	"net/url"
	"strings"

	"playlisttracker/internal/playlist"
)

var blockedProtocols = map[string]bool{
	"javascript": true,
	"data":       true,
	"file":       true,
	"vbscript":   true,
	"about":      true,
	"blob":       true,
}

var allowedProtocols = map[string]bool{
	"http":  true,
	"https": true,
}

type URLValidator struct {
	maxLength int
}

func NewURLValidator(maxLength int) *URLValidator {
	return &URLValidator{maxLength: maxLength}
}

// ValidateURL accepts a video address or a bare video identifier.
// Anything with a scheme must be an http(s) URL with a host.
func (v *URLValidator) ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}

	if len(rawURL) > v.maxLength {
		return ErrURLTooLong
	}

	if strings.ContainsAny(rawURL, " \t\r\n") {
		return ErrInvalidURLFormat
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURLFormat
	}

	if parsed.Scheme == "" {
		return nil
	}

	scheme := strings.ToLower(parsed.Scheme)
	if blockedProtocols[scheme] {
		return ErrUnsafeProtocol
	}
	if !allowedProtocols[scheme] {
		return ErrInvalidURLFormat
	}

	if parsed.Host == "" {
		return ErrInvalidURLFormat
	}

	return nil
}

// ValidatePlaylistURL accepts a playlist id or any URL carrying one in its
// list parameter.
func (v *URLValidator) ValidatePlaylistURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyPlaylistURL
	}

	if len(rawURL) > v.maxLength {
		return ErrURLTooLong
	}

	if _, err := playlist.ParseID(rawURL); err != nil {
		return ErrInvalidPlaylistURL
	}

	return nil
}
