package validation

import "errors"

var (
	ErrEmptyURL           = errors.New("url is required")
	ErrInvalidURLFormat   = errors.New("invalid url format")
	ErrUnsafeProtocol     = errors.New("url protocol not allowed")
	ErrURLTooLong         = errors.New("url exceeds maximum length")
	ErrEmptyPlaylistURL   = errors.New("playlist url is required")
	ErrInvalidPlaylistURL = errors.New("playlist url has no playlist id")
)
