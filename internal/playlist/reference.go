package playlist

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var ErrInvalidReference = errors.New("invalid playlist reference")

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{2,64}$`)

// ParseID accepts either a bare playlist id or a URL carrying it in the
// "list" query parameter (watch, playlist and share links all do).
func ParseID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrInvalidReference
	}

	if idPattern.MatchString(ref) {
		return ref, nil
	}

	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		// "youtube.com/playlist?list=..." without a scheme
		u, err = url.Parse("https://" + ref)
		if err != nil || u.Host == "" {
			return "", ErrInvalidReference
		}
	}

	id := u.Query().Get("list")
	if !idPattern.MatchString(id) {
		return "", ErrInvalidReference
	}
	return id, nil
}
