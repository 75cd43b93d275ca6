package playlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"playlisttracker/internal/playlist"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr error
	}{
		{"bare id", "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf", "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf", nil},
		{"short id", "PL1", "PL1", nil},
		{"playlist url", "https://www.youtube.com/playlist?list=PLabc_123-x", "PLabc_123-x", nil},
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLabc&index=2", "PLabc", nil},
		{"music url", "https://music.youtube.com/playlist?list=OLAK5uy_abc", "OLAK5uy_abc", nil},
		{"no scheme", "youtube.com/playlist?list=PLxyz", "PLxyz", nil},
		{"surrounding spaces", "  PL1  ", "PL1", nil},

		{"empty", "", "", playlist.ErrInvalidReference},
		{"blank", "   ", "", playlist.ErrInvalidReference},
		{"url without list", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "", playlist.ErrInvalidReference},
		{"bad list value", "https://www.youtube.com/playlist?list=a%20b", "", playlist.ErrInvalidReference},
		{"garbage", "not a playlist", "", playlist.ErrInvalidReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := playlist.ParseID(tt.ref)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
