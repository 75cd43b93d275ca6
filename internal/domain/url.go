package domain

import "time"

// URLRecord is one tracked video. Playlist is nil for ungrouped records.
type URLRecord struct {
	ID        int64     `db:"id" gorm:"primaryKey;autoIncrement"`
	URL       string    `db:"url" gorm:"type:text;not null;index"`
	Playlist  *string   `db:"playlist" gorm:"type:text;index"`
	Completed bool      `db:"completed" gorm:"not null;default:false"`
	CreatedAt time.Time `db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (URLRecord) TableName() string {
	return "urls"
}

type TargetKind int

const (
	TargetRecord TargetKind = iota + 1
	TargetLocation
	TargetPlaylist
)

func (k TargetKind) String() string {
	switch k {
	case TargetRecord:
		return "record"
	case TargetLocation:
		return "location"
	case TargetPlaylist:
		return "playlist"
	default:
		return "unknown"
	}
}

// Target selects the rows an update or delete applies to: a single record by
// id, every record with a given url, or every record in a playlist.
type Target struct {
	Kind  TargetKind
	ID    int64
	Value string
}

func RecordTarget(id int64) Target {
	return Target{Kind: TargetRecord, ID: id}
}

func LocationTarget(url string) Target {
	return Target{Kind: TargetLocation, Value: url}
}

func PlaylistTarget(playlist string) Target {
	return Target{Kind: TargetPlaylist, Value: playlist}
}

type URLResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Playlist  *string   `json:"playlist"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

type AddPlaylistResponse struct {
	Playlist string `json:"playlist"`
	Added    int64  `json:"added"`
}

type AddURLRequest struct {
	URL        string `json:"url"`
	IsPlaylist bool   `json:"isPlaylist"`
}

type VideoCompletedRequest struct {
	VideoURL  string `json:"videoUrl"`
	Completed *bool  `json:"completed"`
}

type VideoRequest struct {
	VideoURL string `json:"videoUrl"`
}

type PlaylistCompletedRequest struct {
	PlaylistURL string `json:"playlistUrl"`
	Completed   *bool  `json:"completed"`
}

type PlaylistRequest struct {
	PlaylistURL string `json:"playlistUrl"`
}

type CompletedRequest struct {
	Completed *bool `json:"completed"`
}
