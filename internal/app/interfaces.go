package app

import (
	"context"

	"github.com/llehouerou/mymusic/internal/api"
	"github.com/llehouerou/mymusic/internal/likes"
	"github.com/llehouerou/mymusic/internal/notify"
	"github.com/llehouerou/mymusic/internal/resume"
)

// Compile-time assertions that the real implementations fit.
var (
	_ Catalog   = (*api.Client)(nil)
	_ Favorites = (*likes.Set)(nil)
	_ Sessions  = (*resume.Recorder)(nil)
	_ Announcer = (*notify.NowPlaying)(nil)
)

// Catalog is the part of the backend the TUI browses.
type Catalog interface {
	Songs(ctx context.Context) ([]api.Song, error)
	Favorites(ctx context.Context) ([]api.Song, error)
	Playlists(ctx context.Context) ([]api.Playlist, error)
	Playlist(ctx context.Context, id string) (*api.Playlist, error)
	Search(ctx context.Context, q string) (*api.SearchResult, error)
	SetToken(token string)
}

// Favorites is the liked-songs set.
type Favorites interface {
	Load(ctx context.Context) error
	Has(id string) bool
	Toggle(ctx context.Context, id string) (bool, string, error)
	Clear()
}

// Sessions persists the playback session under a user key.
type Sessions interface {
	SetKey(key string)
	Switch(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
}

// Announcer shows a desktop "now playing" notice.
type Announcer interface {
	Track(title, artist string) error
	Dismiss() error
}
