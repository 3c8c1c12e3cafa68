// Package app contains the bubbletea model of the terminal player.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mymusic/internal/api"
	"github.com/llehouerou/mymusic/internal/auth"
	"github.com/llehouerou/mymusic/internal/playback"
	"github.com/llehouerou/mymusic/internal/playlist"
)

// Message category interfaces for type-based routing in Update().
// Messages from other packages cannot implement these and are matched
// directly in the Update() switch.

// PlaybackMessage is implemented by messages about audio playback.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// CatalogMessage is implemented by results of backend requests.
type CatalogMessage interface {
	tea.Msg
	catalogMessage()
}

// TickMsg refreshes the progress display while playing.
type TickMsg time.Time

func (TickMsg) playbackMessage() {}

// ServiceStateChangedMsg mirrors playback.StateChange.
type ServiceStateChangedMsg struct {
	Previous playback.State
	Current  playback.State
}

func (ServiceStateChangedMsg) playbackMessage() {}

// ServiceTrackChangedMsg mirrors playback.TrackChange.
type ServiceTrackChangedMsg struct {
	Current *playlist.Track
	Index   int
}

func (ServiceTrackChangedMsg) playbackMessage() {}

// ServiceQueueChangedMsg is sent when the queue is replaced or reordered.
type ServiceQueueChangedMsg struct {
	Len   int
	Index int
}

func (ServiceQueueChangedMsg) playbackMessage() {}

// ServiceModeChangedMsg is sent when shuffle or repeat changes.
type ServiceModeChangedMsg struct {
	Repeat  playback.RepeatMode
	Shuffle bool
}

func (ServiceModeChangedMsg) playbackMessage() {}

// ServiceVolumeChangedMsg is sent when volume or mute changes.
type ServiceVolumeChangedMsg struct {
	Level float64
	Muted bool
}

func (ServiceVolumeChangedMsg) playbackMessage() {}

// ServicePositionMsg is sent after a seek.
type ServicePositionMsg struct {
	Position time.Duration
}

func (ServicePositionMsg) playbackMessage() {}

// ServiceIdleMsg is sent when the queue ran out and playback stopped.
type ServiceIdleMsg struct{}

func (ServiceIdleMsg) playbackMessage() {}

// ServiceErrorMsg is sent when a track cannot be played.
type ServiceErrorMsg struct {
	Operation string
	Path      string
	Err       error
}

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent once the service subscription ends.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}

// SongsLoadedMsg carries the songs of one view.
type SongsLoadedMsg struct {
	View   View
	Title  string // panel title, empty keeps the current one
	Tracks []playlist.Track
	Err    error
}

func (SongsLoadedMsg) catalogMessage() {}

// PlaylistsLoadedMsg carries the playlist index.
type PlaylistsLoadedMsg struct {
	Playlists []api.Playlist
	Err       error
}

func (PlaylistsLoadedMsg) catalogMessage() {}

// FavoritesSyncedMsg is sent after the liked set was fetched.
type FavoritesSyncedMsg struct {
	Err error
}

func (FavoritesSyncedMsg) catalogMessage() {}

// LikeToggledMsg is the outcome of a like toggle.
type LikeToggledMsg struct {
	ID      string
	Liked   bool
	Message string
	Err     error
}

func (LikeToggledMsg) catalogMessage() {}

// NoticeExpiredMsg clears the status line. Version ignores stale timers
// when a newer notice replaced the one that scheduled it.
type NoticeExpiredMsg struct {
	Version int
}

// CredentialsChangedMsg is sent when the stored credentials change outside
// the running client. User is nil after a logout.
type CredentialsChangedMsg struct {
	User *auth.UserInfo
}

// SessionSwitchedMsg reports the outcome of loading another user's session.
type SessionSwitchedMsg struct {
	Key      string
	Restored bool
	Err      error
}

// SessionClearedMsg reports the outcome of clearing the saved session.
type SessionClearedMsg struct {
	Err error
}
