package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mymusic/internal/api"
	"github.com/llehouerou/mymusic/internal/auth"
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// NoticeTimeoutCmd clears the notice of the given version after 3 seconds.
func NoticeTimeoutCmd(version int) tea.Cmd {
	return tea.Tick(noticeTimeout, func(_ time.Time) tea.Msg {
		return NoticeExpiredMsg{Version: version}
	})
}

// waitForChannel creates a command that waits for one value from ch.
// onResult gets ok=false once the channel is closed.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok := <-ch
		return onResult(v, ok)
	}
}

// WatchServiceEvents waits for the next playback service event and
// converts it to a message. Each handler re-arms it.
func (m Model) WatchServiceEvents() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg{Previous: e.Previous, Current: e.Current}
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg{Current: e.Current, Index: e.Index}
		case e := <-sub.QueueChanged:
			return ServiceQueueChangedMsg{Len: len(e.Tracks), Index: e.Index}
		case e := <-sub.ModeChanged:
			return ServiceModeChangedMsg{Repeat: e.RepeatMode, Shuffle: e.Shuffle}
		case e := <-sub.VolumeChanged:
			return ServiceVolumeChangedMsg{Level: e.Level, Muted: e.Muted}
		case e := <-sub.PositionChanged:
			return ServicePositionMsg{Position: e.Position}
		case <-sub.Idle:
			return ServiceIdleMsg{}
		case e := <-sub.Error:
			return ServiceErrorMsg{Operation: e.Operation, Path: e.Path, Err: e.Err}
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// WatchCredentialsCmd waits for the next credentials change. A closed
// channel stops the watch.
func WatchCredentialsCmd(ch <-chan *auth.UserInfo) tea.Cmd {
	return waitForChannel(ch, func(u *auth.UserInfo, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return CredentialsChangedMsg{User: u}
	})
}

// LoadSongsCmd fetches all songs.
func LoadSongsCmd(c Catalog) tea.Cmd {
	return func() tea.Msg {
		songs, err := c.Songs(context.Background())
		return SongsLoadedMsg{View: ViewSongs, Tracks: api.Tracks(songs), Err: err}
	}
}

// LoadFavoritesCmd fetches the user's liked songs.
func LoadFavoritesCmd(c Catalog) tea.Cmd {
	return func() tea.Msg {
		songs, err := c.Favorites(context.Background())
		return SongsLoadedMsg{View: ViewFavorites, Tracks: api.Tracks(songs), Err: err}
	}
}

// LoadPlaylistsCmd fetches the playlist index.
func LoadPlaylistsCmd(c Catalog) tea.Cmd {
	return func() tea.Msg {
		pls, err := c.Playlists(context.Background())
		return PlaylistsLoadedMsg{Playlists: pls, Err: err}
	}
}

// LoadPlaylistCmd fetches one playlist with its songs.
func LoadPlaylistCmd(c Catalog, id string) tea.Cmd {
	return func() tea.Msg {
		pl, err := c.Playlist(context.Background(), id)
		if err != nil {
			return SongsLoadedMsg{View: ViewPlaylistSongs, Err: err}
		}
		return SongsLoadedMsg{View: ViewPlaylistSongs, Title: pl.Title, Tracks: api.Tracks(pl.Songs)}
	}
}

// SearchCmd runs a search. Only matching songs are listed.
func SearchCmd(c Catalog, q string) tea.Cmd {
	return func() tea.Msg {
		res, err := c.Search(context.Background(), q)
		if err != nil {
			return SongsLoadedMsg{View: ViewSearch, Err: err}
		}
		return SongsLoadedMsg{View: ViewSearch, Title: "Search: " + q, Tracks: api.Tracks(res.Songs)}
	}
}

// SyncFavoritesCmd loads the liked set when a user is signed in.
func SyncFavoritesCmd(f Favorites, loggedIn bool) tea.Cmd {
	if !loggedIn {
		return nil
	}
	return func() tea.Msg {
		return FavoritesSyncedMsg{Err: f.Load(context.Background())}
	}
}

// ToggleLikeCmd likes or unlikes a song.
func ToggleLikeCmd(f Favorites, id string) tea.Cmd {
	return func() tea.Msg {
		liked, message, err := f.Toggle(context.Background(), id)
		return LikeToggledMsg{ID: id, Liked: liked, Message: message, Err: err}
	}
}

// ClearSessionCmd deletes the saved session, empties the live one and
// then saves under nextKey.
func ClearSessionCmd(s Sessions, nextKey string) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		err := s.Clear(context.Background())
		s.SetKey(nextKey)
		return SessionClearedMsg{Err: err}
	}
}

// SwitchSessionCmd saves the live session and restores the one saved
// under key.
func SwitchSessionCmd(s Sessions, key string) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		restored, err := s.Switch(context.Background(), key)
		return SessionSwitchedMsg{Key: key, Restored: restored, Err: err}
	}
}

// AnnounceCmd sends the desktop notification for a new track.
func AnnounceCmd(a Announcer, title, artist string) tea.Cmd {
	if a == nil {
		return nil
	}
	return func() tea.Msg {
		_ = a.Track(title, artist)
		return nil
	}
}
