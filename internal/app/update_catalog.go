package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mymusic/internal/api"
	"github.com/llehouerou/mymusic/internal/auth"
	"github.com/llehouerou/mymusic/internal/errmsg"
	"github.com/llehouerou/mymusic/internal/ui/songlist"
)

func (m Model) handleCatalogMsg(msg CatalogMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SongsLoadedMsg:
		return m.handleSongsLoaded(msg)

	case PlaylistsLoadedMsg:
		if msg.Err != nil {
			m.playlists.SetItems(nil)
			return m, m.apiError(errmsg.OpPlaylistsLoad, msg.Err)
		}
		m.playlists.SetItems(msg.Playlists)
		return m, nil

	case FavoritesSyncedMsg:
		if msg.Err != nil {
			m.deps.Logger.Warn("cannot load favorites", "error", msg.Err)
			if errors.Is(msg.Err, api.ErrUnauthorized) {
				return m, m.showNotice(errmsg.MsgSessionExpired, false)
			}
		}
		return m, nil

	case LikeToggledMsg:
		return m.handleLikeToggled(msg)
	}
	return m, nil
}

func (m Model) handleSongsLoaded(msg SongsLoadedMsg) (tea.Model, tea.Cmd) {
	var (
		target *songlist.Model
		op     errmsg.Op
	)
	switch msg.View {
	case ViewSongs:
		target, op = &m.songs, errmsg.OpSongsLoad
	case ViewFavorites:
		target, op = &m.favorites, errmsg.OpFavoritesLoad
	case ViewPlaylistSongs:
		target, op = &m.playlistSongs, errmsg.OpPlaylistLoad
	case ViewSearch:
		target, op = &m.searchSongs, errmsg.OpSearch
	case ViewPlaylists, ViewQueue:
		return m, nil
	}
	if target == nil {
		return m, nil
	}

	if msg.Err != nil {
		target.SetSongs(nil)
		return m, m.apiError(op, msg.Err)
	}
	if msg.Title != "" {
		target.SetTitle(msg.Title)
	}
	target.SetSongs(msg.Tracks)
	return m, nil
}

// apiError logs a failed request and shows its notice.
func (m *Model) apiError(op errmsg.Op, err error) tea.Cmd {
	m.deps.Logger.Warn("request failed", "op", string(op), "error", err)
	return m.showNotice(errmsg.API(op, err), true)
}

func (m Model) handleLikeToggled(msg LikeToggledMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.deps.Logger.Warn("cannot toggle like", "id", msg.ID, "error", msg.Err)
		return m, m.showNotice(errmsg.Like(msg.Err), true)
	}

	text := msg.Message
	if text == "" {
		text = "Removed from favorites"
		if msg.Liked {
			text = "Added to favorites"
		}
	}
	cmds := []tea.Cmd{m.showNotice(text, false)}
	if m.view == ViewFavorites {
		cmds = append(cmds, LoadFavoritesCmd(m.deps.Catalog))
	}
	return m, tea.Batch(cmds...)
}

// handleCredentialsChanged follows a login or logout done by another
// process, e.g. `mymusic logout` in a second terminal.
func (m Model) handleCredentialsChanged(msg CredentialsChangedMsg) (tea.Model, tea.Cmd) {
	watch := WatchCredentialsCmd(m.deps.Credentials)
	prevID, nextID := m.user.UserID(), msg.User.UserID()
	hadToken := m.user != nil && m.user.Token != ""
	m.user = msg.User

	if msg.User == nil || msg.User.Token == "" {
		if !hadToken {
			return m, watch
		}
		m.deps.Catalog.SetToken("")
		m.deps.Favorites.Clear()
		if m.view == ViewFavorites {
			m.setView(ViewSongs)
		}
		return m, tea.Batch(
			watch,
			ClearSessionCmd(m.deps.Sessions, auth.SessionKey(nil)),
			m.showNotice("Logged out", false),
		)
	}

	m.deps.Catalog.SetToken(msg.User.Token)
	if prevID == nextID {
		return m, watch
	}
	return m, tea.Batch(
		watch,
		SwitchSessionCmd(m.deps.Sessions, auth.SessionKey(msg.User)),
		SyncFavoritesCmd(m.deps.Favorites, m.loggedIn()),
		m.showNotice("Logged in as "+msg.User.Username, false),
	)
}

func (m Model) handleSessionSwitched(msg SessionSwitchedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.deps.Logger.Warn("session not restored", "key", msg.Key, "error", msg.Err)
		return m, nil
	}
	m.deps.Logger.Info("session switched", "key", msg.Key, "restored", msg.Restored)
	if !msg.Restored {
		return m, tea.SetWindowTitle(WindowTitleIdle)
	}
	return m, nil
}

func (m Model) handleSessionCleared(msg SessionClearedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.deps.Logger.Error("cannot clear session", "error", msg.Err)
		return m, m.showNotice(errmsg.Format(errmsg.OpSessionClear, msg.Err), true)
	}
	return m, tea.SetWindowTitle(WindowTitleIdle)
}
