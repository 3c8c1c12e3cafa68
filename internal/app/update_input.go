package app

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mymusic/internal/app/handler"
	"github.com/llehouerou/mymusic/internal/errmsg"
	"github.com/llehouerou/mymusic/internal/keymap"
	"github.com/llehouerou/mymusic/internal/playback"
	"github.com/llehouerou/mymusic/internal/ui/list"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchInput(msg)
	}

	action := m.keys.Resolve(msg.String())
	if action == "" {
		return m, nil
	}
	if m.showHelp {
		if m.help.Handle(action) {
			m.showHelp = false
		}
		return m, nil
	}

	_, cmd := handler.Chain(
		func() handler.Result { return m.handleGlobalKeys(action) },
		func() handler.Result { return m.handlePlaybackKeys(action) },
		func() handler.Result { return m.handleListKeys(action) },
	)
	return m, cmd
}

func (m *Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive // other keys go to the input
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.setView(m.view)
		m.resize()
		return *m, nil

	case tea.KeyEnter:
		q := strings.TrimSpace(m.search.Value())
		m.searching = false
		m.search.Blur()
		m.setView(ViewSearch)
		m.resize()
		if q == "" {
			return *m, nil
		}
		m.searchSongs.SetLoading(true)
		m.searchSongs.Reset()
		return *m, SearchCmd(m.deps.Catalog, q)

	case tea.KeyCtrlC:
		return *m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return *m, cmd
}

func (m *Model) handleGlobalKeys(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // global actions only
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)

	case keymap.ActionSearch:
		m.searching = true
		m.setView(ViewSearch)
		m.resize()
		return handler.Handled(m.search.Focus())

	case keymap.ActionBack:
		switch m.view { //nolint:exhaustive // other views have nowhere to go back to
		case ViewPlaylistSongs:
			m.setView(ViewPlaylists)
		case ViewSearch, ViewQueue:
			m.setView(ViewSongs)
		}
		return handler.HandledNoCmd

	case keymap.ActionReload:
		return handler.Handled(m.reloadView())

	case keymap.ActionHelp:
		m.showHelp = true
		return handler.HandledNoCmd

	case keymap.ActionViewSongs:
		m.setView(ViewSongs)
		return handler.HandledNoCmd

	case keymap.ActionViewFavorites:
		if !m.loggedIn() {
			return handler.Handled(m.showNotice(m.loginNotice(errmsg.MsgLoginForFavs), false))
		}
		m.setView(ViewFavorites)
		return handler.Handled(m.reloadView())

	case keymap.ActionViewPlaylists:
		m.setView(ViewPlaylists)
		return handler.Handled(m.reloadView())

	case keymap.ActionViewQueue:
		m.setView(ViewQueue)
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

// loginNotice returns the expired-session notice when a stale token is
// stored, fallback otherwise.
func (m Model) loginNotice(fallback string) string {
	if m.user != nil && m.user.TokenExpired(m.deps.Now()) {
		return errmsg.MsgSessionExpired
	}
	return fallback
}

func (m *Model) reloadView() tea.Cmd {
	switch m.view {
	case ViewSongs:
		m.songs.SetLoading(true)
		return LoadSongsCmd(m.deps.Catalog)
	case ViewFavorites:
		m.favorites.SetLoading(true)
		return LoadFavoritesCmd(m.deps.Catalog)
	case ViewPlaylists:
		return LoadPlaylistsCmd(m.deps.Catalog)
	case ViewPlaylistSongs:
		if pl, ok := m.playlists.Selected(); ok {
			m.playlistSongs.SetLoading(true)
			return LoadPlaylistCmd(m.deps.Catalog, pl.ID)
		}
	case ViewSearch:
		if q := strings.TrimSpace(m.search.Value()); q != "" {
			m.searchSongs.SetLoading(true)
			return SearchCmd(m.deps.Catalog, q)
		}
	case ViewQueue:
		m.queue.Sync(m.deps.Service)
	}
	return nil
}

func (m *Model) handlePlaybackKeys(a keymap.Action) handler.Result {
	svc := m.deps.Service
	switch a { //nolint:exhaustive // playback actions only
	case keymap.ActionPlayPause:
		return handler.Handled(m.playbackResult(svc.Toggle()))
	case keymap.ActionStop:
		return handler.Handled(m.playbackResult(svc.Stop()))
	case keymap.ActionNextTrack:
		return handler.Handled(m.playbackResult(svc.Next()))
	case keymap.ActionPrevTrack:
		return handler.Handled(m.playbackResult(svc.Previous()))
	case keymap.ActionSeekForward:
		return handler.Handled(m.playbackResult(svc.Seek(seekStep)))
	case keymap.ActionSeekBack:
		return handler.Handled(m.playbackResult(svc.Seek(-seekStep)))

	case keymap.ActionCycleRepeat:
		mode := svc.CycleRepeatMode()
		return handler.Handled(m.showNotice("Repeat: "+mode.String(), false))

	case keymap.ActionToggleShuffle:
		text := "Shuffle off"
		if svc.ToggleShuffle() {
			text = "Shuffle on"
		}
		return handler.Handled(m.showNotice(text, false))

	case keymap.ActionVolumeUp:
		svc.SetVolume(min(svc.Volume()+volumeStep, 1))
		return handler.HandledNoCmd
	case keymap.ActionVolumeDown:
		svc.SetVolume(max(svc.Volume()-volumeStep, 0))
		return handler.HandledNoCmd
	case keymap.ActionToggleMute:
		svc.ToggleMute()
		return handler.HandledNoCmd

	case keymap.ActionLikePlaying:
		t := svc.CurrentTrack()
		if t == nil {
			return handler.Handled(m.showNotice(errmsg.MsgSelectSong, false))
		}
		return handler.Handled(m.toggleLike(t.ID))
	}
	return handler.NotHandled
}

// playbackResult turns a control error into a notice. Load failures
// arrive separately as ServiceErrorMsg.
func (m *Model) playbackResult(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	if errors.Is(err, playback.ErrNothingToPlay) || errors.Is(err, playback.ErrEmptyQueue) {
		return m.showNotice(errmsg.MsgSelectSong, false)
	}
	m.deps.Logger.Warn("playback control failed", "error", err)
	return m.showNotice(errmsg.Format(errmsg.OpPlaybackStart, err), true)
}

func (m *Model) toggleLike(id string) tea.Cmd {
	if !m.loggedIn() {
		return m.showNotice(m.loginNotice(errmsg.MsgLoginToLike), false)
	}
	if id == "" {
		return m.showNotice(errmsg.MsgSelectSong, false)
	}
	return ToggleLikeCmd(m.deps.Favorites, id)
}

func (m *Model) handleListKeys(a keymap.Action) handler.Result {
	if m.view == ViewQueue {
		return m.handleQueueKeys(a)
	}
	if m.view == ViewPlaylists {
		res := m.playlists.Handle(a)
		if res.Action != list.ActionSelect {
			return handler.Result{Handled: res.Action != list.ActionNone}
		}
		pl, _ := m.playlists.Selected()
		m.playlistSongs.SetTitle(pl.Title)
		m.playlistSongs.SetLoading(true)
		m.playlistSongs.Reset()
		m.setView(ViewPlaylistSongs)
		return handler.Handled(LoadPlaylistCmd(m.deps.Catalog, pl.ID))
	}

	songs := m.activeSongs()
	if songs == nil {
		return handler.NotHandled
	}
	res := songs.Handle(a)
	switch res.Action {
	case list.ActionSelect:
		track, _ := songs.Selected()
		err := m.deps.Service.StartPlayback(track, songs.Items())
		return handler.Handled(m.playbackResult(err))
	case list.ActionLike:
		track, _ := songs.Selected()
		return handler.Handled(m.toggleLike(track.ID))
	case list.ActionMoved:
		return handler.HandledNoCmd
	case list.ActionNone:
	}
	return handler.NotHandled
}

func (m *Model) handleQueueKeys(a keymap.Action) handler.Result {
	res := m.queue.Handle(a)
	switch res.Action {
	case list.ActionSelect:
		return handler.Handled(m.playbackResult(m.deps.Service.PlayIndex(res.Index)))
	case list.ActionLike:
		track, _ := m.queue.Selected()
		return handler.Handled(m.toggleLike(track.ID))
	case list.ActionMoved:
		return handler.HandledNoCmd
	case list.ActionNone:
	}
	return handler.NotHandled
}
