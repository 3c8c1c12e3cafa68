package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mymusic/internal/ui"
	"github.com/llehouerou/mymusic/internal/ui/headerbar"
	"github.com/llehouerou/mymusic/internal/ui/playerbar"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case PlaybackMessage:
		return m.handlePlaybackMsg(msg)

	case CatalogMessage:
		return m.handleCatalogMsg(msg)

	case NoticeExpiredMsg:
		if msg.Version == m.noticeVersion {
			m.notice = ""
			m.noticeIsError = false
		}
		return m, nil

	case CredentialsChangedMsg:
		return m.handleCredentialsChanged(msg)

	case SessionSwitchedMsg:
		return m.handleSessionSwitched(msg)

	case SessionClearedMsg:
		return m.handleSessionCleared(msg)
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// resize lays out the panels between the header and the player bar.
func (m *Model) resize() {
	panelHeight := max(m.height-headerbar.Height-playerbar.Height-ui.StatusHeight, 0)
	if m.searching {
		panelHeight = max(panelHeight-1, 0)
	}
	m.songs.SetSize(m.width, panelHeight)
	m.favorites.SetSize(m.width, panelHeight)
	m.playlistSongs.SetSize(m.width, panelHeight)
	m.searchSongs.SetSize(m.width, panelHeight)
	m.playlists.SetSize(m.width, panelHeight)
	m.queue.SetSize(m.width, panelHeight)
	m.help.SetSize(m.width, m.height)
	m.search.Width = max(m.width-4, 10)
}

// showNotice sets the status line and schedules its removal.
func (m *Model) showNotice(text string, isError bool) tea.Cmd {
	if text == "" {
		return nil
	}
	m.noticeVersion++
	m.notice = text
	m.noticeIsError = isError
	return NoticeTimeoutCmd(m.noticeVersion)
}
