package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mymusic/internal/errmsg"
	"github.com/llehouerou/mymusic/internal/playback"
	"github.com/llehouerou/mymusic/internal/player"
)

// handlePlaybackMsg routes playback service messages.
func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.deps.Service.IsPlaying() {
			return m, TickCmd()
		}
		return m, nil

	case ServiceStateChangedMsg:
		return m.handleServiceStateChanged(msg)

	case ServiceTrackChangedMsg:
		return m.handleServiceTrackChanged(msg)

	case ServiceIdleMsg:
		m.queue.Sync(m.deps.Service)
		cmds := []tea.Cmd{m.WatchServiceEvents(), tea.SetWindowTitle(WindowTitleIdle)}
		if m.deps.Announcer != nil {
			_ = m.deps.Announcer.Dismiss()
		}
		return m, tea.Batch(cmds...)

	case ServiceErrorMsg:
		return m.handleServiceError(msg)

	case ServiceClosedMsg:
		return m, nil

	case ServiceQueueChangedMsg, ServiceModeChangedMsg:
		m.queue.Sync(m.deps.Service)
		return m, m.WatchServiceEvents()

	case ServiceVolumeChangedMsg, ServicePositionMsg:
		// The player bar reads the service on every render.
		return m, m.WatchServiceEvents()
	}
	return m, nil
}

func (m Model) handleServiceStateChanged(msg ServiceStateChangedMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.WatchServiceEvents(), tea.SetWindowTitle(m.windowTitle())}
	if msg.Current == playback.StatePlaying && msg.Previous != playback.StatePlaying {
		cmds = append(cmds, TickCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleServiceTrackChanged(msg ServiceTrackChangedMsg) (tea.Model, tea.Cmd) {
	m.queue.Sync(m.deps.Service)
	cmds := []tea.Cmd{m.WatchServiceEvents(), tea.SetWindowTitle(m.windowTitle())}
	if msg.Current == nil {
		if m.deps.Announcer != nil {
			_ = m.deps.Announcer.Dismiss()
		}
		return m, tea.Batch(cmds...)
	}
	cmds = append(cmds, AnnounceCmd(m.deps.Announcer, msg.Current.Title, msg.Current.DisplayArtist()))
	return m, tea.Batch(cmds...)
}

func (m Model) handleServiceError(msg ServiceErrorMsg) (tea.Model, tea.Cmd) {
	watch := m.WatchServiceEvents()
	if errors.Is(msg.Err, player.ErrOutputBlocked) {
		m.deps.Logger.Warn("audio output blocked, staying paused", "operation", msg.Operation)
		return m, watch
	}
	m.deps.Logger.Error("playback failed", "operation", msg.Operation, "src", msg.Path, "error", msg.Err)

	title := ""
	if t := m.deps.Service.CurrentTrack(); t != nil {
		title = t.Title
	}
	return m, tea.Batch(watch, m.showNotice(errmsg.Playback(title, msg.Err), true))
}
