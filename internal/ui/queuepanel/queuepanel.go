// Package queuepanel shows the playing queue with the current track
// marked, and lets the user jump to any entry.
package queuepanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/mymusic/internal/icons"
	"github.com/llehouerou/mymusic/internal/keymap"
	"github.com/llehouerou/mymusic/internal/playback"
	"github.com/llehouerou/mymusic/internal/playlist"
	"github.com/llehouerou/mymusic/internal/ui"
	"github.com/llehouerou/mymusic/internal/ui/list"
	"github.com/llehouerou/mymusic/internal/ui/render"
	"github.com/llehouerou/mymusic/internal/ui/styles"
)

// Model is a read-only projection of the playback queue.
type Model struct {
	list.Model[playlist.Track]
	current int
	shuffle bool
	repeat  playback.RepeatMode
}

// New creates an empty queue panel.
func New() Model {
	return Model{Model: list.New[playlist.Track](), current: -1}
}

// Sync copies the queue and modes from the service. The cursor follows
// the playing track when it moved.
func (m *Model) Sync(svc playback.Service) {
	prev := m.current
	m.SetItems(svc.QueueTracks())
	m.current = svc.QueueCurrentIndex()
	m.shuffle = svc.Shuffle()
	m.repeat = svc.RepeatMode()
	if m.current != prev {
		m.SyncCursor()
	}
}

// SyncCursor moves the cursor to the playing track.
func (m *Model) SyncCursor() {
	if m.current >= 0 && m.current < m.Len() {
		m.Select(m.current)
	}
}

// Current returns the queue index of the playing track, -1 when empty.
func (m Model) Current() int { return m.current }

// Handle applies a key action, see list.Model.Handle.
func (m *Model) Handle(a keymap.Action) list.Result {
	return m.Model.Handle(a)
}

// View renders the panel. liked reports favorites and may be nil.
func (m Model) View(liked func(id string) bool) string {
	w, h := m.Width(), m.Height()
	if w == 0 || h == 0 {
		return ""
	}
	innerW := max(w-ui.BorderHeight, 0)
	st := styles.T().S()

	var rows []string
	if m.Len() == 0 {
		rows = []string{st.Muted.Render("Queue is empty. Pick a song to start playing.")}
	}
	start, end := m.VisibleRange()
	items := m.Items()
	for i := start; i < end; i++ {
		isLiked := liked != nil && liked(items[i].ID)
		rows = append(rows, m.row(items[i], i, innerW, isLiked))
	}

	return ui.RenderPanel(m.header(innerW), rows, w, h, m.IsFocused())
}

func (m Model) header(width int) string {
	title := fmt.Sprintf("Queue (%d/%d)", m.current+1, m.Len())
	modes := m.modeIcons()
	if modes == "" {
		return title
	}
	return render.Row(title, styles.T().S().Active.Render(modes), width)
}

func (m Model) modeIcons() string {
	var parts []string
	if m.shuffle {
		parts = append(parts, icons.Shuffle())
	}
	switch m.repeat {
	case playback.RepeatAll:
		parts = append(parts, icons.RepeatAll())
	case playback.RepeatOne:
		parts = append(parts, icons.RepeatOne())
	case playback.RepeatNone:
	}
	return strings.Join(parts, "  ")
}

func (m Model) row(t playlist.Track, idx, width int, liked bool) string {
	st := styles.T().S()

	marker := "  "
	if idx == m.current {
		marker = icons.Play() + " "
	}
	heart := " "
	if liked {
		heart = icons.Favorite()
	}
	num := fmt.Sprintf("%3d ", idx+1)
	prefix := render.Pad(marker, 2) + num + render.Pad(heart, 2)
	contentW := max(width-lipgloss.Width(prefix), 0)

	titleW := contentW / 2
	line := prefix +
		render.TruncateAndPad(render.Sanitize(t.Title), titleW) +
		render.TruncateAndPad(render.Sanitize(t.DisplayArtist()), contentW-titleW)

	cursor := idx == m.SelectedIndex() && m.IsFocused()
	switch {
	case cursor && idx == m.current:
		return st.Cursor.Inherit(st.Playing).Render(line)
	case cursor:
		return st.Cursor.Render(line)
	case idx == m.current:
		return st.Playing.Render(line)
	case idx < m.current:
		return st.Subtle.Render(line)
	}
	return st.Base.Render(line)
}
