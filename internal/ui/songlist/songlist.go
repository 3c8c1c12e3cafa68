// Package songlist renders a browsable list of songs.
package songlist

import (
	"fmt"

	"github.com/llehouerou/mymusic/internal/icons"
	"github.com/llehouerou/mymusic/internal/keymap"
	"github.com/llehouerou/mymusic/internal/playlist"
	"github.com/llehouerou/mymusic/internal/ui"
	"github.com/llehouerou/mymusic/internal/ui/list"
	"github.com/llehouerou/mymusic/internal/ui/render"
	"github.com/llehouerou/mymusic/internal/ui/styles"
)

// Model is a titled song list.
type Model struct {
	list.Model[playlist.Track]
	title   string
	loading bool
	empty   string
}

// New creates a song list. empty is shown when there are no songs.
func New(title, empty string) Model {
	return Model{Model: list.New[playlist.Track](), title: title, empty: empty}
}

// SetTitle changes the panel title.
func (m *Model) SetTitle(title string) { m.title = title }

// Title returns the panel title.
func (m Model) Title() string { return m.title }

// SetLoading toggles the loading placeholder.
func (m *Model) SetLoading(loading bool) { m.loading = loading }

// SetSongs replaces the list content.
func (m *Model) SetSongs(tracks []playlist.Track) {
	m.loading = false
	m.SetItems(tracks)
}

// Handle applies a key action, see list.Model.Handle.
func (m *Model) Handle(a keymap.Action) list.Result {
	return m.Model.Handle(a)
}

// View renders the list. playingSrc marks the current track and liked
// reports favorites.
func (m Model) View(playingSrc string, liked func(id string) bool) string {
	w, h := m.Width(), m.Height()
	if w == 0 || h == 0 {
		return ""
	}
	innerW := max(w-ui.BorderHeight, 0)
	st := styles.T().S()

	var rows []string
	switch {
	case m.loading:
		rows = []string{st.Muted.Render("Loading…")}
	case m.Len() == 0:
		rows = []string{st.Muted.Render(m.empty)}
	default:
		start, end := m.VisibleRange()
		items := m.Items()
		for i := start; i < end; i++ {
			isLiked := liked != nil && liked(items[i].ID)
			playing := playingSrc != "" && items[i].AudioSrc == playingSrc
			rows = append(rows, m.row(items[i], innerW, i == m.SelectedIndex(), playing, isLiked))
		}
	}

	title := m.title
	if m.Len() > 0 {
		title = fmt.Sprintf("%s (%d)", m.title, m.Len())
	}
	return ui.RenderPanel(title, rows, w, h, m.IsFocused())
}

func (m Model) row(t playlist.Track, width int, selected, playing, liked bool) string {
	st := styles.T().S()

	marker := "  "
	if playing {
		marker = icons.Play() + " "
	}
	heart := " "
	if liked {
		heart = icons.Favorite()
	}
	prefix := render.Pad(marker, 2) + render.Pad(heart, 2)

	artistW := min(width/3, 30)
	titleW := max(width-4-artistW-1, 0)
	line := prefix +
		render.TruncateAndPad(render.Sanitize(t.Title), titleW) + " " +
		render.TruncateAndPad(render.Sanitize(t.DisplayArtist()), artistW)

	switch {
	case selected && m.IsFocused():
		return st.Cursor.Render(line)
	case playing:
		return st.Playing.Render(line)
	case liked:
		return st.Liked.Render(line)
	}
	return st.Base.Render(line)
}
