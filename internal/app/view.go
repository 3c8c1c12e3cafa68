package app

import (
	"fmt"
	"strings"

	"github.com/llehouerou/mymusic/internal/icons"
	"github.com/llehouerou/mymusic/internal/ui"
	"github.com/llehouerou/mymusic/internal/ui/headerbar"
	"github.com/llehouerou/mymusic/internal/ui/overlay"
	"github.com/llehouerou/mymusic/internal/ui/playerbar"
	"github.com/llehouerou/mymusic/internal/ui/render"
	"github.com/llehouerou/mymusic/internal/ui/styles"
)

// View renders the model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	username := ""
	if m.loggedIn() {
		username = m.user.Username
	}

	parts := []string{headerbar.Render(m.headerView(), username, m.width)}
	if m.searching {
		parts = append(parts, " "+m.search.View())
	}
	parts = append(parts,
		m.renderBody(),
		m.renderStatus(),
		playerbar.Render(playerbar.NewState(m.deps.Service, m.deps.Favorites.Has), m.width),
	)
	screen := strings.Join(parts, "\n")
	if m.showHelp {
		return overlay.Place(screen, m.help.View(), m.width, m.height)
	}
	return screen
}

func (m Model) headerView() string {
	if m.view == ViewPlaylistSongs {
		return string(ViewPlaylists)
	}
	return string(m.view)
}

func (m Model) renderBody() string {
	switch m.view { //nolint:exhaustive // song views share the default
	case ViewPlaylists:
		return m.renderPlaylists()
	case ViewQueue:
		return m.queue.View(m.deps.Favorites.Has)
	}

	playing := ""
	if t := m.deps.Service.CurrentTrack(); t != nil {
		playing = t.AudioSrc
	}
	return m.activeSongs().View(playing, m.deps.Favorites.Has)
}

func (m Model) renderPlaylists() string {
	w, h := m.playlists.Width(), m.playlists.Height()
	if w == 0 || h == 0 {
		return ""
	}
	st := styles.T().S()
	innerW := max(w-ui.BorderHeight, 0)

	var rows []string
	if m.playlists.Len() == 0 {
		rows = append(rows, st.Muted.Render("No playlists"))
	}
	start, end := m.playlists.VisibleRange()
	items := m.playlists.Items()
	for i := start; i < end; i++ {
		pl := items[i]
		count := fmt.Sprintf("%d songs", len(pl.Songs))
		name := icons.FormatPlaylist(render.Sanitize(pl.Title))
		line := render.Row(
			render.Truncate(name, max(innerW-len(count)-1, 0)),
			count,
			innerW,
		)
		if i == m.playlists.SelectedIndex() {
			rows = append(rows, st.Cursor.Render(line))
			continue
		}
		rows = append(rows, st.Base.Render(line))
	}
	return ui.RenderPanel(fmt.Sprintf("Playlists (%d)", m.playlists.Len()), rows, w, h, true)
}

func (m Model) renderStatus() string {
	st := styles.T().S()
	if m.notice == "" {
		return render.Pad("", m.width)
	}
	text := render.TruncateAndPad(" "+m.notice, m.width)
	if m.noticeIsError {
		return st.Error.Render(text)
	}
	return st.Warning.Render(text)
}
