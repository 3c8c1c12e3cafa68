package songlist

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/mymusic/internal/icons"
	"github.com/llehouerou/mymusic/internal/keymap"
	"github.com/llehouerou/mymusic/internal/playlist"
	"github.com/llehouerou/mymusic/internal/ui/list"
)

func tracks() []playlist.Track {
	return []playlist.Track{
		{ID: "1", Title: "First", ArtistName: "Band", AudioSrc: "/a.mp3"},
		{ID: "2", Title: "Second", ArtistName: "Other", AudioSrc: "/b.mp3"},
	}
}

func TestView_Rows(t *testing.T) {
	icons.Init("none")
	m := New("All Songs", "No songs")
	m.SetSize(60, 10)
	m.SetFocused(true)
	m.SetSongs(tracks())

	out := m.View("/b.mp3", func(id string) bool { return id == "1" })
	assert.Contains(t, out, "All Songs (2)")
	assert.Contains(t, out, "First")
	assert.Contains(t, out, "Other")

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 10)
	for _, l := range lines {
		assert.Equal(t, 60, lipgloss.Width(l))
	}
	assert.True(t, strings.Contains(lines[4], ">"), "playing marker on second row: %q", lines[4])
	assert.True(t, strings.Contains(lines[3], "*"), "liked marker on first row: %q", lines[3])
}

func TestView_EmptyAndLoading(t *testing.T) {
	m := New("Favorites", "No favorites yet")
	m.SetSize(40, 6)

	assert.Contains(t, m.View("", nil), "No favorites yet")

	m.SetLoading(true)
	assert.Contains(t, m.View("", nil), "Loading")

	m.SetSongs(tracks())
	assert.NotContains(t, m.View("", nil), "Loading")
}

func TestView_ZeroSize(t *testing.T) {
	m := New("x", "y")
	assert.Empty(t, m.View("", nil))
}

func TestHandle_Select(t *testing.T) {
	m := New("All Songs", "")
	m.SetSize(60, 10)
	m.SetFocused(true)
	m.SetSongs(tracks())

	m.Handle(keymap.ActionMoveDown)
	res := m.Handle(keymap.ActionSelect)
	assert.Equal(t, list.ActionSelect, res.Action)

	sel, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, "Second", sel.Title)
}
