package helpbindings

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/mymusic/internal/keymap"
)

func newHelp(w, h int) Model {
	m := New(keymap.All)
	m.SetSize(w, h)
	return m
}

func TestHandle_Closes(t *testing.T) {
	for _, a := range []keymap.Action{keymap.ActionHelp, keymap.ActionBack, keymap.ActionQuit} {
		t.Run(string(a), func(t *testing.T) {
			m := newHelp(80, 20)
			m.Handle(keymap.ActionMoveDown)
			assert.True(t, m.Handle(a))
			assert.Equal(t, 0, m.Offset(), "scroll resets on close")
		})
	}
}

func TestHandle_Scroll(t *testing.T) {
	m := newHelp(80, 20)

	assert.False(t, m.Handle(keymap.ActionMoveDown))
	assert.False(t, m.Handle(keymap.ActionMoveDown))
	assert.Equal(t, 2, m.Offset())

	m.Handle(keymap.ActionMoveUp)
	assert.Equal(t, 1, m.Offset())

	m.Handle(keymap.ActionJumpEnd)
	end := m.Offset()
	assert.Positive(t, end)
	m.Handle(keymap.ActionMoveDown)
	assert.Equal(t, end, m.Offset(), "no scrolling past the end")

	m.Handle(keymap.ActionJumpStart)
	assert.Equal(t, 0, m.Offset())
	m.Handle(keymap.ActionMoveUp)
	assert.Equal(t, 0, m.Offset())
}

func TestHandle_NoScrollWhenEverythingFits(t *testing.T) {
	m := newHelp(80, 200)
	m.Handle(keymap.ActionMoveDown)
	assert.Equal(t, 0, m.Offset())
	assert.NotContains(t, m.View(), "j/k scroll")
}

func TestView(t *testing.T) {
	m := newHelp(80, 200)
	out := m.View()

	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "Global")
	assert.Contains(t, out, "Playback")
	assert.Contains(t, out, "Lists")
	assert.Contains(t, out, "space")
	assert.Contains(t, out, "Toggle shuffle")
	assert.Contains(t, out, "?/esc close")
	for _, l := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(l), 80)
	}
}

func TestView_Scrolled(t *testing.T) {
	m := newHelp(80, 16)
	assert.Contains(t, m.View(), "j/k scroll")

	m.Handle(keymap.ActionJumpEnd)
	out := m.View()
	assert.Contains(t, out, "Like selected song")
	assert.NotContains(t, out, "Global")
}

func TestView_ZeroSize(t *testing.T) {
	assert.Empty(t, New(keymap.All).View())
}
