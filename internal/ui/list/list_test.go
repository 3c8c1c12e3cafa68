package list

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/mymusic/internal/keymap"
)

func newFocused(items ...string) Model[string] {
	m := New[string]()
	m.SetSize(40, 10)
	m.SetFocused(true)
	m.SetItems(items)
	return m
}

func TestHandle_Navigation(t *testing.T) {
	m := newFocused("a", "b", "c")

	res := m.Handle(keymap.ActionMoveDown)
	assert.Equal(t, Result{Action: ActionMoved, Index: 1}, res)

	got, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, "b", got)

	m.Handle(keymap.ActionJumpEnd)
	assert.Equal(t, 2, m.SelectedIndex())
}

func TestHandle_SelectAndLike(t *testing.T) {
	m := newFocused("a", "b")
	m.Handle(keymap.ActionMoveDown)

	assert.Equal(t, Result{Action: ActionSelect, Index: 1}, m.Handle(keymap.ActionSelect))
	assert.Equal(t, Result{Action: ActionLike, Index: 1}, m.Handle(keymap.ActionLikeSelected))
	assert.Equal(t, Result{Index: -1}, m.Handle(keymap.ActionQuit))
}

func TestHandle_EmptyOrUnfocused(t *testing.T) {
	empty := newFocused()
	assert.Equal(t, ActionNone, empty.Handle(keymap.ActionSelect).Action)
	_, ok := empty.Selected()
	assert.False(t, ok)

	m := newFocused("a", "b")
	m.SetFocused(false)
	assert.Equal(t, ActionNone, m.Handle(keymap.ActionMoveDown).Action)
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestSetItems_ClampsCursor(t *testing.T) {
	m := newFocused("a", "b", "c", "d")
	m.Handle(keymap.ActionJumpEnd)
	m.SetItems([]string{"x"})
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestVisibleRange(t *testing.T) {
	m := newFocused("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	start, end := m.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 6, end) // height 10 minus panel overhead
}
