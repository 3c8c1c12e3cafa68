// Package list provides a generic scrollable list component.
package list

import (
	"github.com/llehouerou/mymusic/internal/keymap"
	"github.com/llehouerou/mymusic/internal/ui"
	"github.com/llehouerou/mymusic/internal/ui/cursor"
)

// Action is what a key did to the list.
type Action int

const (
	ActionNone Action = iota
	ActionMoved
	ActionSelect
	ActionLike
)

// Result tells the parent what happened and to which row.
type Result struct {
	Action Action
	Index  int // -1 when no row applies
}

// Model is a focused, sized list of items. Rendering is left to the owner,
// which draws the rows returned by VisibleRange.
type Model[T any] struct {
	ui.Base
	items  []T
	cursor cursor.Cursor
}

// New creates an empty list.
func New[T any]() Model[T] {
	return Model[T]{cursor: cursor.New(ui.ScrollMargin)}
}

// SetItems replaces the items, keeping the cursor in range.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.Clamp(len(items), m.ListHeight())
}

// Reset moves the cursor back to the first row.
func (m *Model[T]) Reset() {
	m.cursor.Reset()
}

// Items returns the current items.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor.
func (m Model[T]) Selected() (T, bool) {
	if m.cursor.Pos() >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// Select moves the cursor to row i, clamped to the list.
func (m *Model[T]) Select(i int) {
	m.cursor.Jump(i, len(m.items), m.ListHeight())
}

// SelectedIndex returns the cursor row.
func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// VisibleRange returns the [start, end) rows that fit the panel.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.ListHeight())
}

// Handle applies a key action. Unfocused lists ignore everything.
func (m *Model[T]) Handle(a keymap.Action) Result {
	none := Result{Index: -1}
	if !m.IsFocused() {
		return none
	}
	if m.cursor.Navigate(a, len(m.items), m.ListHeight()) {
		return Result{Action: ActionMoved, Index: m.cursor.Pos()}
	}
	if len(m.items) == 0 {
		return none
	}
	switch a { //nolint:exhaustive // only row actions
	case keymap.ActionSelect:
		return Result{Action: ActionSelect, Index: m.cursor.Pos()}
	case keymap.ActionLikeSelected:
		return Result{Action: ActionLike, Index: m.cursor.Pos()}
	}
	return none
}
