// Package cursor tracks the selected row and scroll offset of a list.
package cursor

import "github.com/llehouerou/mymusic/internal/keymap"

// Cursor is a position in a list plus the first visible row. The list
// length and viewport height are passed in on each call since both change
// as data loads and the terminal resizes.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above and below pos
}

// New creates a cursor that keeps margin rows of context around it.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected row.
func (c Cursor) Pos() int { return c.pos }

// Offset returns the first visible row.
func (c Cursor) Offset() int { return c.offset }

// Move moves by delta rows, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump selects row pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.scroll(listLen, height)
}

// Reset returns to the top of the list.
func (c *Cursor) Reset() {
	c.pos, c.offset = 0, 0
}

// Clamp pulls the cursor back inside a list that shrank.
func (c *Cursor) Clamp(listLen, height int) {
	if listLen == 0 {
		c.Reset()
		return
	}
	c.pos = clamp(c.pos, listLen-1)
	c.scroll(listLen, height)
}

// VisibleRange returns the [start, end) rows to draw.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// Navigate applies a list navigation action and reports whether the
// action was one.
func (c *Cursor) Navigate(a keymap.Action, listLen, height int) bool {
	switch a { //nolint:exhaustive // only navigation actions
	case keymap.ActionMoveDown:
		c.Move(1, listLen, height)
	case keymap.ActionMoveUp:
		c.Move(-1, listLen, height)
	case keymap.ActionJumpStart:
		c.Reset()
	case keymap.ActionJumpEnd:
		c.Jump(listLen-1, listLen, height)
	case keymap.ActionPageDown:
		c.Move(max(height/2, 1), listLen, height)
	case keymap.ActionPageUp:
		c.Move(-max(height/2, 1), listLen, height)
	default:
		return false
	}
	return true
}

func (c *Cursor) scroll(listLen, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}
