// Package overlay draws a box over an already rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place centers box over base, a screen of width x height cells. Base
// lines keep their styling on both sides of the box.
func Place(base, box string, width, height int) string {
	boxLines := strings.Split(box, "\n")
	boxW := 0
	for _, l := range boxLines {
		boxW = max(boxW, ansi.StringWidth(l))
	}
	top := max((height-len(boxLines))/2, 0)
	left := max((width-boxW)/2, 0)

	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, l := range boxLines {
		row := top + i
		if row >= len(lines) {
			break
		}
		lines[row] = splice(lines[row], l, left, width)
	}
	return strings.Join(lines, "\n")
}

// splice writes over into line starting at column col.
func splice(line, over string, col, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}

	// A wide rune cut at either edge leaves a short prefix or suffix.
	prefix := ansi.Truncate(line, col, "")
	if w := ansi.StringWidth(prefix); w < col {
		prefix += strings.Repeat(" ", col-w)
	}
	out := prefix + ansi.ResetStyle + over + ansi.ResetStyle

	end := col + ansi.StringWidth(over)
	if end < width {
		suffix := ansi.Cut(line, end, width)
		if w := ansi.StringWidth(suffix); w < width-end {
			suffix = strings.Repeat(" ", width-end-w) + suffix
		}
		out += suffix
	}
	return out
}
