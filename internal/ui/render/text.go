// Package render provides text layout helpers for the TUI.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters and invalid UTF-8 from server-provided
// text (titles, artist names) and turns non-breaking spaces into spaces.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == unicode.ReplacementChar:
			return -1
		case r == '\u00a0' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, strings.ToValidUTF8(s, ""))
}

// Truncate shortens s to maxWidth cells, ending with "…" when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Pad fills s with spaces up to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad returns s at exactly width cells.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row places left and right at the edges of a width-wide line, keeping at
// least one space between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator returns a horizontal rule.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// Duration formats d as m:ss, or h:mm:ss past an hour.
func Duration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
