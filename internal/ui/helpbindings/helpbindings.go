// Package helpbindings renders the scrollable key binding help shown over
// the player.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/mymusic/internal/keymap"
	"github.com/llehouerou/mymusic/internal/ui"
	"github.com/llehouerou/mymusic/internal/ui/render"
	"github.com/llehouerou/mymusic/internal/ui/styles"
)

// categories lists binding contexts in display order.
var categories = []struct{ context, label string }{
	{"global", "Global"},
	{"playback", "Playback"},
	{"list", "Lists"},
}

// chrome is the box border, padding, title and footer rows.
const chrome = 8

// Model holds the help content and its scroll position. Its size is the
// whole screen; the box fits inside it.
type Model struct {
	ui.Base
	lines  []string
	offset int
}

// New builds the help from bindings, grouped by context.
func New(bindings []keymap.Binding) Model {
	return Model{lines: buildLines(bindings)}
}

func buildLines(bindings []keymap.Binding) []string {
	st := styles.T().S()

	keyW := 0
	for _, b := range bindings {
		keyW = max(keyW, lipgloss.Width(keyLabel(b)))
	}

	var lines []string
	for _, c := range categories {
		var group []keymap.Binding
		for _, b := range bindings {
			if b.Context == c.context {
				group = append(group, b)
			}
		}
		if len(group) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			st.Title.Render(c.label),
			st.Subtle.Render(render.Separator(keyW+20)),
		)
		for _, b := range group {
			lines = append(lines, st.Active.Render(render.Pad(keyLabel(b), keyW))+"  "+st.Base.Render(b.Description))
		}
	}
	return lines
}

// keyLabel joins the keys of b, naming the space bar.
func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}

// Offset returns the first visible line.
func (m Model) Offset() int { return m.offset }

func (m Model) visible() int {
	return max(m.Height()-chrome, 3)
}

func (m Model) maxOffset() int {
	return max(len(m.lines)-m.visible(), 0)
}

// Handle scrolls the help. It reports true when the help should close.
func (m *Model) Handle(a keymap.Action) bool {
	switch a { //nolint:exhaustive // everything else is ignored while open
	case keymap.ActionHelp, keymap.ActionBack, keymap.ActionQuit:
		m.offset = 0
		return true
	case keymap.ActionMoveDown:
		m.offset = min(m.offset+1, m.maxOffset())
	case keymap.ActionMoveUp:
		m.offset = max(m.offset-1, 0)
	case keymap.ActionPageDown:
		m.offset = min(m.offset+m.visible()/2, m.maxOffset())
	case keymap.ActionPageUp:
		m.offset = max(m.offset-m.visible()/2, 0)
	case keymap.ActionJumpStart:
		m.offset = 0
	case keymap.ActionJumpEnd:
		m.offset = m.maxOffset()
	}
	return false
}

// View renders the bordered help box.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	st := styles.T().S()

	end := min(m.offset+m.visible(), len(m.lines))
	body := m.lines[min(m.offset, end):end]

	footer := "?/esc close"
	if m.maxOffset() > 0 {
		footer = "j/k scroll · " + footer
	}

	content := st.Title.Render("Help") + "\n\n" +
		strings.Join(body, "\n") + "\n\n" +
		st.Subtle.Render(footer)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(1, 2).
		MaxWidth(m.Width()).
		Render(content)
}
