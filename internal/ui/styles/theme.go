// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // green accent, playing and liked items
	Secondary lipgloss.Color // teal, end of gradients

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style
	Liked   lipgloss.Style
	Cursor  lipgloss.Style
	Active  lipgloss.Style // enabled shuffle/repeat indicators
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#1db954"),
	Secondary: lipgloss.Color("#1ed4c8"),

	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#2a2a2a"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#1db954"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	accent := lipgloss.NewStyle().Foreground(t.Primary)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Playing: accent.Bold(true),
		Liked:   accent,
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Active:  accent.Bold(true),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
