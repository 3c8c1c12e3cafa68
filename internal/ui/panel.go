package ui

import (
	"strings"

	"github.com/llehouerou/mymusic/internal/ui/render"
	"github.com/llehouerou/mymusic/internal/ui/styles"
)

// RenderPanel draws a bordered panel with a title, a separator and the
// given rows, padded to fill width x height.
func RenderPanel(title string, rows []string, width, height int, focused bool) string {
	innerW := max(width-BorderHeight, 0)
	innerH := max(height-BorderHeight, 0)

	lines := make([]string, 0, innerH)
	lines = append(lines, styles.T().S().Title.Render(render.Truncate(title, innerW)))
	lines = append(lines, styles.T().S().Subtle.Render(render.Separator(innerW)))
	lines = append(lines, rows...)
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}

	return styles.PanelStyle(focused).
		Width(innerW).
		Height(innerH).
		Render(strings.Join(lines, "\n"))
}
