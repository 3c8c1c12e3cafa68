package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with a horizontal color gradient, one color per
// grapheme cluster.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	colors := Blend(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(colors[i])
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// GradientBar renders width repetitions of cell blended from -> to.
func GradientBar(cell string, width int, from, to lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	return Gradient(strings.Repeat(cell, width), from, to, false)
}

// Blend returns size colors blended in HCL space from from to to.
// Non-hex colors (ANSI codes) are not blended.
func Blend(size int, from, to lipgloss.Color) []lipgloss.Color {
	if size <= 0 {
		return nil
	}
	out := make([]lipgloss.Color, size)
	c1, err1 := colorful.Hex(string(from))
	c2, err2 := colorful.Hex(string(to))
	if err1 != nil || err2 != nil || size == 1 {
		for i := range out {
			out[i] = from
		}
		return out
	}
	for i := range size {
		t := float64(i) / float64(size-1)
		out[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
	}
	return out
}
