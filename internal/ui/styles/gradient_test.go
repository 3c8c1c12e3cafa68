package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBlend(t *testing.T) {
	colors := Blend(3, "#000000", "#ffffff")
	if len(colors) != 3 {
		t.Fatalf("Blend() returned %d colors, want 3", len(colors))
	}
	if colors[0] != "#000000" {
		t.Errorf("first = %s, want #000000", colors[0])
	}
	if colors[2] != "#ffffff" {
		t.Errorf("last = %s, want #ffffff", colors[2])
	}
}

func TestBlend_NonHex(t *testing.T) {
	colors := Blend(4, "240", "#ffffff")
	for i, c := range colors {
		if c != "240" {
			t.Errorf("colors[%d] = %s, want 240", i, c)
		}
	}
	if Blend(0, "#000000", "#ffffff") != nil {
		t.Error("Blend(0) should be nil")
	}
}

func TestGradient_KeepsText(t *testing.T) {
	out := Gradient("MyMusic", T().Primary, T().Secondary, true)
	if got := lipgloss.Width(out); got != len("MyMusic") {
		t.Errorf("width = %d, want %d", got, len("MyMusic"))
	}
	if Gradient("", T().Primary, T().Secondary, false) != "" {
		t.Error("empty text should render empty")
	}
}

func TestGradientBar(t *testing.T) {
	out := GradientBar("━", 10, T().Primary, T().Secondary)
	if got := lipgloss.Width(out); got != 10 {
		t.Errorf("width = %d, want 10", got)
	}
	if !strings.Contains(out, "━") {
		t.Error("bar cells missing")
	}
	if GradientBar("━", 0, T().Primary, T().Secondary) != "" {
		t.Error("zero width bar should be empty")
	}
}
