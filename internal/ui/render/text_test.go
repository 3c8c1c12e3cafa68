package render

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Hello", "Hello"},
		{"control chars", "a\x00b\x1bc", "abc"},
		{"newline", "line1\nline2", "line1line2"},
		{"tab", "a\tb", "a b"},
		{"nbsp", "a\u00a0b", "a b"},
		{"invalid utf8", "a\xffb", "ab"},
		{"unicode kept", "Sơn Tùng", "Sơn Tùng"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "Hello", 10, "Hello"},
		{"exact", "Hello", 5, "Hello"},
		{"cut", "Hello World", 8, "Hello W…"},
		{"zero width", "Hello", 0, ""},
		{"wide chars", "日本語テスト", 7, "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			if w := lipgloss.Width(got); w > tt.maxWidth {
				t.Errorf("Truncate(%q, %d) width = %d", tt.input, tt.maxWidth, w)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	for _, input := range []string{"", "abc", "a much longer string", "日本語"} {
		if w := lipgloss.Width(TruncateAndPad(input, 8)); w != 8 {
			t.Errorf("TruncateAndPad(%q, 8) width = %d, want 8", input, w)
		}
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		width int
		want  string
	}{
		{"spread", "L", "R", 5, "L   R"},
		{"too narrow keeps one space", "Left", "Right", 3, "Left Right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Row(tt.left, tt.right, tt.width); got != tt.want {
				t.Errorf("Row() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q, want empty", got)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{5 * time.Second, "0:05"},
		{83 * time.Second, "1:23"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{1500 * time.Millisecond, "0:01"},
	}

	for _, tt := range tests {
		if got := Duration(tt.d); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
