package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlace_Centers(t *testing.T) {
	base := strings.Join([]string{
		"..........",
		"..........",
		"..........",
		"..........",
	}, "\n")

	out := strings.Split(ansi.Strip(Place(base, "ab\ncd", 10, 4)), "\n")
	require.Len(t, out, 4)
	assert.Equal(t, "..........", out[0])
	assert.Equal(t, "....ab....", out[1])
	assert.Equal(t, "....cd....", out[2])
	assert.Equal(t, "..........", out[3])
}

func TestPlace_PadsShortBase(t *testing.T) {
	out := strings.Split(ansi.Strip(Place("x", "box", 7, 3)), "\n")
	require.Len(t, out, 3)
	assert.Equal(t, "  box  ", out[1])
}

func TestPlace_KeepsStyledBaseWidth(t *testing.T) {
	base := "\x1b[31m" + strings.Repeat("r", 12) + "\x1b[0m"
	out := Place(base, "ZZ", 12, 1)
	assert.Equal(t, 12, ansi.StringWidth(out))
	assert.Equal(t, "rrrrrZZrrrrr", ansi.Strip(out))
}

func TestPlace_BoxWiderThanScreen(t *testing.T) {
	out := ansi.Strip(Place("....", "toolong", 4, 1))
	assert.Equal(t, "toolong", out)
}
