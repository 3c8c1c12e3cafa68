package playerbar

import (
	"strings"
	"time"

	"github.com/llehouerou/mymusic/internal/ui/styles"
)

const (
	filledCell = "━"
	emptyCell  = "─"
)

// ProgressBar renders a width-wide bar for position within duration.
func ProgressBar(position, duration time.Duration, width int) string {
	if width <= 0 {
		return ""
	}
	filled := filledCells(position, duration, width)
	t := styles.T()
	return styles.GradientBar(filledCell, filled, t.Primary, t.Secondary) +
		t.S().Subtle.Render(strings.Repeat(emptyCell, width-filled))
}

func filledCells(position, duration time.Duration, width int) int {
	if duration <= 0 || position <= 0 {
		return 0
	}
	ratio := float64(position) / float64(duration)
	return min(int(float64(width)*ratio), width)
}
