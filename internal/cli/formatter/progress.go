package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct int, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 2 {
		width = 2
	}

	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] %3d%%", ProgressColor(pct).Render(bar), pct)
}

// RenderPoints renders the level progress bar out of the points needed for
// the next level, like "Level 3  [██░░░░░░░░] 23/100".
func RenderPoints(level, points, threshold, width int) string {
	if threshold < 1 {
		threshold = 1
	}
	pct := points * 100 / threshold
	if pct > 100 {
		pct = 100
	}
	if width < 2 {
		width = 2
	}
	filled := pct * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("%s  [%s] %d/%d",
		Bold(fmt.Sprintf("Level %d", level)), StylePurple.Render(bar), points, threshold)
}
