package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 12/75  16%. The filled part
// uses the wallpaper accent; a finished schedule turns green.
func RenderProgress(completed, total, width int) string {
	if width < 2 {
		width = 2
	}
	pct := 0.0
	if total > 0 {
		pct = float64(completed) / float64(total)
	}
	pct = max(0, min(1, pct))

	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StylePink
	if total > 0 && completed >= total {
		style = StyleGreen
	}
	return fmt.Sprintf("[%s] %d/%d %3.0f%%", style.Render(bar), completed, total, pct*100)
}
