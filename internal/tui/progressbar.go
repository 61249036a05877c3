package tui

import (
	"math"
	"strings"
)

// barGlyph fills the progress bar.
const barGlyph = '█'

// RenderProgressBar returns a right-aligned bar of exactly width cells with
// floor(share*width) cells filled.
//
// Rules:
//   - share is clamped to [0, 1]
//   - NaN or infinite share → all blanks
//   - width <= 0 → ""
func RenderProgressBar(share float64, width int) string {
	if width <= 0 {
		return ""
	}
	if math.IsNaN(share) || math.IsInf(share, 0) {
		return strings.Repeat(" ", width)
	}

	share = math.Max(0, math.Min(1, share))
	fill := int(math.Floor(share * float64(width)))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width-fill))
	sb.WriteString(strings.Repeat(string(barGlyph), fill))
	return sb.String()
}
