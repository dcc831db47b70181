package tui

import (
	"fmt"
	"strings"
)

// renderSlider draws one horizontal axis track, 1..10 with the handle at
// val. Focused tracks render with the selection style.
func renderSlider(label string, val, max int, focused bool) string {
	var track strings.Builder
	for i := 1; i <= max; i++ {
		if i == val {
			track.WriteString("●")
		} else {
			track.WriteString("─")
		}
	}
	line := fmt.Sprintf("%-12s %s %2d", label, track.String(), val)
	if focused {
		return selectedStyle.Render("› " + line)
	}
	return "  " + mutedStyle.Render(line)
}
