package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"twinforge/internal/wizard"
)

// gradientColorAt samples the blended color at pos (0..100). Inside a
// band overlap the two anchor colors are lerped so the seam stays soft;
// elsewhere the band's anchor shows untouched.
func gradientColorAt(g wizard.GradientSpec, pos float64) string {
	c0 := mustHex(g.Bands[0].Color)
	c1 := mustHex(g.Bands[1].Color)
	c2 := mustHex(g.Bands[2].Color)

	lo1 := float64(g.Bands[1].From)
	hi1 := float64(g.Bands[0].To)
	lo2 := float64(g.Bands[2].From)
	hi2 := float64(g.Bands[1].To)

	switch {
	case pos < lo1:
		return g.Bands[0].Color
	case pos <= hi1:
		return c0.BlendRgb(c1, blendT(pos, lo1, hi1)).Hex()
	case pos < lo2:
		return g.Bands[1].Color
	case pos <= hi2:
		return c1.BlendRgb(c2, blendT(pos, lo2, hi2)).Hex()
	default:
		return g.Bands[2].Color
	}
}

func blendT(pos, lo, hi float64) float64 {
	if hi <= lo {
		return 1
	}
	return (pos - lo) / (hi - lo)
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// gradientColumns samples one color per terminal column.
func gradientColumns(g wizard.GradientSpec, width int) []string {
	if width < 1 {
		width = 1
	}
	cols := make([]string, width)
	for x := 0; x < width; x++ {
		pos := (float64(x) + 0.5) * 100 / float64(width)
		cols[x] = gradientColorAt(g, pos)
	}
	return cols
}

// renderGradientBar paints the preview background band. A fading bar is
// rendered faint while the outgoing gradient is still on the base layer.
func renderGradientBar(g wizard.GradientSpec, width, height int, fading bool) string {
	cols := gradientColumns(g, width)
	var row strings.Builder
	for _, hex := range cols {
		st := lipgloss.NewStyle().Background(lipgloss.Color(hex))
		if fading {
			st = faintIfDark(st)
		}
		row.WriteString(st.Render(" "))
	}
	line := row.String()
	rows := make([]string, 0, height)
	for i := 0; i < height; i++ {
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}
