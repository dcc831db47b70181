package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must stay readable on both light and dark terminal
// backgrounds, so everything routes through lipgloss.AdaptiveColor and
// "faint" styling is reserved for dark backgrounds (faint on light
// terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted    lipgloss.TerminalColor = ac("240", "243")
	colorAccent   lipgloss.TerminalColor = ac("27", "62") // blue
	colorNotice   lipgloss.TerminalColor = ac("160", "203")
	colorDone     lipgloss.TerminalColor = ac("28", "40")
	colorSelected lipgloss.TerminalColor = ac("232", "255")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	noticeStyle   = lipgloss.NewStyle().Foreground(colorNotice).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(colorDone)
	accentStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(colorSelected).Bold(true)
)

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if termenv.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}
