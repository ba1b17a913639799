package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The dashboard must remain readable on both light and dark terminal
// backgrounds, so every color is a lipgloss.AdaptiveColor and "faint"
// styling is only applied on dark backgrounds (faint text on light
// terminals is often illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted    lipgloss.TerminalColor = ac("240", "243")
	colorAccent   lipgloss.TerminalColor = ac("26", "75")
	colorDone     lipgloss.TerminalColor = ac("28", "77")
	colorOverdue  lipgloss.TerminalColor = ac("124", "203")
	colorPriority lipgloss.TerminalColor = ac("130", "214")

	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	colorCardBorder     lipgloss.TerminalColor = ac("250", "243")
	colorSelectedBorder lipgloss.TerminalColor = ac("232", "255")
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true)
	styleMuted    = lipgloss.NewStyle().Foreground(colorMuted)
	styleAccent   = lipgloss.NewStyle().Foreground(colorAccent)
	styleDone     = lipgloss.NewStyle().Foreground(colorDone)
	styleOverdue  = lipgloss.NewStyle().Foreground(colorOverdue)
	stylePriority = lipgloss.NewStyle().Foreground(colorPriority)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCardBorder).
			Padding(0, 1)

	styleCardSelected = styleCard.
				BorderForeground(colorSelectedBorder)
)

// initTheme pins termenv's detected background so lipgloss adaptive
// colors resolve consistently for the lifetime of the program.
func initTheme() {
	lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
}
