package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pathshala/vaani/roster"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Italic(true)

	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("84"))

	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	soonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	upcomingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(lipgloss.Color("212"))
)

func bandStyle(b roster.Band) lipgloss.Style {
	switch b {
	case roster.BandCritical:
		return criticalStyle
	case roster.BandSoon:
		return soonStyle
	default:
		return upcomingStyle
	}
}
