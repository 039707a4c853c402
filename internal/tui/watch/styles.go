package watch

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("99")  // Purple
	accentColor  = lipgloss.Color("212") // Pink
	mutedColor   = lipgloss.Color("245") // Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(2)

	onStyle = lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true)

	helpStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			MarginTop(1)
)
