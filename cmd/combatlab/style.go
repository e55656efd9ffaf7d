package main

import "github.com/charmbracelet/lipgloss"

var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	styleEquipped = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")).
			Bold(true)

	styleSlot = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	styleHighlight = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")).
			Underline(true)

	styleWarn = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleFeed = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)
