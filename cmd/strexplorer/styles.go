package main

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#00D7FF")
	warningColor   = lipgloss.Color("#FFA500")
	mutedColor     = lipgloss.Color("#666666")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	offsetStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	asciiStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	zeroByteStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	frozenStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(warningColor)

	promptStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)
)
