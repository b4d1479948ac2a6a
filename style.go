package main

import "github.com/charmbracelet/lipgloss"

const (
	accentColor   = "#ff9f1c"
	captionFG     = "#e0e0e0"
	dimFG         = "#8a8a8a"
	buttonBG      = "#3a3a3a"
	buttonFG      = "#e0e0e0"
	inputBorderFG = "240"
	inputFocusFG  = accentColor
)

var (
	// Styles
	appstyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor))

	captionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(captionFG)).
			Align(lipgloss.Center)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Background(lipgloss.Color(buttonBG)).
			Foreground(lipgloss.Color(buttonFG))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(dimFG))

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(inputBorderFG)).
			Padding(0, 1)

	inputFocusedStyle = inputStyle.BorderForeground(lipgloss.Color(inputFocusFG))
)
