package cli

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorCyan  = lipgloss.Color("36")  // Teal - folders
	colorBlue  = lipgloss.Color("75")  // Light blue - links
	colorWhite = lipgloss.Color("255") // Bright white - bookmark titles
	colorGray  = lipgloss.Color("245") // Gray - proxies, secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - identifiers
)

// Styles for list output. Lipgloss degrades these to plain text when stdout
// is not a terminal, so piped output stays clean.
var (
	styleFolder   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleBookmark = lipgloss.NewStyle().Foreground(colorWhite)
	styleProxy    = lipgloss.NewStyle().Foreground(colorGray)
	styleLink     = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	styleID       = lipgloss.NewStyle().Foreground(colorDim)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleCursor   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)
