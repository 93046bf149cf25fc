package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Colors matching the output/colors.go scheme
var (
	colorCyan    = lipgloss.Color("6")  // Cyan - train numbers
	colorYellow  = lipgloss.Color("3")  // Yellow - minor delays, bus
	colorRed     = lipgloss.Color("1")  // Red - major delays, errors
	colorGreen   = lipgloss.Color("2")  // Green - on time
	colorBlue    = lipgloss.Color("4")  // Blue - departing now
	colorMagenta = lipgloss.Color("5")  // Magenta - platforms
	colorWhite   = lipgloss.Color("15") // White - times, text
	colorGray    = lipgloss.Color("8")  // Gray - muted text
)

// Text styles
var (
	styleTime      = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleDelay     = lipgloss.NewStyle().Foreground(colorYellow)
	styleDelayHigh = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleNumber    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	stylePlatform  = lipgloss.NewStyle().Foreground(colorMagenta)
	styleDeparting = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	styleBus       = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	styleWarning   = lipgloss.NewStyle().Foreground(colorRed)
	styleMuted     = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader    = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleSuccess   = lipgloss.NewStyle().Foreground(colorGreen)
)

// Panel border styles
var (
	stylePanelFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan)

	stylePanelNormal = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorGray)
)

// Selected item in a list
var styleSelected = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

// Tag in the detail pane, e.g. the delay or "Departing now"
var styleTag = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Padding(0, 1)

// Status bar at the bottom
var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))

// Loading indicator
var styleLoading = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)

// Error text
var styleError = lipgloss.NewStyle().Foreground(colorRed)

// Logo/brand style
var styleLogo = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)

// formatDelay returns a styled delay string (4-char width)
func formatDelay(delay int) string {
	if delay <= 0 {
		return "    "
	}
	s := fmt.Sprintf("%+4d", delay)
	if delay >= 10 {
		return styleDelayHigh.Render(s)
	}
	return styleDelay.Render(s)
}
