package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mobil-koeln/treni-cli/internal/models"
)

// renderControls renders the direction and auto-refresh boxes side by side,
// with the last update time above them.
func (m Model) renderControls() string {
	dirBox := stylePanelNormal.Render(
		renderChip("Departures", m.direction == models.Departures) + " " +
			renderChip("Arrivals", m.direction == models.Arrivals) +
			styleMuted.Render("  d"),
	)

	refreshBox := stylePanelNormal.Render(
		renderChip("Auto-refresh 30s", m.autoRefresh) + styleMuted.Render("  a"),
	)

	boxes := lipgloss.JoinHorizontal(lipgloss.Top, dirBox, refreshBox)

	if m.lastUpdate.IsZero() {
		return boxes
	}

	updateText := "  Last update:\t" + m.lastUpdate.Format("15:04:05")
	if m.autoRefresh {
		remaining := max(autoRefreshInterval-time.Since(m.lastUpdate), 0)
		updateText += fmt.Sprintf("\t(refresh in %ds)", int(remaining.Seconds()))
	}
	return styleMuted.Render(updateText) + "\n" + boxes
}

// renderChip renders a single toggle chip
func renderChip(label string, active bool) string {
	if active {
		return styleNumber.Render("[" + label + "]")
	}
	return styleMuted.Render(" " + label + " ")
}
