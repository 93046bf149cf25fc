package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/mobil-koeln/treni-cli/internal/models"
	"github.com/mobil-koeln/treni-cli/internal/output"
)

// blinkFrames alternate to animate the departing-now marker
var blinkFrames = []string{"● ", " ●"}

// View renders the entire TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Layout: header + search bar + controls + panels + status bar
	header := renderHeader()
	searchBar := m.renderSearchBar()
	controls := m.renderControls()
	statusBar := m.renderStatusBar()

	panelHeight := m.height - lipgloss.Height(header) - lipgloss.Height(searchBar) -
		lipgloss.Height(controls) - lipgloss.Height(statusBar)
	if panelHeight < 3 {
		panelHeight = 3
	}

	// Panel widths: ~30% left, ~70% right
	leftWidth := max(m.width*30/100-2, 20)
	rightWidth := max(m.width-leftWidth-4, 20)

	leftBorder := stylePanelNormal
	if m.focus == focusStations {
		leftBorder = stylePanelFocused
	}
	leftPanel := leftBorder.
		Width(leftWidth).
		Height(panelHeight - 2).
		Render(m.renderStationList(leftWidth, panelHeight-2))

	rightBorder := stylePanelNormal
	if m.focus == focusBoard {
		rightBorder = stylePanelFocused
	}
	rightPanel := rightBorder.
		Width(rightWidth).
		Height(panelHeight - 2).
		Render(m.renderRightPanel(rightWidth, panelHeight-2))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)

	return lipgloss.JoinVertical(lipgloss.Left, header, searchBar, controls, panels, statusBar)
}

// renderHeader renders the brand line.
func renderHeader() string {
	return styleLogo.Render(" ▂▃▅ treni") + styleMuted.Render("  Italian station boards")
}

// renderSearchBar renders the station filter input at the top.
func (m Model) renderSearchBar() string {
	border := stylePanelNormal
	if m.focus == focusSearch {
		border = stylePanelFocused
	}
	return border.Width(m.width - 2).Render(styleHeader.Render("Station: ") + m.searchInput.View())
}

// renderStationList renders the left station panel.
func (m Model) renderStationList(width, height int) string {
	title := styleHeader.Render("STATIONS")

	if len(m.stations) == 0 {
		return title + "\n" + styleMuted.Render(" No stations match")
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")

	maxVisible := max(height-2, 1)
	start, end := visibleRange(m.stationCursor, len(m.stations), maxVisible)

	for i := start; i < end; i++ {
		st := m.stations[i]
		name := truncate(st.Name, width-4)
		switch {
		case i == m.stationCursor && m.focus == focusStations:
			b.WriteString(styleSelected.Render(" > " + name))
		case m.selectedStation != nil && st.ID == m.selectedStation.ID:
			b.WriteString(styleNumber.Render(" * " + name))
		default:
			b.WriteString("   " + name)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderRightPanel renders the board with the detail pane of the selected
// train underneath.
func (m Model) renderRightPanel(width, height int) string {
	if m.board.IsEmpty() {
		return m.renderBoard(width, height)
	}

	detailHeight := max(height*40/100, 8)
	listHeight := max(height-detailHeight-1, 3)

	list := m.renderBoard(width, listHeight)
	separator := styleMuted.Render(strings.Repeat("─", width))
	detail := lipgloss.NewStyle().Width(width).MaxHeight(detailHeight).Render(m.renderDetail(width))

	return lipgloss.NewStyle().Height(listHeight).Render(list) + "\n" + separator + "\n" + detail
}

// renderBoard renders the train list with its empty, loading and error states.
func (m Model) renderBoard(width, height int) string {
	title := strings.ToUpper(output.DirectionTitle(m.direction))
	if m.selectedStation != nil {
		title += " " + truncate(m.selectedStation.Label(), width-len(title)-2)
	}
	titleStr := styleHeader.Render(title)

	switch {
	case m.selectedStation == nil:
		return titleStr + "\n" + styleMuted.Render(" Select a station to view its board")
	case m.boardLoading:
		return titleStr + "\n" + styleLoading.Render(" Loading trains...")
	case m.boardErr != nil:
		return titleStr + "\n" + styleError.Render(" "+failureText(m.boardErr))
	case m.board.IsEmpty():
		return titleStr + "\n" + styleMuted.Render(" "+output.EmptyBoardMessage+" Press r to refresh")
	}

	var b strings.Builder
	b.WriteString(titleStr)
	b.WriteString("\n")

	maxVisible := max(height-2, 1)
	start, end := visibleRange(m.trainCursor, len(m.board.Trains), maxVisible)

	for i := start; i < end; i++ {
		selected := i == m.trainCursor && m.focus == focusBoard
		b.WriteString(m.renderTrainLine(m.board.Trains[i], width, selected))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderTrainLine renders a single board entry: time, delay, number,
// platform, destination and the status accessory.
func (m Model) renderTrainLine(t models.Train, width int, selected bool) string {
	timeStr := t.Time
	if timeStr == "" {
		timeStr = "??:??"
	}

	number := padRight(truncate(t.Number, 8), 8)

	platformStr := "       "
	if t.Platform != "" {
		platformStr = fmt.Sprintf("Bin.%-3s", truncate(t.Platform, 3))
	}

	accessory := ""
	switch {
	case t.IsBlinking:
		accessory = styleDeparting.Render(blinkFrames[m.blinkFrame%len(blinkFrames)])
	case t.IsReplacedByBus:
		accessory = styleBus.Render("BUS")
	case t.IsIncomplete:
		accessory = styleWarning.Render("⚠")
	}

	// time+sp+delay+sp+number+sp+platform+sp, cursor and accessory
	fixedWidth := 5 + 1 + 4 + 2 + 8 + 2 + 7 + 1
	dest := truncate(t.Destination, width-fixedWidth-6)

	entry := fmt.Sprintf("%s %s  %s  %s %s",
		styleTime.Render(timeStr),
		formatDelay(t.Delay),
		styleNumber.Render(number),
		stylePlatform.Render(platformStr),
		padRight(dest, width-fixedWidth-6),
	)
	if accessory != "" {
		entry += " " + accessory
	}

	if selected {
		return styleSelected.Render(">") + entry
	}
	return " " + entry
}

// renderStatusBar renders the toast and context-aware keyboard hints.
func (m Model) renderStatusBar() string {
	var hints string
	switch m.focus {
	case focusSearch:
		hints = "type:filter  Enter:select  Tab:stations  Esc:clear  Ctrl+C:quit"
	case focusStations:
		hints = "j/k:navigate  Enter:board  d:direction  a:auto  Tab:board  /:filter  q:quit"
	case focusBoard:
		hints = "j/k:navigate  r:refresh  d:direction  c:copy  a:auto  Esc:stations  q:quit"
	}

	bar := " " + hints
	if t := m.toast.view(); t != "" {
		bar = " " + t + "  " + styleMuted.Render("|") + bar
	}
	return styleStatusBar.Width(m.width).Render(bar)
}

// visibleRange calculates the start and end indices for a scrollable list.
func visibleRange(cursor, total, maxVisible int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}

	start := max(cursor-maxVisible/2, 0)
	end := start + maxVisible
	if end > total {
		end = total
		start = max(end-maxVisible, 0)
	}
	return start, end
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// truncate shortens s to width runes, marking the cut with "~".
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runeLen(s) <= width {
		return s
	}
	r := []rune(s)
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "~"
}

func padRight(s string, width int) string {
	if pad := width - runeLen(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
