package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/treni-cli/internal/feed"
	"github.com/mobil-koeln/treni-cli/internal/models"
	"github.com/mobil-koeln/treni-cli/internal/output"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case boardResultMsg:
		return m.handleBoardResult(msg)

	case refreshMsg:
		cmd := m.startFetch(false)
		return m, cmd

	case clipboardResultMsg:
		if msg.err != nil {
			m.toast = newToast(toastFailure, "Could not copy train info")
		} else {
			m.toast = newToast(toastSuccess, "Copied train info")
		}
		return m, nil

	case autoRefreshTickMsg:
		return m.handleAutoRefreshTick(msg)

	case blinkTickMsg:
		m.blinkFrame = (m.blinkFrame + 1) % len(blinkFrames)
		return m, blinkTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Pass remaining messages to textinput when focused
	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleBoardResult(msg boardResultMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results
	if msg.seq != m.boardSeq {
		return m, nil
	}
	m.boardLoading = false
	m.boardErr = msg.err
	if msg.err != nil {
		m.board = nil
		m.toast = newToast(toastFailure, failureText(msg.err))
		return m, nil
	}

	// Keep the cursor on the same train across refreshes
	var keep string
	if t, ok := m.selectedTrain(); ok {
		keep = t.Number
	}
	m.board = msg.board
	m.trainCursor = 0
	if keep != "" && m.board != nil {
		for i, t := range m.board.Trains {
			if t.Number == keep {
				m.trainCursor = i
				break
			}
		}
	}

	if m.board != nil {
		m.lastUpdate = m.board.FetchedAt
	}
	m.toast = newToast(toastSuccess, "Trains loaded")
	return m, nil
}

// failureText keeps malformed payloads and transport errors apart from an
// empty board, which is not a failure
func failureText(err error) string {
	if errors.Is(err, feed.ErrMalformedFeed) {
		return output.LoadFailedMessage + ": unexpected response, press r to retry"
	}
	return output.LoadFailedMessage + ", press r to retry"
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKeys(msg)
	case focusStations:
		return m.handleStationKeys(msg)
	case focusBoard:
		return m.handleBoardKeys(msg)
	}

	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if len(m.stations) == 1 {
			return m.selectStation(m.stations[0])
		}
		if len(m.stations) > 0 {
			m.focus = focusStations
			m.searchInput.Blur()
		}
		return m, nil

	case "esc":
		m.searchInput.SetValue("")
		m.applyFilter()
		return m, nil

	case "tab", "down":
		m.focus = focusStations
		m.searchInput.Blur()
		return m, nil

	case "shift+tab":
		if m.selectedStation != nil {
			m.focus = focusBoard
		} else {
			m.focus = focusStations
		}
		m.searchInput.Blur()
		return m, nil
	}

	// Forward to textinput and filter as the user types
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) handleStationKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		if m.selectedStation != nil {
			m.focus = focusBoard
			return m, nil
		}
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "shift+tab", "esc", "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "d":
		return m.toggleDirection()

	case "a":
		return m.toggleAutoRefresh()

	case "enter", " ":
		if len(m.stations) > 0 {
			return m.selectStation(m.stations[m.stationCursor])
		}
		return m, nil
	}

	m.stationCursor = moveCursor(msg.String(), m.stationCursor, len(m.stations), m.pageSize())
	return m, nil
}

func (m Model) handleBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab", "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "shift+tab", "esc":
		m.focus = focusStations
		return m, nil

	case "r":
		cmd := m.startFetch(false)
		return m, cmd

	case "d":
		return m.toggleDirection()

	case "a":
		return m.toggleAutoRefresh()

	case "c", "y":
		if t, ok := m.selectedTrain(); ok {
			return m, copyToClipboard(m.copyText, output.TrainSummary(t))
		}
		return m, nil
	}

	total := 0
	if m.board != nil {
		total = len(m.board.Trains)
	}
	m.trainCursor = moveCursor(msg.String(), m.trainCursor, total, m.pageSize())
	return m, nil
}

// selectStation shows the board of st and fetches it
func (m Model) selectStation(st models.Station) (tea.Model, tea.Cmd) {
	m.selectedStation = &st
	m.focus = focusBoard
	m.searchInput.Blur()
	cmd := m.startFetch(false)
	return m, cmd
}

// toggleDirection switches between departures and arrivals and refetches
func (m Model) toggleDirection() (tea.Model, tea.Cmd) {
	if m.direction == models.Departures {
		m.direction = models.Arrivals
	} else {
		m.direction = models.Departures
	}
	cmd := m.startFetch(false)
	return m, cmd
}

func (m Model) toggleAutoRefresh() (tea.Model, tea.Cmd) {
	m.autoRefresh = !m.autoRefresh
	if !m.autoRefresh {
		return m, nil
	}

	// Refresh right away when enabling and start a new tick chain
	m.refreshGen++
	cmds := []tea.Cmd{autoRefreshTick(m.refreshGen)}
	if cmd := m.startFetch(true); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleAutoRefreshTick(msg autoRefreshTickMsg) (tea.Model, tea.Cmd) {
	if !m.autoRefresh || msg.gen != m.refreshGen {
		return m, nil
	}

	// Schedule next tick and silently refresh the board
	cmds := []tea.Cmd{autoRefreshTick(m.refreshGen)}
	if cmd := m.startFetch(true); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) pageSize() int {
	if size := m.height - 12; size > 0 {
		return size
	}
	return 10
}

// moveCursor applies a navigation key to cursor within [0, total)
func moveCursor(key string, cursor, total, page int) int {
	if total == 0 {
		return 0
	}
	switch key {
	case "j", "down":
		cursor++
	case "k", "up":
		cursor--
	case "pgdown":
		cursor += page
	case "pgup":
		cursor -= page
	case "home", "g":
		cursor = 0
	case "end", "G":
		cursor = total - 1
	}
	return min(max(cursor, 0), total-1)
}
