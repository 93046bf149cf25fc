package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/treni-cli/internal/models"
	"github.com/mobil-koeln/treni-cli/internal/stations"
)

type focusPanel int

const (
	focusSearch focusPanel = iota
	focusStations
	focusBoard
)

// BoardSource fetches station boards; *api.Client satisfies it.
type BoardSource interface {
	GetBoard(ctx context.Context, station models.Station, dir models.Direction) (*models.Board, error)
}

// Model is the root Bubble Tea model for the TUI.
type Model struct {
	source   BoardSource
	catalog  *stations.Catalog
	copyText func(string) error
	width    int
	height   int

	searchInput textinput.Model
	focus       focusPanel

	// Left panel - stations matching the search input
	stations      []models.Station
	stationCursor int

	// Right panel - board of the selected station
	direction       models.Direction
	selectedStation *models.Station
	board           *models.Board
	trainCursor     int
	boardLoading    bool
	boardErr        error
	boardSeq        int

	// Auto-refresh
	autoRefresh bool
	refreshGen  int
	lastUpdate  time.Time

	// Departing-now animation frame
	blinkFrame int

	toast toast
}

// Option configures the Model
type Option func(*Model)

// WithDirection sets the initial board direction
func WithDirection(dir models.Direction) Option {
	return func(m *Model) {
		m.direction = dir
	}
}

// WithAutoRefresh starts with auto-refresh enabled
func WithAutoRefresh(on bool) Option {
	return func(m *Model) {
		m.autoRefresh = on
	}
}

// WithClipboard replaces the system clipboard writer
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		if write != nil {
			m.copyText = write
		}
	}
}

// WithStation preselects a station; its board is fetched on start.
func WithStation(st models.Station) Option {
	return func(m *Model) {
		m.selectedStation = &st
		m.focus = focusBoard
		m.searchInput.Blur()
	}
}

// New creates a new TUI model.
func New(source BoardSource, catalog *stations.Catalog, opts ...Option) Model {
	if catalog == nil {
		catalog = stations.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "Filter stations..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	m := Model{
		source:      source,
		catalog:     catalog,
		copyText:    clipboard.WriteAll,
		searchInput: ti,
		focus:       focusSearch,
		stations:    catalog.All(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the cursor blink and the departing-now animation, and loads
// the preselected station if there is one.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, blinkTick()}
	if m.autoRefresh {
		cmds = append(cmds, autoRefreshTick(m.refreshGen))
	}
	if m.selectedStation != nil {
		cmds = append(cmds, m.initialFetch())
	}
	return tea.Batch(cmds...)
}

func (m Model) initialFetch() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// selectedTrain returns the train under the cursor
func (m Model) selectedTrain() (models.Train, bool) {
	if m.board.IsEmpty() || m.trainCursor < 0 || m.trainCursor >= len(m.board.Trains) {
		return models.Train{}, false
	}
	return m.board.Trains[m.trainCursor], true
}

// applyFilter re-runs the station search for the current input
func (m *Model) applyFilter() {
	m.stations = m.catalog.Search(m.searchInput.Value())
	if m.stationCursor >= len(m.stations) {
		m.stationCursor = max(len(m.stations)-1, 0)
	}
}

// startFetch marks the board as loading and returns the fetch command.
// A silent fetch keeps the current board visible until the result arrives.
func (m *Model) startFetch(silent bool) tea.Cmd {
	if m.selectedStation == nil || m.source == nil {
		return nil
	}
	m.boardSeq++
	m.boardErr = nil
	if !silent {
		m.boardLoading = true
		m.board = nil
		m.trainCursor = 0
	}
	m.toast = newToast(toastLoading, "Loading data")
	return fetchBoard(m.source, *m.selectedStation, m.direction, m.boardSeq)
}
