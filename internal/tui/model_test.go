package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/treni-cli/internal/feed"
	"github.com/mobil-koeln/treni-cli/internal/models"
	"github.com/mobil-koeln/treni-cli/internal/stations"
	"github.com/mobil-koeln/treni-cli/internal/testutil"
)

// fakeSource returns canned boards and records requests
type fakeSource struct {
	board *models.Board
	err   error
	calls []models.Direction
}

func (f *fakeSource) GetBoard(_ context.Context, st models.Station, dir models.Direction) (*models.Board, error) {
	f.calls = append(f.calls, dir)
	if f.err != nil {
		return nil, f.err
	}
	b := *f.board
	b.Station = st
	b.Direction = dir
	return &b, nil
}

var milano = models.Station{ID: "2416", Name: "Milano Centrale", Region: "Lombardia"}

func sampleBoard() *models.Board {
	return &models.Board{
		Station:   milano,
		FetchedAt: time.Date(2024, 5, 10, 14, 29, 0, 0, time.UTC),
		Trains: []models.Train{
			{Number: "9412", Destination: "Milano Centrale", Time: "14:32", Platform: "5", Carrier: "TRENITALIA", Icon: "FR"},
			{Number: "2619", Destination: "Venezia S. Lucia", Time: "14:35", Platform: "12", Carrier: "TRENITALIA", Delay: 7, IsDelayed: true},
			{Number: "9929", Destination: "Napoli Centrale", Time: "14:40", Platform: "3", Carrier: "ITALO", IsBlinking: true},
			{Number: "10001", Destination: "Bergamo", Time: "14:45", Carrier: "TRENORD", IsReplacedByBus: true, IsIncomplete: true},
		},
	}
}

func newTestModel(src *fakeSource, opts ...Option) Model {
	return New(src, stations.Default(), opts...)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// boardResult runs cmd, descending into batches, and returns the first
// board result it produces
func boardResult(t *testing.T, cmd tea.Cmd) boardResultMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	switch msg := cmd().(type) {
	case boardResultMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			// Ticks would block; only fetches return immediately
			if res, ok := tryBoardResult(c); ok {
				return res
			}
		}
	}
	t.Fatal("command produced no board result")
	return boardResultMsg{}
}

func tryBoardResult(cmd tea.Cmd) (boardResultMsg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		res, ok := msg.(boardResultMsg)
		return res, ok
	case <-time.After(100 * time.Millisecond):
		return boardResultMsg{}, false
	}
}

func TestNew(t *testing.T) {
	m := newTestModel(&fakeSource{})

	testutil.AssertEqual(t, m.focus, focusSearch)
	testutil.AssertEqual(t, m.direction, models.Departures)
	testutil.AssertEqual(t, len(m.stations), stations.Default().Len())
	testutil.AssertTrue(t, m.selectedStation == nil)
	testutil.AssertTrue(t, m.copyText != nil)
}

func TestNew_Options(t *testing.T) {
	m := newTestModel(&fakeSource{}, WithDirection(models.Arrivals), WithAutoRefresh(true), WithStation(milano))

	testutil.AssertEqual(t, m.direction, models.Arrivals)
	testutil.AssertTrue(t, m.autoRefresh)
	testutil.AssertEqual(t, m.focus, focusBoard)
	testutil.AssertEqual(t, m.selectedStation.ID, "2416")
}

func TestModel_Init(t *testing.T) {
	m := newTestModel(&fakeSource{})
	testutil.AssertTrue(t, m.Init() != nil)
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(&fakeSource{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
	testutil.AssertEqual(t, m.width, 100)
	testutil.AssertEqual(t, m.height, 50)
}

func TestSearch_FiltersAsYouType(t *testing.T) {
	m := newTestModel(&fakeSource{})

	for _, r := range "forli" {
		m, _ = update(t, m, key(string(r)))
	}
	testutil.AssertLen(t, m.stations, 1)
	testutil.AssertEqual(t, m.stations[0].Name, "Forlì")

	m, _ = update(t, m, key("esc"))
	testutil.AssertEqual(t, m.searchInput.Value(), "")
	testutil.AssertEqual(t, len(m.stations), stations.Default().Len())
}

func TestSearch_EnterWithSingleMatchSelects(t *testing.T) {
	src := &fakeSource{board: sampleBoard()}
	m := newTestModel(src)
	m.searchInput.SetValue("Rogoredo")
	m.applyFilter()

	m, cmd := update(t, m, key("enter"))
	testutil.AssertEqual(t, m.focus, focusBoard)
	testutil.AssertEqual(t, m.selectedStation.ID, "2434")
	testutil.AssertTrue(t, m.boardLoading)
	testutil.AssertEqual(t, m.toast.text, "Loading data")

	m, _ = update(t, m, boardResult(t, cmd))
	testutil.AssertFalse(t, m.boardLoading)
	testutil.AssertLen(t, m.board.Trains, 4)
	testutil.AssertEqual(t, m.toast.text, "Trains loaded")
}

func TestStationKeys_SelectFetchesBoard(t *testing.T) {
	src := &fakeSource{board: sampleBoard()}
	m := newTestModel(src)

	m, _ = update(t, m, key("tab"))
	testutil.AssertEqual(t, m.focus, focusStations)

	m, _ = update(t, m, key("j"))
	testutil.AssertEqual(t, m.stationCursor, 1)

	m, cmd := update(t, m, key("enter"))
	testutil.AssertEqual(t, m.selectedStation.ID, m.stations[1].ID)

	res := boardResult(t, cmd)
	testutil.AssertEqual(t, res.seq, m.boardSeq)
	testutil.AssertLen(t, src.calls, 1)
}

func TestBoardResult_StaleIgnored(t *testing.T) {
	m := newTestModel(&fakeSource{}, WithStation(milano))
	m.boardSeq = 2
	m.boardLoading = true

	m, _ = update(t, m, boardResultMsg{seq: 1, board: sampleBoard()})
	testutil.AssertTrue(t, m.board == nil)
	testutil.AssertTrue(t, m.boardLoading)
}

func TestBoardResult_Error(t *testing.T) {
	m := newTestModel(&fakeSource{}, WithStation(milano))
	m.boardSeq = 1

	malformed := &feed.MalformedFeedError{Reason: "markup instead of records"}
	m, _ = update(t, m, boardResultMsg{seq: 1, err: malformed})

	testutil.AssertError(t, m.boardErr)
	testutil.AssertEqual(t, m.toast.kind, toastFailure)
	testutil.AssertContains(t, m.toast.text, "Could not load information")
}

func TestBoardResult_EmptyIsNotAFailure(t *testing.T) {
	m := newTestModel(&fakeSource{}, WithStation(milano))
	m.boardSeq = 1

	m, _ = update(t, m, boardResultMsg{seq: 1, board: &models.Board{Trains: []models.Train{}}})
	testutil.AssertNil(t, m.boardErr)
	testutil.AssertEqual(t, m.toast.kind, toastSuccess)
}

func TestBoardResult_KeepsSelectedTrain(t *testing.T) {
	m := newTestModel(&fakeSource{}, WithStation(milano))
	m.boardSeq = 1
	m, _ = update(t, m, boardResultMsg{seq: 1, board: sampleBoard()})
	m.trainCursor = 2 // 9929

	// Refreshed board lost its first train
	refreshed := sampleBoard()
	refreshed.Trains = refreshed.Trains[1:]
	m.boardSeq = 2
	m, _ = update(t, m, boardResultMsg{seq: 2, board: refreshed})

	train, ok := m.selectedTrain()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, train.Number, "9929")
}

func TestBoardKeys_ToggleDirection(t *testing.T) {
	src := &fakeSource{board: sampleBoard()}
	m := newTestModel(src, WithStation(milano))

	m, cmd := update(t, m, key("d"))
	testutil.AssertEqual(t, m.direction, models.Arrivals)
	m, _ = update(t, m, boardResult(t, cmd))
	testutil.AssertEqual(t, m.board.Direction, models.Arrivals)

	m, _ = update(t, m, key("d"))
	testutil.AssertEqual(t, m.direction, models.Departures)
}

func TestBoardKeys_RefreshAfterError(t *testing.T) {
	src := &fakeSource{err: errors.New("network down")}
	m := newTestModel(src, WithStation(milano))

	m, cmd := update(t, m, key("r"))
	m, _ = update(t, m, boardResult(t, cmd))
	testutil.AssertError(t, m.boardErr)

	src.err = nil
	src.board = sampleBoard()
	m, cmd = update(t, m, key("r"))
	m, _ = update(t, m, boardResult(t, cmd))
	testutil.AssertNil(t, m.boardErr)
	testutil.AssertLen(t, m.board.Trains, 4)
}

func TestBoardKeys_Navigate(t *testing.T) {
	m := newTestModel(&fakeSource{}, WithStation(milano))
	m.board = sampleBoard()

	m, _ = update(t, m, key("j"))
	m, _ = update(t, m, key("j"))
	testutil.AssertEqual(t, m.trainCursor, 2)

	m, _ = update(t, m, key("G"))
	testutil.AssertEqual(t, m.trainCursor, 3)

	m, _ = update(t, m, key("j"))
	testutil.AssertEqual(t, m.trainCursor, 3)

	m, _ = update(t, m, key("g"))
	testutil.AssertEqual(t, m.trainCursor, 0)
}

func TestBoardKeys_Copy(t *testing.T) {
	var copied string
	m := newTestModel(&fakeSource{}, WithStation(milano), WithClipboard(func(s string) error {
		copied = s
		return nil
	}))
	m.board = sampleBoard()
	m.trainCursor = 1

	m, cmd := update(t, m, key("c"))
	testutil.AssertTrue(t, cmd != nil)
	m, _ = update(t, m, cmd())

	testutil.AssertEqual(t, copied,
		"Train to Venezia S. Lucia (2619), with scheduled departure at 14:35 from platform 12, delayed by 7 minutes")
	testutil.AssertEqual(t, m.toast.text, "Copied train info")
}

func TestBoardKeys_CopyFailure(t *testing.T) {
	m := newTestModel(&fakeSource{}, WithStation(milano), WithClipboard(func(string) error {
		return errors.New("no clipboard")
	}))
	m.board = sampleBoard()

	m, cmd := update(t, m, key("y"))
	m, _ = update(t, m, cmd())
	testutil.AssertEqual(t, m.toast.kind, toastFailure)
}

func TestAutoRefreshTick(t *testing.T) {
	src := &fakeSource{board: sampleBoard()}
	m := newTestModel(src, WithStation(milano), WithAutoRefresh(true))
	m.board = sampleBoard()

	m, cmd := update(t, m, autoRefreshTickMsg{gen: m.refreshGen, at: time.Now()})
	testutil.AssertTrue(t, cmd != nil)

	// Silent refresh keeps the current board visible
	testutil.AssertFalse(t, m.boardLoading)
	testutil.AssertTrue(t, m.board != nil)
}

func TestAutoRefreshTick_Disabled(t *testing.T) {
	m := newTestModel(&fakeSource{}, WithStation(milano))

	_, cmd := update(t, m, autoRefreshTickMsg{gen: m.refreshGen, at: time.Now()})
	testutil.AssertTrue(t, cmd == nil)
}

func TestAutoRefreshTick_ToggleDropsOldChain(t *testing.T) {
	src := &fakeSource{board: sampleBoard()}
	m := newTestModel(src, WithStation(milano), WithAutoRefresh(true))
	m.board = sampleBoard()
	oldGen := m.refreshGen

	m, _ = update(t, m, key("a"))
	testutil.AssertFalse(t, m.autoRefresh)
	m, _ = update(t, m, key("a"))
	testutil.AssertTrue(t, m.autoRefresh)
	testutil.AssertTrue(t, m.refreshGen != oldGen)

	// The tick scheduled before the toggle must not start a second chain
	_, cmd := update(t, m, autoRefreshTickMsg{gen: oldGen, at: time.Now()})
	testutil.AssertTrue(t, cmd == nil)

	_, cmd = update(t, m, autoRefreshTickMsg{gen: m.refreshGen, at: time.Now()})
	testutil.AssertTrue(t, cmd != nil)
}

func TestBlinkTick(t *testing.T) {
	m := newTestModel(&fakeSource{})

	m, cmd := update(t, m, blinkTickMsg(time.Now()))
	testutil.AssertEqual(t, m.blinkFrame, 1)
	testutil.AssertTrue(t, cmd != nil)

	m, _ = update(t, m, blinkTickMsg(time.Now()))
	testutil.AssertEqual(t, m.blinkFrame, 0)
}

func TestRefreshMsg_WithoutStation(t *testing.T) {
	m := newTestModel(&fakeSource{})
	_, cmd := update(t, m, refreshMsg{})
	testutil.AssertTrue(t, cmd == nil)
}

func TestMoveCursor(t *testing.T) {
	tests := []struct {
		key    string
		cursor int
		want   int
	}{
		{"j", 0, 1},
		{"k", 0, 0},
		{"pgdown", 1, 4},
		{"pgup", 4, 0},
		{"end", 0, 4},
		{"home", 3, 0},
		{"x", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			testutil.AssertEqual(t, moveCursor(tt.key, tt.cursor, 5, 10), tt.want)
		})
	}
	testutil.AssertEqual(t, moveCursor("j", 0, 0, 10), 0)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(&fakeSource{})

	_, cmd := update(t, m, key("ctrl+c"))
	testutil.AssertTrue(t, cmd != nil)
	_, ok := cmd().(tea.QuitMsg)
	testutil.AssertTrue(t, ok)
}
