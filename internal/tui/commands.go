package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/treni-cli/internal/models"
)

const (
	apiTimeout          = 10 * time.Second
	autoRefreshInterval = 30 * time.Second
	blinkInterval       = 450 * time.Millisecond
)

// autoRefreshTick returns a tea.Cmd that sends a tick after the refresh interval.
func autoRefreshTick(gen int) tea.Cmd {
	return tea.Tick(autoRefreshInterval, func(t time.Time) tea.Msg {
		return autoRefreshTickMsg{gen: gen, at: t}
	})
}

// blinkTick returns a tea.Cmd that advances the departing-now marker.
func blinkTick() tea.Cmd {
	return tea.Tick(blinkInterval, func(t time.Time) tea.Msg {
		return blinkTickMsg(t)
	})
}

// fetchBoard returns a tea.Cmd that fetches departures or arrivals for a station.
func fetchBoard(source BoardSource, station models.Station, dir models.Direction, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		board, err := source.GetBoard(ctx, station, dir)
		return boardResultMsg{
			seq:   seq,
			board: board,
			err:   err,
		}
	}
}

// copyToClipboard returns a tea.Cmd that writes text to the clipboard.
func copyToClipboard(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardResultMsg{err: write(text)}
	}
}
