package tui

import (
	"time"

	"github.com/mobil-koeln/treni-cli/internal/models"
)

// autoRefreshTickMsg is sent every 30 seconds when auto-refresh is enabled.
// Ticks from an earlier generation belong to a chain that was switched off
// and are ignored.
type autoRefreshTickMsg struct {
	gen int
	at  time.Time
}

// blinkTickMsg advances the departing-now animation.
type blinkTickMsg time.Time

// refreshMsg asks for a fresh board of the selected station.
type refreshMsg struct{}

// boardResultMsg carries a board fetch result. seq is used for stale-result
// detection: only the latest request may replace the board.
type boardResultMsg struct {
	seq   int
	board *models.Board
	err   error
}

// clipboardResultMsg reports the outcome of a copy action.
type clipboardResultMsg struct {
	err error
}
