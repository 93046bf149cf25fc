// Package publish pushes station boards to a message queue on a fixed
// interval.
package publish

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/mobil-koeln/treni-cli/internal/models"
)

const (
	// DefaultQueue receives the boards unless configured otherwise
	DefaultQueue = "treni.boards"
	// DefaultInterval between two publications
	DefaultInterval = 30 * time.Second
)

// Publisher delivers one encoded board.
type Publisher interface {
	Publish(ctx context.Context, body []byte) error
}

// BoardSource fetches station boards.
type BoardSource interface {
	GetBoard(ctx context.Context, station models.Station, dir models.Direction) (*models.Board, error)
}

// Runner fetches the board of one station and publishes it on every tick.
type Runner struct {
	source    BoardSource
	publisher Publisher
	station   models.Station
	direction models.Direction
	interval  time.Duration
	log       *zap.SugaredLogger
}

// NewRunner creates a runner. A non-positive interval means DefaultInterval.
func NewRunner(source BoardSource, publisher Publisher, station models.Station, dir models.Direction, interval time.Duration, log *zap.SugaredLogger) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Runner{
		source:    source,
		publisher: publisher,
		station:   station,
		direction: dir,
		interval:  interval,
		log:       log,
	}
}

// Run publishes right away and then on every tick until ctx is canceled.
// Fetch and publish failures are logged and do not stop the loop.
func (r *Runner) Run(ctx context.Context) error {
	r.log.Infow("publishing board",
		"station", r.station.ID,
		"direction", r.direction.String(),
		"interval", r.interval,
	)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		r.PublishOnce(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// PublishOnce fetches the board and publishes it, reporting whether the
// board went out.
func (r *Runner) PublishOnce(ctx context.Context) bool {
	board, err := r.source.GetBoard(ctx, r.station, r.direction)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return false
		}
		r.log.Warnw("error fetching board", "station", r.station.ID, "error", err)
		return false
	}

	body, err := json.Marshal(board)
	if err != nil {
		r.log.Warnw("error encoding board", "station", r.station.ID, "error", err)
		return false
	}

	if err := r.publisher.Publish(ctx, body); err != nil {
		r.log.Warnw("error publishing board", "station", r.station.ID, "error", err)
		return false
	}

	r.log.Debugw("published board", "station", r.station.ID, "trains", len(board.Trains))
	return true
}
