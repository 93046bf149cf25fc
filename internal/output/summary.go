package output

import (
	"fmt"

	"github.com/mobil-koeln/treni-cli/internal/models"
)

// User-facing messages shared by the table, the TUI and the HTTP API
const (
	EmptyBoardMessage = "No trains found."
	LoadFailedMessage = "Could not load information"
	BusNotice         = "This train is replaced by a bus"
	IncompleteNotice  = "The details on this canceled train are temporarily not available (the train could be replaced by bus)."
)

// TrainSummary is the one-sentence description copied to the clipboard
func TrainSummary(t models.Train) string {
	status := "on time"
	if t.IsDelayed {
		status = fmt.Sprintf("delayed by %d minutes", t.Delay)
	}
	return fmt.Sprintf("Train to %s (%s), with scheduled departure at %s from platform %s, %s",
		t.Destination, t.Number, t.Time, platformOrDash(t.Platform), status)
}

// TrainLabel is "<carrier> <number>", or the number alone for unknown carriers
func TrainLabel(t models.Train) string {
	if t.Carrier == "" {
		return t.Number
	}
	return t.Carrier + " " + t.Number
}

// DelayTag is the short delay label, empty for trains on time
func DelayTag(t models.Train) string {
	if !t.IsDelayed {
		return ""
	}
	return fmt.Sprintf("+%d'", t.Delay)
}

func platformOrDash(p string) string {
	if p == "" {
		return "-"
	}
	return p
}
