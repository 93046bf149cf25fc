package feed

import (
	"iter"
	"strings"
	"time"

	"github.com/mobil-koeln/treni-cli/internal/models"
)

// Mapper assembles trains from raw entries. The zero value uses a default
// classifier.
type Mapper struct {
	classifier *Classifier
}

// NewMapper creates a mapper. A nil classifier uses NewClassifier defaults.
func NewMapper(classifier *Classifier) *Mapper {
	if classifier == nil {
		classifier = NewClassifier()
	}
	return &Mapper{classifier: classifier}
}

// Map converts entries to trains in feed order. Entries without a train
// number or destination are dropped and counted.
func (m *Mapper) Map(entries iter.Seq[models.RawEntry], now time.Time) (trains []models.Train, dropped int) {
	trains = make([]models.Train, 0)
	for entry := range entries {
		train, ok := m.MapEntry(entry, now)
		if !ok {
			dropped++
			continue
		}
		trains = append(trains, train)
	}
	return trains, dropped
}

// MapEntry converts a single entry. It returns false when the entry lacks a
// train number or destination.
func (m *Mapper) MapEntry(entry models.RawEntry, now time.Time) (models.Train, bool) {
	number := strings.TrimSpace(entry.Number.OrElse(""))
	destination := strings.TrimSpace(entry.Destination.OrElse(""))
	if number == "" || destination == "" {
		return models.Train{}, false
	}

	classifier := m.classifier
	if classifier == nil {
		classifier = NewClassifier()
	}
	status := classifier.Classify(entry, now)

	var icon string
	if code, ok := IconFor(entry.Category.OrElse("")); ok {
		icon = code
	}

	return models.Train{
		Number:          number,
		Destination:     destination,
		Time:            entry.Time.OrElse(""),
		Platform:        entry.Platform.OrElse(""),
		Carrier:         entry.Carrier.OrElse(""),
		Delay:           status.Delay,
		IsDelayed:       status.IsDelayed,
		IsBlinking:      status.IsBlinking,
		IsReplacedByBus: status.IsReplacedByBus,
		IsIncomplete:    status.IsIncomplete,
		Icon:            icon,
	}, true
}

// Decode parses a payload and maps it in one step. It returns the trains,
// the number of dropped entries, and ErrMalformedFeed for unusable payloads.
func Decode(payload string, now time.Time, m *Mapper) ([]models.Train, int, error) {
	entries, err := Parse(payload)
	if err != nil {
		return nil, 0, err
	}
	if m == nil {
		m = NewMapper(nil)
	}
	trains, dropped := m.Map(entries, now)
	return trains, dropped, nil
}
