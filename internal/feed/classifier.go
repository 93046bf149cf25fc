package feed

import (
	"strconv"
	"strings"
	"time"

	"github.com/mobil-koeln/treni-cli/internal/models"
)

// DefaultBusCode is the disruption code the feed uses for bus substitution
const DefaultBusCode = "BUS"

// unavailableDetails are the completeness flag values meaning the feed
// withholds the entry's details
var unavailableDetails = map[string]bool{
	"non disponibili": true,
	"non disponibile": true,
	"unavailable":     true,
	"0":               true,
	"false":           true,
	"no":              true,
}

// Classifier derives the real-time status of raw entries. The zero value
// behaves like NewClassifier().
type Classifier struct {
	busCode  string
	detector DepartingDetector
}

// ClassifierOption configures the Classifier
type ClassifierOption func(*Classifier)

// WithBusCode sets the disruption code that marks bus substitution
func WithBusCode(code string) ClassifierOption {
	return func(c *Classifier) {
		if code = strings.TrimSpace(code); code != "" {
			c.busCode = strings.ToUpper(code)
		}
	}
}

// WithDepartingDetector sets how "departing now" is recognized
func WithDepartingDetector(d DepartingDetector) ClassifierOption {
	return func(c *Classifier) {
		if d != nil {
			c.detector = d
		}
	}
}

// NewClassifier creates a classifier. Without options it recognizes the
// BUS disruption code and uses the feed's own departing marker.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		busCode:  DefaultBusCode,
		detector: MarkerDetector{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify derives the status of one entry. It never fails: fields that
// cannot be interpreted fall back to no delay, not departing, not replaced
// and not incomplete.
func (c *Classifier) Classify(entry models.RawEntry, now time.Time) models.Status {
	delay := ParseDelay(entry.Delay)

	detector := c.detector
	if detector == nil {
		detector = MarkerDetector{}
	}

	return models.Status{
		Delay:           delay,
		IsDelayed:       delay > 0,
		IsBlinking:      detector.DepartingNow(entry, now),
		IsReplacedByBus: c.isReplacedByBus(entry.Disruption),
		IsIncomplete:    isIncomplete(entry.Details),
	}
}

func (c *Classifier) isReplacedByBus(disruption models.Optional[string]) bool {
	code, ok := disruption.Get()
	if !ok {
		return false
	}
	busCode := c.busCode
	if busCode == "" {
		busCode = DefaultBusCode
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	return code == busCode || strings.HasPrefix(code, busCode+" ")
}

func isIncomplete(details models.Optional[string]) bool {
	flag, ok := details.Get()
	if !ok {
		return false
	}
	return unavailableDetails[strings.ToLower(strings.TrimSpace(flag))]
}

// ParseDelay interprets a delay indicator as whole minutes. It accepts a
// leading "+" and a trailing "'" or "min". Absent, non-numeric and negative
// values yield 0.
func ParseDelay(raw models.Optional[string]) int {
	s, ok := raw.Get()
	if !ok {
		return 0
	}

	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSuffix(s, "'")
	s = strings.TrimSuffix(s, "min")
	s = strings.TrimPrefix(strings.TrimSpace(s), "+")

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
