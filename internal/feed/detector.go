package feed

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mobil-koeln/treni-cli/internal/models"
)

// DepartingDetector decides whether a train is at or leaving the platform
// right now. The upstream signal is feed-specific, so it is pluggable.
type DepartingDetector interface {
	DepartingNow(entry models.RawEntry, now time.Time) bool
}

// DetectorFunc adapts a function to DepartingDetector
type DetectorFunc func(entry models.RawEntry, now time.Time) bool

// DepartingNow implements DepartingDetector
func (f DetectorFunc) DepartingNow(entry models.RawEntry, now time.Time) bool {
	return f(entry, now)
}

var (
	truthyMarkers = map[string]bool{
		"1": true, "true": true, "si": true, "sì": true, "yes": true, "y": true,
	}
	departingStatuses = map[string]bool{
		"IN PARTENZA": true,
		"DEPARTING":   true,
		"0":           true,
	}
)

// MarkerDetector trusts the feed's real-time marker: the lampeggio flag, or
// a departing/zero-countdown status.
type MarkerDetector struct{}

// DepartingNow implements DepartingDetector
func (MarkerDetector) DepartingNow(entry models.RawEntry, _ time.Time) bool {
	if blink, ok := entry.Blink.Get(); ok && truthyMarkers[strings.ToLower(strings.TrimSpace(blink))] {
		return true
	}
	if status, ok := entry.Disruption.Get(); ok && departingStatuses[strings.ToUpper(strings.TrimSpace(status))] {
		return true
	}
	return false
}

// DefaultClockWindow is how long after its expected time a train counts as departing
const DefaultClockWindow = time.Minute

// ClockDetector derives "departing now" from the scheduled time plus delay:
// the train is departing during the Window that starts at its expected time.
type ClockDetector struct {
	Window   time.Duration
	Location *time.Location
}

// DepartingNow implements DepartingDetector
func (d ClockDetector) DepartingNow(entry models.RawEntry, now time.Time) bool {
	raw, ok := entry.Time.Get()
	if !ok {
		return false
	}
	hour, minute, ok := parseClock(raw)
	if !ok {
		return false
	}

	loc := d.Location
	if loc == nil {
		loc = now.Location()
	}
	window := d.Window
	if window <= 0 {
		window = DefaultClockWindow
	}

	local := now.In(loc)
	scheduled := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)

	// The feed carries no date; pick the occurrence closest to now
	if diff := scheduled.Sub(local); diff > 12*time.Hour {
		scheduled = scheduled.AddDate(0, 0, -1)
	} else if diff < -12*time.Hour {
		scheduled = scheduled.AddDate(0, 0, 1)
	}

	expected := scheduled.Add(time.Duration(ParseDelay(entry.Delay)) * time.Minute)
	elapsed := local.Sub(expected)
	return elapsed >= 0 && elapsed <= window
}

// parseClock parses "HH:MM" or "HH.MM"
func parseClock(s string) (int, int, bool) {
	s = strings.TrimSpace(s)
	sep := strings.IndexAny(s, ":.")
	if sep <= 0 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(s[:sep])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(s[sep+1:])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// AnyDetector reports departing when any of the detectors does
func AnyDetector(detectors ...DepartingDetector) DepartingDetector {
	return DetectorFunc(func(entry models.RawEntry, now time.Time) bool {
		for _, d := range detectors {
			if d.DepartingNow(entry, now) {
				return true
			}
		}
		return false
	})
}

// ParseDetector returns the detector for a name: marker, clock or any
func ParseDetector(name string, loc *time.Location) (DepartingDetector, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "marker":
		return MarkerDetector{}, nil
	case "clock":
		return ClockDetector{Window: DefaultClockWindow, Location: loc}, nil
	case "any":
		return AnyDetector(MarkerDetector{}, ClockDetector{Window: DefaultClockWindow, Location: loc}), nil
	}
	return nil, fmt.Errorf("unknown departing detector %q (want marker, clock or any)", name)
}
