package models

import (
	"fmt"
	"strings"
)

// Direction selects the arrivals or departures board
type Direction int

const (
	// Departures is the default board
	Departures Direction = iota
	// Arrivals shows trains arriving at the station
	Arrivals
)

func (d Direction) String() string {
	if d == Arrivals {
		return "arrivals"
	}
	return "departures"
}

// ParseDirection parses a direction name. Unknown values yield Departures and false.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "departures", "departure", "partenze", "dep", "":
		return Departures, true
	case "arrivals", "arrival", "arrivi", "arr":
		return Arrivals, true
	}
	return Departures, false
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, ok := ParseDirection(string(text))
	if !ok {
		return fmt.Errorf("unknown direction %q", text)
	}
	*d = parsed
	return nil
}

// Status is the derived real-time state of one board entry
type Status struct {
	Delay           int  `json:"delay"`
	IsDelayed       bool `json:"isDelayed"`
	IsBlinking      bool `json:"isBlinking"`
	IsReplacedByBus bool `json:"isReplacedByBus"`
	IsIncomplete    bool `json:"isIncomplete"`
}

// Train is a single entry of a station board
type Train struct {
	Number          string `json:"number"`
	Destination     string `json:"destination"`
	Time            string `json:"time"`
	Platform        string `json:"platform"`
	Carrier         string `json:"carrier"`
	Delay           int    `json:"delay"`
	IsDelayed       bool   `json:"isDelayed"`
	IsBlinking      bool   `json:"isBlinking"`
	IsReplacedByBus bool   `json:"isReplacedByBus"`
	IsIncomplete    bool   `json:"isIncomplete"`
	Icon            string `json:"icon,omitempty"` // empty when the service type is unknown
}

// Status returns the derived state of the train
func (t Train) Status() Status {
	return Status{
		Delay:           t.Delay,
		IsDelayed:       t.IsDelayed,
		IsBlinking:      t.IsBlinking,
		IsReplacedByBus: t.IsReplacedByBus,
		IsIncomplete:    t.IsIncomplete,
	}
}
