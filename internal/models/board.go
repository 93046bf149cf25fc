package models

import (
	"strings"
	"time"
)

// Board is one fetched and mapped station board
type Board struct {
	Station   Station   `json:"station"`
	Direction Direction `json:"direction"`
	Trains    []Train   `json:"trains"`
	Dropped   int       `json:"dropped"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// IsEmpty reports whether the board has no trains
func (b *Board) IsEmpty() bool {
	return b == nil || len(b.Trains) == 0
}

// Filter returns the trains matching platform (exact, case-insensitive) and
// destination (substring, case-insensitive). Empty criteria match everything.
func (b *Board) Filter(platform, destination string) []Train {
	if b == nil {
		return nil
	}
	return FilterTrains(b.Trains, platform, destination)
}

// FilterTrains filters trains by platform and/or destination
func FilterTrains(trains []Train, platform, destination string) []Train {
	if platform == "" && destination == "" {
		return trains
	}

	filtered := make([]Train, 0, len(trains))
	for _, t := range trains {
		// Platform filter: exact match (case-insensitive)
		if platform != "" && !strings.EqualFold(t.Platform, platform) {
			continue
		}
		// Destination filter: substring match (case-insensitive)
		if destination != "" && !strings.Contains(strings.ToLower(t.Destination), strings.ToLower(destination)) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}
