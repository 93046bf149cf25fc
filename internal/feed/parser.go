package feed

import (
	"iter"
	"strings"

	"github.com/mobil-koeln/treni-cli/internal/models"
)

const (
	fieldSeparator = "|"
	commentPrefix  = "#"
)

// Parse decodes a station-board payload into a lazily evaluated sequence of
// raw entries, in feed order. The sequence can be iterated any number of
// times and yields the same entries each time.
//
// An empty payload yields an empty sequence. A payload that is markup, or
// that has content but not a single record, fails with ErrMalformedFeed.
// Individual lines that are not records are skipped. A line is a record as
// soon as it carries one recognized key, so entries lacking a destination
// or train number reach the mapper and are counted there as dropped.
func Parse(payload string) (iter.Seq[models.RawEntry], error) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return func(func(models.RawEntry) bool) {}, nil
	}

	if strings.HasPrefix(trimmed, "<") {
		return nil, newMalformedFeedError("markup instead of records", trimmed, countLines(payload))
	}

	content, records := 0, 0
	for line := range strings.Lines(payload) {
		if isIgnored(line) {
			continue
		}
		content++
		if _, ok := parseRecord(line); ok {
			records++
			break
		}
	}
	if content > 0 && records == 0 {
		return nil, newMalformedFeedError("no records found", trimmed, countLines(payload))
	}

	return func(yield func(models.RawEntry) bool) {
		for line := range strings.Lines(payload) {
			if isIgnored(line) {
				continue
			}
			entry, ok := parseRecord(line)
			if !ok {
				continue
			}
			if !yield(entry) {
				return
			}
		}
	}, nil
}

// isIgnored reports blank and comment lines
func isIgnored(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, commentPrefix)
}

// parseRecord extracts the known fields of one line. The line is a record
// only if at least one key is recognized.
func parseRecord(line string) (models.RawEntry, bool) {
	var entry models.RawEntry
	known := false

	for _, field := range strings.Split(strings.TrimSpace(line), fieldSeparator) {
		key, value, found := strings.Cut(field, "=")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if entry.Set(key, strings.TrimSpace(value)) {
			known = true
		}
	}

	if !known {
		return models.RawEntry{}, false
	}
	return entry, true
}

func countLines(payload string) int {
	n := 0
	for range strings.Lines(payload) {
		n++
	}
	return n
}
