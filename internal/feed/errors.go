package feed

import (
	"errors"
	"fmt"
)

// ErrMalformedFeed indicates the payload is not a station board at all,
// e.g. an HTML error page served during an upstream outage.
var ErrMalformedFeed = errors.New("malformed feed")

const snippetLen = 40

// MalformedFeedError describes why a payload was rejected
type MalformedFeedError struct {
	Reason  string
	Snippet string
	Lines   int
}

func (e *MalformedFeedError) Error() string {
	return fmt.Sprintf("malformed feed: %s (%d lines, starts with %q)", e.Reason, e.Lines, e.Snippet)
}

// Is implements errors.Is for MalformedFeedError
func (e *MalformedFeedError) Is(target error) bool {
	return target == ErrMalformedFeed
}

func newMalformedFeedError(reason, payload string, lines int) *MalformedFeedError {
	snippet := []rune(payload)
	if len(snippet) > snippetLen {
		snippet = snippet[:snippetLen]
	}
	return &MalformedFeedError{
		Reason:  reason,
		Snippet: string(snippet),
		Lines:   lines,
	}
}
