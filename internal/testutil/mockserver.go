package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockServer wraps httptest.Server with convenience methods
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

// NewMockServer creates a new mock HTTP server
func NewMockServer(handler http.HandlerFunc) *MockServer {
	ms := &MockServer{}

	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ms.mu.Lock()
		ms.requests = append(ms.requests, r)
		ms.mu.Unlock()
		handler(w, r)
	}))

	return ms
}

// NewFeedServer serves body with the given status on every request
func NewFeedServer(status int, body string) *MockServer {
	return NewMockServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// NewSequenceServer answers each request with the next status in statuses,
// repeating the last one once exhausted. Successful responses carry body.
func NewSequenceServer(body string, statuses ...int) *MockServer {
	var (
		mu   sync.Mutex
		next int
	)
	return NewMockServer(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		status := http.StatusOK
		if len(statuses) > 0 {
			status = statuses[min(next, len(statuses)-1)]
		}
		next++
		mu.Unlock()

		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(body))
		}
	})
}

// Requests returns a copy of the recorded requests
func (ms *MockServer) Requests() []*http.Request {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]*http.Request(nil), ms.requests...)
}

// LastRequest returns the most recent request
func (ms *MockServer) LastRequest() *http.Request {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if len(ms.requests) == 0 {
		return nil
	}
	return ms.requests[len(ms.requests)-1]
}

// RequestCount returns the number of requests received
func (ms *MockServer) RequestCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.requests)
}

// Reset clears the request history
func (ms *MockServer) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.requests = nil
}
