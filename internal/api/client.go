package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/mobil-koeln/treni-cli/internal/cache"
	"github.com/mobil-koeln/treni-cli/internal/feed"
	"github.com/mobil-koeln/treni-cli/internal/models"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = 20 * time.Second

	// Retry settings
	defaultRetries     = 2
	defaultBaseBackoff = 500 * time.Millisecond
	defaultMaxBackoff  = 5 * time.Second
	backoffFactor      = 2

	userAgent = "treni-cli (+https://github.com/mobil-koeln/treni-cli)"
)

// Cache interface for caching HTTP responses
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// Client is the API client for the RFI station board
type Client struct {
	httpClient  *http.Client
	baseURL     string
	timezone    *time.Location
	cache       Cache
	logger      *zap.SugaredLogger
	mapper      *feed.Mapper
	retries     int
	baseBackoff time.Duration
	maxBackoff  time.Duration
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCache enables caching with the provided cache implementation
func WithCache(cache Cache) ClientOption {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithDefaultCache enables caching with the default file cache
func WithDefaultCache() ClientOption {
	return func(c *Client) {
		fc, err := cache.NewFileCache(cache.DefaultCacheDir(), defaultCacheTTL)
		if err == nil {
			c.cache = fc
		}
	}
}

// WithBaseURL points the client at another RFI-compatible service
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithLogger sets the logger used for data-quality and retry messages
func WithLogger(logger *zap.SugaredLogger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMapper sets the mapper, and with it the status classification rules
func WithMapper(m *feed.Mapper) ClientOption {
	return func(c *Client) {
		if m != nil {
			c.mapper = m
		}
	}
}

// WithRetries sets how many times a transient failure is retried
func WithRetries(n int) ClientOption {
	return func(c *Client) {
		if n >= 0 {
			c.retries = n
		}
	}
}

// WithBackoff sets the initial and maximum wait between retries
func WithBackoff(base, max time.Duration) ClientOption {
	return func(c *Client) {
		c.baseBackoff = base
		c.maxBackoff = max
	}
}

// NewClient creates a new API client
func NewClient(opts ...ClientOption) (*Client, error) {
	tz, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL:     BaseURL,
		timezone:    tz,
		logger:      zap.NewNop().Sugar(),
		mapper:      feed.NewMapper(nil),
		retries:     defaultRetries,
		baseBackoff: defaultBaseBackoff,
		maxBackoff:  defaultMaxBackoff,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Timezone returns the client's timezone
func (c *Client) Timezone() *time.Location {
	return c.timezone
}

// GetDepartures fetches the departures board for a station
func (c *Client) GetDepartures(ctx context.Context, station models.Station) (*models.Board, error) {
	return c.GetBoard(ctx, station, models.Departures)
}

// GetArrivals fetches the arrivals board for a station
func (c *Client) GetArrivals(ctx context.Context, station models.Station) (*models.Board, error) {
	return c.GetBoard(ctx, station, models.Arrivals)
}

// GetBoard fetches and decodes a station board. Entries the feed could not
// describe are dropped and logged; a payload that is not a board at all
// fails with feed.ErrMalformedFeed.
func (c *Client) GetBoard(ctx context.Context, station models.Station, dir models.Direction) (*models.Board, error) {
	target, err := BuildQuery(c.baseURL, station.ID, dir)
	if err != nil {
		return nil, err
	}

	body, cached, err := c.fetch(ctx, target.URL)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(c.timezone)
	trains, dropped, err := feed.Decode(string(body), now, c.mapper)
	if err != nil {
		c.logger.Warnw("unusable board payload", "station", target.StationID, "direction", dir.String(), "error", err)
		return nil, fmt.Errorf("failed to parse %s board: %w", dir, err)
	}

	// Only well-formed payloads are cached
	if !cached && c.cache != nil {
		_ = c.cache.Set(target.URL, body)
	}

	if dropped > 0 {
		c.logger.Warnw("dropped board entries without train number or destination",
			"station", target.StationID, "direction", dir.String(), "dropped", dropped)
	}
	c.logger.Debugw("board fetched",
		"station", target.StationID, "direction", dir.String(), "trains", len(trains), "cached", cached)

	return &models.Board{
		Station:   station,
		Direction: dir,
		Trains:    trains,
		Dropped:   dropped,
		FetchedAt: now,
	}, nil
}

// GetBoardRaw fetches a station board and returns the payload undecoded
func (c *Client) GetBoardRaw(ctx context.Context, stationID string, dir models.Direction) ([]byte, error) {
	target, err := BuildQuery(c.baseURL, stationID, dir)
	if err != nil {
		return nil, err
	}
	body, _, err := c.fetch(ctx, target.URL)
	return body, err
}

// fetch serves reqURL from the cache or the network, retrying transient
// failures with exponential backoff
func (c *Client) fetch(ctx context.Context, reqURL string) ([]byte, bool, error) {
	if c.cache != nil {
		if data, ok := c.cache.Get(reqURL); ok {
			return data, true, nil
		}
	}

	backoff := c.baseBackoff
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			c.logger.Infow("retrying board request", "attempt", attempt, "backoff", backoff, "error", lastErr)
			select {
			case <-ctx.Done():
				return nil, false, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
			case <-time.After(backoff):
			}

			// Exponential backoff with cap
			backoff *= backoffFactor
			if backoff > c.maxBackoff {
				backoff = c.maxBackoff
			}
		}

		body, err := c.doRequest(ctx, reqURL)
		if err == nil {
			return body, false, nil
		}
		lastErr = err
		if !isRetryable(err) {
			break
		}
	}

	return nil, false, lastErr
}

// doRequest performs a single HTTP GET request
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "text/plain, */*")
	req.Header.Set("Accept-Language", "it-IT,it;q=0.9,en;q=0.8")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Check for context errors
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
		}
		// The client's own timeout leaves ctx untouched
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Handle non-OK status codes with proper error types
	if resp.StatusCode != http.StatusOK {
		endpoint := extractEndpoint(reqURL)
		return nil, NewAPIError(resp.StatusCode, resp.Status, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// isRetryable reports transport failures and temporary HTTP errors
func isRetryable(err error) bool {
	if errors.Is(err, ErrTimeout) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// extractEndpoint extracts the endpoint path from a full URL
func extractEndpoint(fullURL string) string {
	u, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}
	return u.Path
}
