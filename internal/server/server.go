// Package server exposes station boards over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/mobil-koeln/treni-cli/internal/api"
	"github.com/mobil-koeln/treni-cli/internal/feed"
	"github.com/mobil-koeln/treni-cli/internal/models"
	"github.com/mobil-koeln/treni-cli/internal/stations"
)

// DefaultAddr is the listen address used when none is given
const DefaultAddr = ":3000"

// BoardSource fetches station boards.
type BoardSource interface {
	GetBoard(ctx context.Context, station models.Station, dir models.Direction) (*models.Board, error)
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Server serves boards and the station catalog.
type Server struct {
	app     *fiber.App
	source  BoardSource
	catalog *stations.Catalog
	log     *zap.SugaredLogger
	version string
}

// New creates a server with its routes registered. A nil catalog means the
// embedded one, a nil logger discards output.
func New(source BoardSource, catalog *stations.Catalog, log *zap.SugaredLogger, version string) *Server {
	if catalog == nil {
		catalog = stations.Default()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               "treni",
			DisableStartupMessage: true,
		}),
		source:  source,
		catalog: catalog,
		log:     log,
		version: version,
	}

	s.app.Use(s.logRequests)
	s.app.Use(cors.New())

	s.app.Get("/health", s.getHealth)
	s.app.Get("/stations", s.getStations)
	s.app.Get("/stations/:id/departures", s.boardHandler(models.Departures))
	s.app.Get("/stations/:id/arrivals", s.boardHandler(models.Arrivals))

	return s
}

// App returns the underlying fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until ctx is canceled.
func (s *Server) Listen(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(addr)
	}()
	s.log.Infow("http api listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Infow("shutting down http api")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.app.ShutdownWithContext(shutdownCtx)
	}
}

func (s *Server) logRequests(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	if c.Path() != "/health" {
		s.log.Infow("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		)
	}
	return err
}

func (s *Server) getHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:  "healthy",
		Version: s.version,
	})
}

func (s *Server) getStations(c *fiber.Ctx) error {
	found := s.catalog.Search(c.Query("q"))
	if found == nil {
		found = []models.Station{}
	}
	return c.JSON(found)
}

func (s *Server) boardHandler(dir models.Direction) fiber.Handler {
	return func(c *fiber.Ctx) error {
		station, err := s.catalog.Resolve(c.Params("id"))
		if err != nil {
			var ambiguous *stations.AmbiguousError
			if errors.As(err, &ambiguous) {
				return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
					Error:   "Bad Request",
					Message: err.Error(),
				})
			}
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error:   "Not Found",
				Message: err.Error(),
			})
		}

		board, err := s.source.GetBoard(c.UserContext(), station, dir)
		if err != nil {
			status, title := errorStatus(err)
			s.log.Warnw("board request failed", "station", station.ID, "direction", dir.String(), "error", err)
			return c.Status(status).JSON(ErrorResponse{
				Error:   title,
				Message: err.Error(),
			})
		}

		return c.JSON(board)
	}
}

// errorStatus maps a board error to its HTTP status
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, api.ErrInvalidQuery):
		return http.StatusBadRequest, "Bad Request"
	case errors.Is(err, api.ErrTimeout):
		return http.StatusGatewayTimeout, "Gateway Timeout"
	case errors.Is(err, feed.ErrMalformedFeed):
		return http.StatusBadGateway, "Malformed Feed"
	default:
		return http.StatusBadGateway, "Bad Gateway"
	}
}
