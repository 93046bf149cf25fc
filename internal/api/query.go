package api

import (
	"net/url"
	"strings"

	"github.com/mobil-koeln/treni-cli/internal/models"
)

// RequestTarget is a fully built station-board request
type RequestTarget struct {
	URL       string
	StationID string
	Direction models.Direction
}

// BuildQuery builds the board request for a station and direction. It is
// pure: the same inputs always give the same target. An empty station id
// or base URL fails with ErrInvalidQuery before any network activity.
func BuildQuery(baseURL, stationID string, dir models.Direction) (RequestTarget, error) {
	stationID = strings.TrimSpace(stationID)
	if stationID == "" {
		return RequestTarget{}, ErrMissingField("stationId")
	}

	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return RequestTarget{}, ErrInvalidFormat("baseURL", "absolute URL")
	}

	arrivals := "False"
	if dir == models.Arrivals {
		arrivals = "True"
	}

	params := url.Values{}
	params.Set(ParamPlaceID, stationID)
	params.Set(ParamArrivals, arrivals)

	return RequestTarget{
		URL:       strings.TrimSuffix(base.String(), "/") + EndpointBoard + "?" + params.Encode(),
		StationID: stationID,
		Direction: dir,
	}, nil
}
