package api

const (
	// BaseURL is the base URL of the RFI arrivals/departures service
	BaseURL = "https://iechub.rfi.it/ArriviPartenze/ArrivalsDepartures"

	// EndpointBoard returns the station board
	// Required params: placeId, arrivals (True|False)
	EndpointBoard = "/Monitor"
)

// Query parameter names for EndpointBoard
const (
	ParamPlaceID  = "placeId"
	ParamArrivals = "arrivals"
)
