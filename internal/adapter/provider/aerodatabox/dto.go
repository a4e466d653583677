package aerodatabox

// boardResponse is the departure board payload returned by the AeroDataBox
// airport departures endpoint. Only the fields the normalizer reads are
// declared.
type boardResponse struct {
	Departures []boardFlight `json:"departures"`
}

// boardFlight is a single scheduled departure on the board.
type boardFlight struct {
	Departure       boardMovement `json:"departure"`
	Arrival         boardMovement `json:"arrival"`
	Number          string        `json:"number"`
	Airline         boardAirline  `json:"airline"`
	CodeshareStatus string        `json:"codeshareStatus,omitempty"`
}

// boardMovement describes one end of a flight leg. Any field may be absent
// in the upstream payload.
type boardMovement struct {
	Airport       *boardAirport       `json:"airport,omitempty"`
	ScheduledTime *boardScheduledTime `json:"scheduledTime,omitempty"`
}

type boardAirport struct {
	IATA string `json:"iata,omitempty"`
	Name string `json:"name,omitempty"`
}

type boardScheduledTime struct {
	UTC string `json:"utc,omitempty"`
}

type boardAirline struct {
	Name string `json:"name,omitempty"`
}
