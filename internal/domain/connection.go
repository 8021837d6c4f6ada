package domain

// Connection is one candidate flight itinerary between two cities.
// It is produced entirely by the lookup service; the core only displays it.
type Connection struct {
	// ID is the service's identifier for the connection
	ID string `json:"id"`

	// FromCity is the departure city name
	FromCity string `json:"fromCity"`

	// ToCity is the destination city name
	ToCity string `json:"toCity"`

	// DurationHours is the total travel time in hours
	DurationHours float64 `json:"duration"`

	// Airfare is the fare amount in the service's currency
	Airfare float64 `json:"airfare"`
}

// LookupResult is a successful answer from the ConnectionLookupService.
type LookupResult struct {
	// Connections is the ranked list returned by the service, in service order
	Connections []Connection

	// FromCityImage is an image reference for the departure city
	FromCityImage string

	// ToCityImage is an image reference for the destination city
	ToCityImage string

	// NoConnection is set when the service explicitly signalled that no connection exists
	NoConnection bool

	// Message is the service's accompanying text for NoConnection
	Message string
}

// HasMatches reports whether the result carries at least one connection
// and no explicit "no connection" signal.
func (r *LookupResult) HasMatches() bool {
	return r != nil && !r.NoConnection && len(r.Connections) > 0
}
