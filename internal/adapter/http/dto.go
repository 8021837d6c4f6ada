package http

// SessionStateDTO is the visible state of one search session.
type SessionStateDTO struct {
	SessionID string    `json:"sessionId" example:"4b7a8a6e-3f7d-4c8e-9d55-2c1d1f0c9a11"`
	Query     QueryDTO  `json:"query"`
	Result    ResultDTO `json:"result"`
}

// QueryDTO is the search form.
type QueryDTO struct {
	FromCity string `json:"fromCity" example:"Delhi"`
	ToCity   string `json:"toCity" example:"Goa"`
	RankBy   string `json:"rankBy" example:"Fastest" enums:"Fastest,Cheapest"`
}

// ResultDTO is the active variant of the search result.
// Only the fields of the active state are set.
type ResultDTO struct {
	// State is one of empty, pending, failed, no_matches, found
	State string `json:"state" example:"found" enums:"empty,pending,failed,no_matches,found"`

	// Failure is validation or transport (failed only)
	Failure string `json:"failure,omitempty" example:"validation"`

	// Message is the short user-facing text (failed and no_matches)
	Message string `json:"message,omitempty" example:"identical cities"`

	// Hint is a longer prompt for the user (failed only)
	Hint string `json:"hint,omitempty" example:"Departure and destination cities cannot be the same."`

	// Connections are in the order ranked by the lookup service (found only)
	Connections []ConnectionDTO `json:"connections,omitempty"`

	FromCityImage string `json:"fromCityImage,omitempty" example:"https://images.routefinder.dev/cities/delhi.jpg"`
	ToCityImage   string `json:"toCityImage,omitempty" example:"https://images.routefinder.dev/cities/goa.jpg"`
}

// ConnectionDTO is one flight connection.
type ConnectionDTO struct {
	ID       string  `json:"id" example:"1"`
	FromCity string  `json:"fromCity" example:"Delhi"`
	ToCity   string  `json:"toCity" example:"Goa"`
	Duration float64 `json:"duration" example:"2"`
	Airfare  float64 `json:"airfare" example:"4500"`
}

// CitiesResponseDTO lists the selectable cities and the default selection.
type CitiesResponseDTO struct {
	Cities          []CityDTO `json:"cities"`
	DefaultFromCity string    `json:"defaultFromCity,omitempty" example:"Delhi"`
	DefaultToCity   string    `json:"defaultToCity,omitempty" example:"Goa"`
}

// CityDTO is one selectable city.
type CityDTO struct {
	ID       string `json:"id" example:"1"`
	Name     string `json:"name" example:"Delhi"`
	ImageURL string `json:"imageUrl,omitempty" example:"https://images.routefinder.dev/cities/delhi.jpg"`
}
