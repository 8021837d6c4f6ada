package lookup

import (
	"github.com/airfare-routefinder/route-finder/internal/domain"
)

// normalize converts a decoded service response to a domain LookupResult.
// A message key always means "no connection", whatever else the body carries.
func normalize(resp SearchResponse) (*domain.LookupResult, error) {
	if resp.HasMessage() {
		return &domain.LookupResult{
			NoConnection: true,
			Message:      resp.MessageText(),
		}, nil
	}

	if resp.Connections == nil {
		return nil, domain.NewTransportError("decode response", domain.ErrMalformedResponse)
	}

	return &domain.LookupResult{
		Connections:   normalizeConnections(*resp.Connections),
		FromCityImage: resp.FromCityImage,
		ToCityImage:   resp.ToCityImage,
	}, nil
}

// normalizeConnections keeps service order and values unchanged.
func normalizeConnections(dtos []ConnectionDTO) []domain.Connection {
	result := make([]domain.Connection, 0, len(dtos))
	for _, c := range dtos {
		result = append(result, domain.Connection{
			ID:            string(c.ID),
			FromCity:      c.FromCity,
			ToCity:        c.ToCity,
			DurationHours: c.Duration,
			Airfare:       c.Airfare,
		})
	}
	return result
}
