package http

import (
	"github.com/airfare-routefinder/route-finder/internal/domain"
	"github.com/airfare-routefinder/route-finder/internal/usecase"
)

// ToSessionStateDTO converts a controller snapshot to the API representation.
func ToSessionStateDTO(sessionID string, state usecase.State) SessionStateDTO {
	return SessionStateDTO{
		SessionID: sessionID,
		Query:     ToQueryDTO(state.Query),
		Result:    ToResultDTO(state.Result),
	}
}

// ToQueryDTO converts the search form.
func ToQueryDTO(q domain.SearchQuery) QueryDTO {
	return QueryDTO{
		FromCity: q.FromCity,
		ToCity:   q.ToCity,
		RankBy:   q.RankBy.String(),
	}
}

// ToResultDTO converts a search result. A nil result is reported as empty.
func ToResultDTO(result domain.SearchResult) ResultDTO {
	switch r := result.(type) {
	case domain.Pending:
		return ResultDTO{State: string(r.State())}
	case domain.Failed:
		return ResultDTO{
			State:   string(r.State()),
			Failure: string(r.Kind),
			Message: r.Message,
			Hint:    r.Hint,
		}
	case domain.NoMatches:
		message := r.Message
		if message == "" {
			message = domain.MsgNoConnection
		}
		return ResultDTO{State: string(r.State()), Message: message}
	case domain.Found:
		return ResultDTO{
			State:         string(r.State()),
			Connections:   ToConnectionDTOs(r.Connections),
			FromCityImage: r.FromCityImage,
			ToCityImage:   r.ToCityImage,
		}
	default:
		return ResultDTO{State: string(domain.StateEmpty)}
	}
}

// ToConnectionDTOs converts connections, keeping their order.
func ToConnectionDTOs(connections []domain.Connection) []ConnectionDTO {
	result := make([]ConnectionDTO, 0, len(connections))
	for _, c := range connections {
		result = append(result, ConnectionDTO{
			ID:       c.ID,
			FromCity: c.FromCity,
			ToCity:   c.ToCity,
			Duration: c.DurationHours,
			Airfare:  c.Airfare,
		})
	}
	return result
}

// ToCitiesResponseDTO converts the city catalog.
func ToCitiesResponseDTO(c *domain.CityCatalog) CitiesResponseDTO {
	cities := make([]CityDTO, 0, len(c.Cities))
	for _, city := range c.Cities {
		cities = append(cities, CityDTO{
			ID:       city.ID,
			Name:     city.Name,
			ImageURL: city.ImageURL,
		})
	}
	return CitiesResponseDTO{
		Cities:          cities,
		DefaultFromCity: c.DefaultFromCity,
		DefaultToCity:   c.DefaultToCity,
	}
}
