package domain

import (
	"fmt"
	"strings"
)

// RankBy is the user's ordering preference. Ordering itself is computed by the lookup service.
type RankBy string

const (
	// RankByFastest prefers the minimum total duration
	RankByFastest RankBy = "Fastest"

	// RankByCheapest prefers the minimum airfare
	RankByCheapest RankBy = "Cheapest"
)

// DefaultRankBy is the ranking preference of a fresh search form.
const DefaultRankBy = RankByFastest

// ParseRankBy parses a ranking preference case-insensitively.
func ParseRankBy(s string) (RankBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fastest":
		return RankByFastest, nil
	case "cheapest":
		return RankByCheapest, nil
	default:
		return "", fmt.Errorf("%w: got %q, want Fastest or Cheapest", ErrInvalidRankBy, s)
	}
}

// IsValid reports whether r is one of the known preferences.
func (r RankBy) IsValid() bool {
	return r == RankByFastest || r == RankByCheapest
}

// String implements fmt.Stringer.
func (r RankBy) String() string {
	return string(r)
}

// SearchQuery is the editable search form.
type SearchQuery struct {
	FromCity string `json:"fromCity"`
	ToCity   string `json:"toCity"`
	RankBy   RankBy `json:"rankBy"`
}

// Validate checks the query before a lookup is attempted.
// Rules are evaluated in order and stop at the first failure:
// both cities must be set, then they must differ.
// Cities are compared exactly as entered.
func (q SearchQuery) Validate() error {
	if q.FromCity == "" || q.ToCity == "" {
		return NewMissingCitiesError(q)
	}
	if q.FromCity == q.ToCity {
		return NewIdenticalCitiesError()
	}
	return nil
}
