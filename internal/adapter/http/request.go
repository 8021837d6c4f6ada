package http

import (
	"fmt"
	"unicode/utf8"

	"github.com/airfare-routefinder/route-finder/internal/domain"
)

// maxCityNameLength bounds city names accepted from clients.
const maxCityNameLength = 100

// UpdateQueryRequest is the body of PATCH /api/v1/sessions/:id/query.
// Omitted fields keep their current value; an empty string clears a city.
type UpdateQueryRequest struct {
	// FromCity is the departure city name (e.g., "Delhi")
	FromCity *string `json:"fromCity,omitempty" example:"Delhi"`

	// ToCity is the destination city name (e.g., "Goa")
	ToCity *string `json:"toCity,omitempty" example:"Goa"`

	// RankBy is Fastest or Cheapest, case-insensitive
	RankBy *string `json:"rankBy,omitempty" example:"Cheapest"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add appends a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API responses.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the request fields.
// Whether the cities form a valid search is decided when the search runs, not here.
func (r *UpdateQueryRequest) Validate() error {
	errs := &ValidationErrors{}

	validateCity(errs, "fromCity", r.FromCity)
	validateCity(errs, "toCity", r.ToCity)

	if r.RankBy != nil {
		if _, err := domain.ParseRankBy(*r.RankBy); err != nil {
			errs.Add("rankBy", "must be Fastest or Cheapest")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// IsEmpty reports whether the request changes nothing.
func (r *UpdateQueryRequest) IsEmpty() bool {
	return r.FromCity == nil && r.ToCity == nil && r.RankBy == nil
}

func validateCity(errs *ValidationErrors, field string, value *string) {
	if value == nil {
		return
	}
	if utf8.RuneCountInString(*value) > maxCityNameLength {
		errs.Add(field, fmt.Sprintf("must be at most %d characters", maxCityNameLength))
	}
}
