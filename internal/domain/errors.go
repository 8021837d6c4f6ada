package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the route finder.
var (
	// ErrMissingCities is returned when the departure or destination city is empty.
	ErrMissingCities = errors.New("missing cities")

	// ErrIdenticalCities is returned when departure and destination are the same city.
	ErrIdenticalCities = errors.New("identical cities")

	// ErrInvalidRankBy is returned for an unknown ranking preference.
	ErrInvalidRankBy = errors.New("invalid rank preference")

	// ErrServiceUnavailable is the root of every lookup transport failure.
	ErrServiceUnavailable = errors.New("connection lookup service unavailable")

	// ErrMalformedResponse is returned when a 2xx lookup response cannot be understood.
	ErrMalformedResponse = errors.New("malformed lookup response")

	// ErrInvalidCatalog is returned when the city catalog violates its rules.
	ErrInvalidCatalog = errors.New("invalid city catalog")

	// ErrSessionNotFound is returned when a search session does not exist or has expired.
	ErrSessionNotFound = errors.New("search session not found")
)

// User-facing texts shown for failed searches.
const (
	// MsgMissingCitiesHint explains how to fix ErrMissingCities.
	MsgMissingCitiesHint = "Please select both departure and destination cities."

	// MsgIdenticalCitiesHint explains how to fix ErrIdenticalCities.
	MsgIdenticalCitiesHint = "Departure and destination cities cannot be the same."

	// MsgServiceUnavailable is shown for every transport failure; technical detail is never exposed.
	MsgServiceUnavailable = "The flight network is currently unavailable. Please try again later."

	// MsgNoConnection is shown when the lookup found nothing and sent no message of its own.
	MsgNoConnection = "No connection found between the selected cities."
)

// ValidationError is a locally detected problem with the search form.
// It never reaches the network.
type ValidationError struct {
	// Field names the offending form field(s)
	Field string

	// Message is the short, user-facing description
	Message string

	// Hint is a longer prompt telling the user what to change
	Hint string

	// Err is the sentinel this error matches with errors.Is
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError that matches err.
func NewValidationError(field string, err error, hint string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: err.Error(),
		Hint:    hint,
		Err:     err,
	}
}

// NewMissingCitiesError reports which city fields of q are empty.
func NewMissingCitiesError(q SearchQuery) *ValidationError {
	field := "fromCity,toCity"
	switch {
	case q.FromCity == "" && q.ToCity != "":
		field = "fromCity"
	case q.FromCity != "" && q.ToCity == "":
		field = "toCity"
	}
	return NewValidationError(field, ErrMissingCities, MsgMissingCitiesHint)
}

// NewIdenticalCitiesError reports that both cities are the same.
func NewIdenticalCitiesError() *ValidationError {
	return NewValidationError("toCity", ErrIdenticalCities, MsgIdenticalCitiesHint)
}

// TransportError describes a failed exchange with the lookup service:
// the network was unreachable, the status was not 2xx, or the payload was malformed.
type TransportError struct {
	// Op is the operation that failed (e.g., "send request", "decode response")
	Op string

	// StatusCode is the HTTP status when one was received, otherwise 0
	StatusCode int

	// Err is the underlying cause
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("lookup %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("lookup %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes every TransportError match ErrServiceUnavailable.
func (e *TransportError) Is(target error) bool {
	return target == ErrServiceUnavailable
}

// NewTransportError creates a TransportError for op.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

// NewStatusError creates a TransportError for a non-2xx response.
func NewStatusError(statusCode int) *TransportError {
	return &TransportError{
		Op:         "read response",
		StatusCode: statusCode,
		Err:        fmt.Errorf("unexpected status %d", statusCode),
	}
}

// WrapInvalidCatalog creates an ErrInvalidCatalog error with a formatted message.
func WrapInvalidCatalog(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, fmt.Sprintf(format, args...))
}

// IsValidationError checks if err is a search form validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsServiceUnavailable checks if err is a lookup transport failure.
func IsServiceUnavailable(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}

// IsSessionNotFound checks if err is or wraps ErrSessionNotFound.
func IsSessionNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}
