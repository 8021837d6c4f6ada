package domain

import "errors"

// ResultState names the active variant of a SearchResult.
type ResultState string

const (
	StateEmpty     ResultState = "empty"
	StatePending   ResultState = "pending"
	StateFailed    ResultState = "failed"
	StateNoMatches ResultState = "no_matches"
	StateFound     ResultState = "found"
)

// IsTerminal reports whether the state is a settled search outcome.
func (s ResultState) IsTerminal() bool {
	return s == StateFailed || s == StateNoMatches || s == StateFound
}

// SearchResult is the visible outcome of the search form.
// Exactly one variant is active at a time: Empty, Pending, Failed, NoMatches or Found.
// The set is closed; only this package can add variants.
type SearchResult interface {
	// State returns the variant tag
	State() ResultState

	searchResult()
}

// Empty means no search has been performed yet, or the form was reset.
type Empty struct{}

// Pending means a lookup request is in flight.
type Pending struct{}

// FailureKind distinguishes locally detected problems from lookup failures.
type FailureKind string

const (
	FailureValidation FailureKind = "validation"
	FailureTransport  FailureKind = "transport"
)

// Failed means the search could not be completed.
type Failed struct {
	// Kind tells validation failures from transport failures
	Kind FailureKind

	// Message is the short user-facing message
	Message string

	// Hint is an optional longer prompt for the user
	Hint string
}

// NoMatches means the lookup succeeded but found no connection.
type NoMatches struct {
	// Message is the service's own explanation, when it sent one
	Message string
}

// Found carries the connections returned by the lookup, in service order.
type Found struct {
	Connections   []Connection
	FromCityImage string
	ToCityImage   string
}

func (Empty) State() ResultState     { return StateEmpty }
func (Pending) State() ResultState   { return StatePending }
func (Failed) State() ResultState    { return StateFailed }
func (NoMatches) State() ResultState { return StateNoMatches }
func (Found) State() ResultState     { return StateFound }

func (Empty) searchResult()     {}
func (Pending) searchResult()   {}
func (Failed) searchResult()    {}
func (NoMatches) searchResult() {}
func (Found) searchResult()     {}

// FailedFromError converts a search error into the Failed variant.
// Validation errors keep their message; anything else becomes the generic
// service-unavailable message so technical detail never reaches the user.
func FailedFromError(err error) Failed {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return Failed{
			Kind:    FailureValidation,
			Message: ve.Message,
			Hint:    ve.Hint,
		}
	}
	return Failed{
		Kind:    FailureTransport,
		Message: MsgServiceUnavailable,
	}
}

// ResultFromLookup classifies a successful lookup into NoMatches or Found.
// The connection slice is copied so later changes by the caller cannot leak into the result.
func ResultFromLookup(lr *LookupResult) SearchResult {
	if !lr.HasMatches() {
		nm := NoMatches{}
		if lr != nil {
			nm.Message = lr.Message
		}
		return nm
	}

	connections := make([]Connection, len(lr.Connections))
	copy(connections, lr.Connections)

	return Found{
		Connections:   connections,
		FromCityImage: lr.FromCityImage,
		ToCityImage:   lr.ToCityImage,
	}
}
