package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// ConnectionLookupService is the external capability that finds connections
// between two cities, ranked by the requested preference.
type ConnectionLookupService interface {
	// Find looks up connections for the query.
	// A successful call returns a LookupResult, which may be empty or carry an explicit
	// "no connection" signal. Transport failures return an error matching ErrServiceUnavailable.
	Find(ctx context.Context, query SearchQuery) (*LookupResult, error)
}

// CityCatalogProvider supplies the initial city list and default selection.
// It is read once at startup and never refreshed by the core.
type CityCatalogProvider interface {
	// Catalog returns the city catalog.
	Catalog(ctx context.Context) (*CityCatalog, error)
}
