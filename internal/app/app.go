// Package app wires configuration into the route finder's collaborators.
// Both the HTTP server and the terminal client start from here.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/airfare-routefinder/route-finder/internal/adapter/catalog"
	"github.com/airfare-routefinder/route-finder/internal/adapter/lookup"
	"github.com/airfare-routefinder/route-finder/internal/config"
	"github.com/airfare-routefinder/route-finder/internal/domain"
	"github.com/airfare-routefinder/route-finder/internal/infrastructure/logger"
	"github.com/airfare-routefinder/route-finder/internal/usecase"
)

// Components are the long-lived collaborators shared by every search controller.
type Components struct {
	Catalog *domain.CityCatalog
	Lookup  domain.ConnectionLookupService

	lookupTimeout time.Duration
	log           *logger.Logger
}

// LoggerConfig maps the logging settings of cfg onto the logger package.
func LoggerConfig(cfg *config.Config) logger.Config {
	lc := logger.DefaultConfig()
	lc.Level = cfg.Logging.Level
	lc.Format = cfg.Logging.Format
	lc.EnableCaller = cfg.IsDevelopment()
	return lc
}

// Build loads the city catalog from CATALOG_FILE and creates the lookup client.
func Build(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Components, error) {
	provider := catalog.NewFileProvider(cfg.Catalog.File, catalog.Overrides{
		DefaultFromCity: cfg.Catalog.DefaultFrom,
		DefaultToCity:   cfg.Catalog.DefaultTo,
	})
	return BuildWithCatalog(ctx, cfg, provider, log)
}

// BuildWithCatalog is Build with the catalog taken from provider.
func BuildWithCatalog(ctx context.Context, cfg *config.Config, provider domain.CityCatalogProvider, log *logger.Logger) (*Components, error) {
	if log == nil {
		log = logger.Nop()
	}

	cities, err := provider.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load city catalog: %w", err)
	}

	client, err := lookup.NewClient(lookup.Config{
		BaseURL:    cfg.Lookup.BaseURL,
		SearchPath: cfg.Lookup.SearchPath,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("create lookup client: %w", err)
	}

	log.Info().
		Int("cities", len(cities.Cities)).
		Str("default_from", cities.DefaultFromCity).
		Str("default_to", cities.DefaultToCity).
		Str("lookup_url", cfg.Lookup.BaseURL).
		Msg("components ready")

	return &Components{
		Catalog:       cities,
		Lookup:        client,
		lookupTimeout: cfg.Lookup.Timeout,
		log:           log,
	}, nil
}

// NewController creates a controller seeded with the catalog defaults.
// observer may be nil.
func (c *Components) NewController(observer usecase.SearchObserver) *usecase.SearchController {
	opts := []usecase.ControllerOption{usecase.WithLogger(c.log.WithComponent(logger.ComponentSearch))}
	if observer != nil {
		opts = append(opts, usecase.WithObserver(observer))
	}
	return usecase.NewSearchController(c.Lookup, c.Catalog.Cities, usecase.ControllerConfig{
		DefaultFromCity: c.Catalog.DefaultFromCity,
		DefaultToCity:   c.Catalog.DefaultToCity,
		LookupTimeout:   c.lookupTimeout,
	}, opts...)
}

// ControllerFactory returns a factory for session controllers sharing observer.
func (c *Components) ControllerFactory(observer usecase.SearchObserver) usecase.ControllerFactory {
	return func() *usecase.SearchController {
		return c.NewController(observer)
	}
}
