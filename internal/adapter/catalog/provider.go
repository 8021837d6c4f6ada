// Package catalog supplies the city catalog read once at startup.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/airfare-routefinder/route-finder/internal/adapter/lookup"
	"github.com/airfare-routefinder/route-finder/internal/domain"
)

// catalogFile is the on-disk JSON layout of a catalog.
type catalogFile struct {
	Cities []struct {
		ID       lookup.FlexibleID `json:"id"`
		Name     string            `json:"name"`
		ImageURL string            `json:"imageUrl"`
	} `json:"cities"`
	DefaultFromCity string `json:"defaultFromCity"`
	DefaultToCity   string `json:"defaultToCity"`
}

// Overrides replace the default selection of a catalog when set.
type Overrides struct {
	DefaultFromCity string
	DefaultToCity   string
}

// FileProvider reads the catalog from a JSON file.
type FileProvider struct {
	path      string
	overrides Overrides
}

// NewFileProvider creates a provider for the JSON file at path.
func NewFileProvider(path string, overrides Overrides) *FileProvider {
	return &FileProvider{path: path, overrides: overrides}
}

// Catalog implements domain.CityCatalogProvider.
func (p *FileProvider) Catalog(ctx context.Context) (*domain.CityCatalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", p.path, err)
	}

	var raw catalogFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domain.WrapInvalidCatalog("parse %s: %v", p.path, err)
	}

	c := &domain.CityCatalog{
		Cities:          make([]domain.City, 0, len(raw.Cities)),
		DefaultFromCity: raw.DefaultFromCity,
		DefaultToCity:   raw.DefaultToCity,
	}
	for _, city := range raw.Cities {
		c.Cities = append(c.Cities, domain.City{
			ID:       string(city.ID),
			Name:     city.Name,
			ImageURL: city.ImageURL,
		})
	}

	return finalize(c, p.overrides)
}

// StaticProvider serves a catalog held in memory.
type StaticProvider struct {
	catalog   domain.CityCatalog
	overrides Overrides
}

// NewStaticProvider creates a provider for an in-memory catalog.
func NewStaticProvider(c domain.CityCatalog, overrides Overrides) *StaticProvider {
	cities := make([]domain.City, len(c.Cities))
	copy(cities, c.Cities)
	c.Cities = cities
	return &StaticProvider{catalog: c, overrides: overrides}
}

// Catalog implements domain.CityCatalogProvider.
func (p *StaticProvider) Catalog(_ context.Context) (*domain.CityCatalog, error) {
	c := p.catalog
	c.Cities = make([]domain.City, len(p.catalog.Cities))
	copy(c.Cities, p.catalog.Cities)
	return finalize(&c, p.overrides)
}

// finalize applies overrides and validates the result.
// Defaults may name a city outside the list; the form simply starts with that value.
func finalize(c *domain.CityCatalog, o Overrides) (*domain.CityCatalog, error) {
	if o.DefaultFromCity != "" {
		c.DefaultFromCity = o.DefaultFromCity
	}
	if o.DefaultToCity != "" {
		c.DefaultToCity = o.DefaultToCity
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Ensure providers implement domain.CityCatalogProvider at compile time.
var (
	_ domain.CityCatalogProvider = (*FileProvider)(nil)
	_ domain.CityCatalogProvider = (*StaticProvider)(nil)
)
