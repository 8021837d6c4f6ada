// Package domain contains the core entities and rules of the route finder.
// It has no knowledge of HTTP, terminals or configuration; adapters translate to and from it.
package domain

// City is a selectable departure or destination city.
// Cities are supplied once by a CityCatalogProvider and never mutated.
type City struct {
	// ID is the catalog identifier of the city
	ID string `json:"id"`

	// Name is the display name, also used as the lookup key (e.g., "Delhi")
	Name string `json:"name"`

	// ImageURL points to a picture of the city
	ImageURL string `json:"imageUrl,omitempty"`
}

// CityCatalog is the initial list of cities plus an optional default selection.
type CityCatalog struct {
	// Cities is the ordered list offered in selection menus
	Cities []City `json:"cities"`

	// DefaultFromCity pre-selects the departure city (may be empty)
	DefaultFromCity string `json:"defaultFromCity,omitempty"`

	// DefaultToCity pre-selects the destination city (may be empty)
	DefaultToCity string `json:"defaultToCity,omitempty"`
}

// Names returns the city names in catalog order.
func (c *CityCatalog) Names() []string {
	names := make([]string, 0, len(c.Cities))
	for _, city := range c.Cities {
		names = append(names, city.Name)
	}
	return names
}

// Find returns the city with the given name.
func (c *CityCatalog) Find(name string) (City, bool) {
	for _, city := range c.Cities {
		if city.Name == name {
			return city, true
		}
	}
	return City{}, false
}

// Validate checks that every city has a unique, non-empty name.
func (c *CityCatalog) Validate() error {
	seen := make(map[string]bool, len(c.Cities))
	for i, city := range c.Cities {
		if city.Name == "" {
			return WrapInvalidCatalog("city at index %d has no name", i)
		}
		if seen[city.Name] {
			return WrapInvalidCatalog("duplicate city %q", city.Name)
		}
		seen[city.Name] = true
	}
	return nil
}
