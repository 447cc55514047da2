package region

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jmaurer/topoborders/pkg/topology"
)

// =============================================================================
// Overrides - Dataset-Specific Forced Resolutions
// =============================================================================

// Override forces a region code for geometries matching a known identifier
// or display name. Overrides handle dataset quirks such as disputed
// territories that should be folded into a recognized parent region's code.
// The list is explicit data, never inferred.
type Override struct {
	// ID matches the geometry's stable identifier, when non-empty.
	ID string `toml:"id"`
	// Name matches the geometry's display name, when non-empty.
	Name string `toml:"name"`
	// Code is the region code to force.
	Code string `toml:"code"`
}

// Matches reports whether the override applies to g. An override with both
// ID and Name set matches on either.
func (o Override) Matches(g topology.Geometry) bool {
	if o.ID != "" && g.ID == o.ID {
		return true
	}
	if o.Name != "" && g.Properties.Name == o.Name {
		return true
	}
	return false
}

// DefaultOverrides returns the built-in override list. The standard Africa
// dataset labels Somaliland as a separate entity with no code of its own;
// it is folded into Somalia.
func DefaultOverrides() []Override {
	return []Override{
		{ID: "ABV", Name: "Somaliland", Code: "SOM"},
	}
}

// overridesFile is the TOML document shape for a user-provided override list:
//
//	[[override]]
//	id = "ABV"
//	name = "Somaliland"
//	code = "SOM"
type overridesFile struct {
	Overrides []Override `toml:"override"`
}

// LoadOverrides reads an override table from a TOML file. The loaded list
// replaces the default one entirely. Entries without a code are rejected.
func LoadOverrides(path string) ([]Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides %s: %w", path, err)
	}

	var f overridesFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse overrides %s: %w", path, err)
	}

	for i, o := range f.Overrides {
		if o.Code == "" {
			return nil, fmt.Errorf("overrides %s: entry %d has no code", path, i)
		}
		if o.ID == "" && o.Name == "" {
			return nil, fmt.Errorf("overrides %s: entry %d matches nothing (no id or name)", path, i)
		}
	}

	return f.Overrides, nil
}
