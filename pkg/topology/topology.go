package topology

// =============================================================================
// Document - Topology Input Model
// =============================================================================

// Document is a parsed topology document.
//
// Only the structural parts needed for adjacency derivation are modeled:
// the objects map and, per geometry, its identifier, properties, and arc
// references. Coordinate payloads are not decoded.
type Document struct {
	Type    string                `json:"type,omitempty"`
	Objects map[string]Collection `json:"objects"`
}

// Collection is a named set of geometry records within a document.
type Collection struct {
	Type       string     `json:"type,omitempty"`
	Geometries []Geometry `json:"geometries"`
}

// Geometry is one topological feature: an optional stable identifier, a
// property bag, and a nested arc-reference structure.
type Geometry struct {
	ID         string     `json:"id,omitempty"`
	Type       string     `json:"type,omitempty"`
	Properties Properties `json:"properties"`
	Arcs       ArcTree    `json:"arcs,omitempty"`
}

// Properties is the subset of per-geometry properties the pipeline reads.
type Properties struct {
	// Alpha3 is an embedded canonical region code, when the dataset carries one.
	Alpha3 string `json:"alpha3,omitempty"`
	// Name is the display name, used as a fallback join key to metadata.
	Name string `json:"name,omitempty"`
}

// Key returns the lookup key for this geometry: the stable ID when present,
// otherwise the display name. Multiple geometries may resolve to the same
// region code, so resolution tables are indexed by this key, not by code.
func (g Geometry) Key() string {
	if g.ID != "" {
		return g.ID
	}
	return g.Properties.Name
}
