package region

import (
	"github.com/charmbracelet/log"

	"github.com/jmaurer/topoborders/pkg/topology"
)

// =============================================================================
// Strategy Chain
// =============================================================================

// Strategy attempts to derive a region code for one geometry. It returns the
// code and true on success. Strategies are pure: they read the geometry and
// the metadata table and mutate neither.
type Strategy func(topology.Geometry, Table) (string, bool)

// EmbeddedCode resolves via the geometry's own code property.
func EmbeddedCode(g topology.Geometry, _ Table) (string, bool) {
	if g.Properties.Alpha3 != "" {
		return g.Properties.Alpha3, true
	}
	return "", false
}

// MetadataLookup resolves via the metadata record for the geometry's name.
func MetadataLookup(g topology.Geometry, t Table) (string, bool) {
	m, ok := t[g.Properties.Name]
	if !ok {
		return "", false
	}
	if code := m.ResolvedCode(); code != "" {
		return code, true
	}
	return "", false
}

// DefaultStrategies is the standard resolution order: embedded code first,
// metadata lookup second.
func DefaultStrategies() []Strategy {
	return []Strategy{EmbeddedCode, MetadataLookup}
}

// =============================================================================
// Resolver
// =============================================================================

// Resolver maps geometries to canonical region codes using a fixed strategy
// order plus a forced-override table.
type Resolver struct {
	table      Table
	strategies []Strategy
	overrides  []Override
	logger     *log.Logger
}

// NewResolver creates a resolver over the given metadata table.
// If strategies is nil, DefaultStrategies is used. If logger is nil, the
// default logger is used; dropped geometries are logged at debug level.
func NewResolver(table Table, strategies []Strategy, overrides []Override, logger *log.Logger) *Resolver {
	if strategies == nil {
		strategies = DefaultStrategies()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{
		table:      table,
		strategies: strategies,
		overrides:  overrides,
		logger:     logger,
	}
}

// Resolve returns the canonical code for one geometry, or false when no
// strategy and no override applies. Overrides win over the strategy chain:
// a matching override forces its code even when a strategy already produced
// a different one.
func (r *Resolver) Resolve(g topology.Geometry) (string, bool) {
	var code string
	for _, s := range r.strategies {
		if c, ok := s(g, r.table); ok {
			code = c
			break
		}
	}
	for _, o := range r.overrides {
		if o.Matches(g) {
			code = o.Code
			break
		}
	}
	return code, code != ""
}

// ResolveAll builds the geometry-key → code table for a collection.
// Geometries that resolve to nothing are omitted; arc indexing later skips
// any geometry whose key is absent from this table.
func (r *Resolver) ResolveAll(geoms []topology.Geometry) map[string]string {
	codes := make(map[string]string, len(geoms))
	for _, g := range geoms {
		code, ok := r.Resolve(g)
		if !ok {
			r.logger.Debug("geometry unresolved, excluded from adjacency",
				"id", g.ID, "name", g.Properties.Name)
			continue
		}
		codes[g.Key()] = code
	}
	return codes
}
