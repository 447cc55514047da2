// Package pipeline orchestrates the adjacency derivation:
// load → resolve → index → build.
//
// The [Runner] threads a cache and a logger through the stages. The
// computation itself is a deterministic pure function of the two input
// documents (plus object selection and overrides), which is what makes the
// result cacheable by content hash.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    TopologyPath: "africa.topo.json",
//	    MetadataPath: "africa_metadata.json",
//	})
//	if err != nil {
//	    return err
//	}
//	io.WriteNeighbors(result.Neighbors, os.Stdout)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/jmaurer/topoborders/pkg/adjacency"
	"github.com/jmaurer/topoborders/pkg/errors"
	"github.com/jmaurer/topoborders/pkg/region"
	"github.com/jmaurer/topoborders/pkg/topology"
)

// Options configures one pipeline run.
type Options struct {
	// TopologyPath is the topology document file. Required.
	TopologyPath string
	// MetadataPath is the metadata document file. Required.
	MetadataPath string
	// Object names the topology objects entry to process. Empty picks the
	// sole object of a single-object document.
	Object string
	// OverridesPath points to a TOML override table replacing the built-in
	// one. Empty keeps the defaults.
	OverridesPath string
	// Refresh bypasses the cache for this run.
	Refresh bool
	// Logger used for stage logging. Defaults to the runner's logger.
	Logger *log.Logger
}

// Validate checks that required inputs are present.
func (o *Options) Validate() error {
	if o.TopologyPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "topology path is required")
	}
	if o.MetadataPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "metadata path is required")
	}
	return nil
}

// Stats carries per-run counters and timings.
type Stats struct {
	Geometries int           // geometry records in the selected collection
	Resolved   int           // geometries that resolved to a region code
	Regions    int           // recognized codes in the universe
	Arcs       int           // distinct canonical arcs touched
	SharedArcs int           // arcs owned by two or more regions
	LoadTime   time.Duration // document loading and parsing
	BuildTime  time.Duration // resolve + index + build
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Neighbors is the final mapping: every recognized code → sorted
	// neighbor codes.
	Neighbors adjacency.Neighbors
	// Universe is the recognized-code set the mapping is keyed by.
	Universe region.Universe
	// Stats holds counters and timings. Zeroed compute counters on a cache
	// hit, since nothing was recomputed.
	Stats Stats
	// CacheHit reports whether Neighbors came from the cache.
	CacheHit bool
}

// Compute runs the pure core over already-loaded inputs: resolve geometries,
// index arc ownership, build the neighbor mapping. It performs no I/O.
func Compute(geoms []topology.Geometry, table region.Table, overrides []region.Override, logger *log.Logger) (adjacency.Neighbors, Stats) {
	if logger == nil {
		logger = log.Default()
	}

	resolver := region.NewResolver(table, nil, overrides, logger)
	codes := resolver.ResolveAll(geoms)
	universe := table.Universe()
	own := adjacency.Index(geoms, codes)
	neighbors := adjacency.Build(own, universe)

	return neighbors, Stats{
		Geometries: len(geoms),
		Resolved:   len(codes),
		Regions:    len(universe),
		Arcs:       len(own),
		SharedArcs: own.SharedArcs(),
	}
}
