package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jmaurer/topoborders/pkg/cache"
	"github.com/jmaurer/topoborders/pkg/errors"
	pkgio "github.com/jmaurer/topoborders/pkg/io"
	"github.com/jmaurer/topoborders/pkg/region"
)

// Runner executes the pipeline with caching.
//
// The Runner is stateless apart from the cache and logger — it stores no
// results. Multiple goroutines can share one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, the default logger is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the full load → resolve → index → build pipeline.
//
// Both input documents are read and parsed up front; any load failure is
// fatal before adjacency logic runs. The computed mapping is cached keyed by
// content hashes of both documents, the object name, and the effective
// override table, so an unchanged input set is a pure cache read.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	loadStart := time.Now()

	topoData, err := os.ReadFile(opts.TopologyPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read topology %s", opts.TopologyPath)
	}
	metaData, err := os.ReadFile(opts.MetadataPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read metadata %s", opts.MetadataPath)
	}

	doc, err := pkgio.ReadTopology(bytes.NewReader(topoData))
	if err != nil {
		return nil, err
	}
	collection, err := pkgio.SelectCollection(doc, opts.Object)
	if err != nil {
		return nil, err
	}
	table, err := pkgio.ReadMetadata(bytes.NewReader(metaData))
	if err != nil {
		return nil, err
	}

	overrides := region.DefaultOverrides()
	overridesTag := "default"
	if opts.OverridesPath != "" {
		overrides, err = region.LoadOverrides(opts.OverridesPath)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "load overrides")
		}
		overridesTag = cache.Hash(fmt.Appendf(nil, "%+v", overrides))
	}

	result := &Result{Universe: table.Universe()}
	result.Stats.LoadTime = time.Since(loadStart)

	logger.Debug("loaded documents",
		"geometries", len(collection.Geometries),
		"metadata", len(table),
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := cache.NeighborsKey(cache.Hash(topoData), cache.Hash(metaData), cache.NeighborsKeyOpts{
		Object:    opts.Object,
		Overrides: overridesTag,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if n, err := pkgio.UnmarshalNeighbors(data); err == nil {
				result.Neighbors = n
				result.CacheHit = true
				logger.Debug("neighbors served from cache", "regions", len(n))
				return result, nil
			}
		}
	}

	buildStart := time.Now()
	neighbors, stats := Compute(collection.Geometries, table, overrides, logger)
	stats.LoadTime = result.Stats.LoadTime
	stats.BuildTime = time.Since(buildStart)
	result.Neighbors = neighbors
	result.Stats = stats

	logger.Info("derived adjacency",
		"regions", stats.Regions,
		"geometries", stats.Geometries,
		"resolved", stats.Resolved,
		"arcs", stats.Arcs,
		"shared_arcs", stats.SharedArcs,
		"duration", stats.BuildTime)

	if data, err := pkgio.MarshalNeighbors(neighbors); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLNeighbors)
	}

	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
