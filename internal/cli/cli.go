// Package cli implements the topoborders command-line interface.
//
// Commands derive, inspect, and render the region-adjacency mapping of a
// topology document: neighbors (print the full mapping as JSON), show (one
// region's neighbors), render (border graph as DOT or SVG), browse (an
// interactive region browser), and completion. All commands support
// --verbose (-v) for debug-level logging; loggers travel through
// context.Context.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jmaurer/topoborders/pkg/buildinfo"
	"github.com/jmaurer/topoborders/pkg/cache"
	"github.com/jmaurer/topoborders/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "topoborders"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The persistent --verbose flag raises the log level to debug; the logger is
// attached to the command context for all subcommands.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Topoborders derives region adjacency from topology maps",
		Long: `Topoborders reads a topology-encoded map (shared boundary arcs) plus a
region metadata table and derives, for every recognized region, the sorted
set of neighboring region codes. Regions are neighbors exactly when their
boundaries share at least one arc.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.neighborsCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), c.Logger)
}

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/topoborders/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Shared Flags
// =============================================================================

// inputFlags are the flags shared by every command that runs the pipeline.
type inputFlags struct {
	object    string // topology objects entry to process
	overrides string // TOML override table path
	noCache   bool   // disable the result cache
	refresh   bool   // bypass cached results for this run
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.object, "object", "", "topology object to process (defaults to the sole object)")
	cmd.Flags().StringVar(&f.overrides, "overrides", "", "TOML file replacing the built-in override table")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable result caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even if a cached result exists")
}

// options builds pipeline options from the shared flags and positional paths.
func (f *inputFlags) options(topologyPath, metadataPath string) pipeline.Options {
	return pipeline.Options{
		TopologyPath:  topologyPath,
		MetadataPath:  metadataPath,
		Object:        f.object,
		OverridesPath: f.overrides,
		Refresh:       f.refresh,
	}
}
