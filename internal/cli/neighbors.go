package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pkgio "github.com/jmaurer/topoborders/pkg/io"
)

// neighborsCommand creates the neighbors command: run the pipeline and emit
// the full region → sorted neighbor codes mapping as indented JSON.
func (c *CLI) neighborsCommand() *cobra.Command {
	var (
		flags  inputFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "neighbors <topology.json> <metadata.json>",
		Short: "Derive the neighbor mapping and print it as JSON",
		Long: `Derive which regions share a boundary arc and print the mapping from
every recognized region code to its sorted list of neighbor codes.

Regions with no shared border are included with an empty list. Geometries
that resolve to no recognized code are excluded silently.

Examples:
  topoborders neighbors africa.topo.json africa_metadata.json
  topoborders neighbors world.topo.json names.json --object countries -o neighbors.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			p := newProgress(logger)

			runner := c.newRunner(flags.noCache)
			defer runner.Close()

			result, err := runner.Execute(cmd.Context(), flags.options(args[0], args[1]))
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Derived neighbors for %d regions", len(result.Neighbors)))

			if output != "" {
				if err := pkgio.ExportNeighbors(result.Neighbors, output); err != nil {
					return err
				}
				logger.Info("wrote neighbor mapping", "path", output)
				return nil
			}
			return pkgio.WriteNeighbors(result.Neighbors, os.Stdout)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}
