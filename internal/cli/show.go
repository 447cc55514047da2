package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmaurer/topoborders/pkg/errors"
)

// showCommand creates the show command: display one region's neighbors.
func (c *CLI) showCommand() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "show <code> <topology.json> <metadata.json>",
		Short: "Show the neighbors of one region",
		Long: `Derive the neighbor mapping and display a single region's neighbors.

The code must be part of the recognized universe (present in the metadata
table with a non-empty code).

Example:
  topoborders show DZA africa.topo.json africa_metadata.json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])

			runner := c.newRunner(flags.noCache)
			defer runner.Close()

			result, err := runner.Execute(cmd.Context(), flags.options(args[1], args[2]))
			if err != nil {
				return err
			}

			neighbors, ok := result.Neighbors[code]
			if !ok {
				return errors.New(errors.ErrCodeRegionNotFound,
					"region %q is not in the recognized universe (%d codes)", code, len(result.Universe))
			}

			fmt.Println(renderNeighborList(code, neighbors))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
