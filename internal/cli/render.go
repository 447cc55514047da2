package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmaurer/topoborders/pkg/errors"
	"github.com/jmaurer/topoborders/pkg/render"
)

// Output formats for the render command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderCommand creates the render command: derive the neighbor mapping and
// emit the border graph as Graphviz DOT or rendered SVG.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags  inputFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "render <topology.json> <metadata.json>",
		Short: "Render the border graph as DOT or SVG",
		Long: `Derive the neighbor mapping and render it as an undirected border graph.

Each recognized region is a node; each shared boundary is a single edge.
Isolated regions appear as edge-less nodes.

Examples:
  topoborders render africa.topo.json africa_metadata.json --format dot
  topoborders render africa.topo.json africa_metadata.json --format svg -o borders.svg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatDOT && format != formatSVG {
				return errors.New(errors.ErrCodeInvalidFormat,
					"unknown format %q (valid: %s, %s)", format, formatDOT, formatSVG)
			}

			logger := loggerFromContext(cmd.Context())
			runner := c.newRunner(flags.noCache)
			defer runner.Close()

			result, err := runner.Execute(cmd.Context(), flags.options(args[0], args[1]))
			if err != nil {
				return err
			}

			dot := render.ToDOT(result.Neighbors)
			data := []byte(dot)
			if format == formatSVG {
				p := newProgress(logger)
				data, err = render.RenderSVG(cmd.Context(), dot)
				if err != nil {
					return err
				}
				p.done("Rendered border graph")
			}

			if output != "" {
				if err := os.WriteFile(output, data, 0644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				logger.Info("wrote border graph", "format", format, "path", output)
				return nil
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}
