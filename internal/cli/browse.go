package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jmaurer/topoborders/pkg/adjacency"
)

// browseCommand creates the browse command: an interactive region browser.
func (c *CLI) browseCommand() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "browse <topology.json> <metadata.json>",
		Short: "Browse regions and their neighbors interactively",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := c.newRunner(flags.noCache)
			defer runner.Close()

			result, err := runner.Execute(cmd.Context(), flags.options(args[0], args[1]))
			if err != nil {
				return err
			}

			model := newBrowseModel(result.Neighbors)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

// =============================================================================
// browseModel - Interactive Region Browser
// =============================================================================

// browseModel is the bubbletea model for the region browser: a scrolling
// list of codes on the left, the selected region's neighbors below.
type browseModel struct {
	codes     []string
	neighbors adjacency.Neighbors
	cursor    int
	offset    int
	height    int
}

func newBrowseModel(n adjacency.Neighbors) browseModel {
	return browseModel{
		codes:     slices.Sorted(maps.Keys(n)),
		neighbors: n,
		height:    15,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.codes)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "home", "g":
			m.cursor, m.offset = 0, 0
		case "end", "G":
			m.cursor = len(m.codes) - 1
			if m.cursor >= m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Regions"))
	b.WriteString(" ")
	b.WriteString(styleCount.Render(fmt.Sprintf("(%d)", len(m.codes))))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.codes) == 0 {
		b.WriteString(styleDim.Render("no recognized regions"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.offset + m.height
	if end > len(m.codes) {
		end = len(m.codes)
	}
	for i := m.offset; i < end; i++ {
		code := m.codes[i]
		cursor := "  "
		line := fmt.Sprintf("%s (%d)", code, len(m.neighbors[code]))
		if i == m.cursor {
			cursor = "▸ "
			line = styleCode.Render(line)
		} else {
			line = styleDim.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	selected := m.codes[m.cursor]
	b.WriteString("\n")
	if list := m.neighbors[selected]; len(list) > 0 {
		b.WriteString(styleNeighbor.Render(strings.Join(list, "  ")))
	} else {
		b.WriteString(styleDim.Render("no shared borders"))
	}
	b.WriteString("\n")

	return b.String()
}
