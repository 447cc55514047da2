package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary highlights
	colorGreen = lipgloss.Color("35")  // Green - neighbor codes
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Shared Styles
// =============================================================================

var (
	// styleTitle for main headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleCode for region codes.
	styleCode = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)

	// styleNeighbor for neighbor codes.
	styleNeighbor = lipgloss.NewStyle().Foreground(colorGreen)

	// styleDim for hints and empty states.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleCount for counters next to headings.
	styleCount = lipgloss.NewStyle().Foreground(colorGray)
)

// renderNeighborList formats one region's neighbor codes for terminal
// display: the code as a heading, then the neighbors, or a muted
// placeholder for isolated regions.
func renderNeighborList(code string, neighbors []string) string {
	var b strings.Builder
	b.WriteString(styleCode.Render(code))
	b.WriteString(" ")
	b.WriteString(styleCount.Render(fmt.Sprintf("(%d neighbors)", len(neighbors))))
	b.WriteString("\n")

	if len(neighbors) == 0 {
		b.WriteString("  ")
		b.WriteString(styleDim.Render("no shared borders"))
		b.WriteString("\n")
		return b.String()
	}

	for _, n := range neighbors {
		b.WriteString("  ")
		b.WriteString(styleNeighbor.Render(n))
		b.WriteString("\n")
	}
	return b.String()
}
