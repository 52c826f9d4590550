package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bit-fu/RustyCube/internal/cube"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	doneMoveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

// facetStyles maps each sticker color to a terminal background.
var facetStyles = map[cube.Color]lipgloss.Style{
	cube.White:  lipgloss.NewStyle().Background(lipgloss.Color("15")),
	cube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("11")),
	cube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("10")),
	cube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("12")),
	cube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("9")),
	cube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")),
}

func renderFacet(c cube.Color) string {
	style, ok := facetStyles[c]
	if !ok {
		return "??"
	}
	return style.Render("  ")
}

// renderNet draws the unfolded cube with colored sticker blocks, in the
// same layout as Cube.String: Up on top, then Left, Front, Right and
// Back side by side, then Down.
func renderNet(c *cube.Cube) string {
	var b strings.Builder
	indent := strings.Repeat("  ", c.Size)

	writeRow := func(grid [][]cube.Color, row int) {
		for col := 0; col < c.Size; col++ {
			b.WriteString(renderFacet(grid[row][col]))
		}
	}

	up := c.FaceGrid(cube.Up)
	for row := 0; row < c.Size; row++ {
		b.WriteString(indent)
		writeRow(up, row)
		b.WriteByte('\n')
	}

	middle := [][][]cube.Color{
		c.FaceGrid(cube.Left),
		c.FaceGrid(cube.Front),
		c.FaceGrid(cube.Right),
		c.FaceGrid(cube.Back),
	}
	for row := 0; row < c.Size; row++ {
		for _, grid := range middle {
			writeRow(grid, row)
		}
		b.WriteByte('\n')
	}

	down := c.FaceGrid(cube.Down)
	for row := 0; row < c.Size; row++ {
		b.WriteString(indent)
		writeRow(down, row)
		b.WriteByte('\n')
	}

	return b.String()
}
