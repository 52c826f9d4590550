package cube

import "strings"

// Face names one of the six outward faces of the cube.
type Face int

const (
	Up    Face = 0 // +Y, White when solved
	Down  Face = 1 // -Y, Yellow
	Front Face = 2 // +Z, Green
	Back  Face = 3 // -Z, Blue
	Right Face = 4 // +X, Red
	Left  Face = 5 // -X, Orange
)

func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Down:
		return "D"
	case Front:
		return "F"
	case Back:
		return "B"
	case Right:
		return "R"
	case Left:
		return "L"
	default:
		return "?"
	}
}

// FaceGrid projects the visible facets of one face onto a row-major
// grid. Row 0 of Up borders Back; row 0 of every side face borders Up;
// columns follow the unfolded net (Left, Front, Right, Back read left
// to right around the cube).
func (c *Cube) FaceGrid(f Face) [][]Color {
	max := c.Size - 1
	grid := make([][]Color, c.Size)
	for i := range grid {
		grid[i] = make([]Color, c.Size)
	}
	for i := range c.Cubies {
		q := &c.Cubies[i]
		p := q.Pos
		switch f {
		case Up:
			if p.Y == max {
				grid[p.Z][p.X] = q.Sides.YPos
			}
		case Down:
			if p.Y == 0 {
				grid[max-p.Z][p.X] = q.Sides.YNeg
			}
		case Front:
			if p.Z == max {
				grid[max-p.Y][p.X] = q.Sides.ZPos
			}
		case Back:
			if p.Z == 0 {
				grid[max-p.Y][max-p.X] = q.Sides.ZNeg
			}
		case Right:
			if p.X == max {
				grid[max-p.Y][max-p.Z] = q.Sides.XPos
			}
		case Left:
			if p.X == 0 {
				grid[max-p.Y][p.Z] = q.Sides.XNeg
			}
		}
	}
	return grid
}

// Facet returns the color of a single facet addressed by face, row
// and column, using FaceGrid's orientation.
func (c *Cube) Facet(f Face, row, col int) Color {
	return c.FaceGrid(f)[row][col]
}

// String returns an uncolored net of the cube: Up on top, then Left,
// Front, Right and Back side by side, then Down.
func (c *Cube) String() string {
	var b strings.Builder
	indent := strings.Repeat("  ", c.Size)

	writeRow := func(grid [][]Color, row int) {
		for col := 0; col < c.Size; col++ {
			b.WriteString(grid[row][col].String())
			b.WriteByte(' ')
		}
	}

	up := c.FaceGrid(Up)
	for row := 0; row < c.Size; row++ {
		b.WriteString(indent)
		writeRow(up, row)
		b.WriteByte('\n')
	}

	middle := [][][]Color{c.FaceGrid(Left), c.FaceGrid(Front), c.FaceGrid(Right), c.FaceGrid(Back)}
	for row := 0; row < c.Size; row++ {
		for _, grid := range middle {
			writeRow(grid, row)
		}
		b.WriteByte('\n')
	}

	down := c.FaceGrid(Down)
	for row := 0; row < c.Size; row++ {
		b.WriteString(indent)
		writeRow(down, row)
		b.WriteByte('\n')
	}

	return b.String()
}
