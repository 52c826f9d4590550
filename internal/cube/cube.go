// Package cube models the surface of an NxNxN Rubik's-style cube as a
// set of cubies, each with a position and a full face orientation.
package cube

// Color labels the six faces of the solved cube.
type Color byte

const (
	Red    Color = iota // +X face when solved (Right)
	Orange              // -X (Left)
	White               // +Y (Up)
	Yellow              // -Y (Down)
	Green               // +Z (Front)
	Blue                // -Z (Back)
)

func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Orange:
		return "O"
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Vec is a cubie position in cube-local coordinates, each component
// in 0 .. size-1.
type Vec struct {
	X, Y, Z int
}

// Sides holds the color on every side of a cubie, keyed by outward
// direction. Sides facing the cube interior keep their colors too;
// only sides on the surface are visible, but the hidden ones still
// record the cubie's exact orientation.
type Sides struct {
	XPos, XNeg, YPos, YNeg, ZPos, ZNeg Color
}

var solvedSides = Sides{
	XPos: Red, XNeg: Orange,
	YPos: White, YNeg: Yellow,
	ZPos: Green, ZNeg: Blue,
}

// Cubie is the smallest movable fragment of the cube.
type Cubie struct {
	Pos   Vec
	Sides Sides
}

// Cube is an NxNxN cube. Only cubies that partake in the surface are
// tracked; they are stored in a fixed creation order so that two cubes
// can be compared cubie by cubie.
type Cube struct {
	Size   int
	Cubies []Cubie
}

// New creates a solved cube of the given edge length.
// Callers must ensure 1 <= size <= 9.
func New(size int) *Cube {
	max := size - 1
	cubies := make([]Cubie, 0, surfaceCount(size))
	for z := 0; z < size; z++ {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if x == 0 || x == max || y == 0 || y == max || z == 0 || z == max {
					cubies = append(cubies, Cubie{Pos: Vec{x, y, z}, Sides: solvedSides})
				}
			}
		}
	}
	return &Cube{Size: size, Cubies: cubies}
}

func surfaceCount(size int) int {
	if size <= 2 {
		return size * size * size
	}
	inner := size - 2
	return size*size*size - inner*inner*inner
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	cubies := make([]Cubie, len(c.Cubies))
	copy(cubies, c.Cubies)
	return &Cube{Size: c.Size, Cubies: cubies}
}

// Equal reports whether both cubes have every cubie at the same position
// with the same orientation. This is stricter than comparing visible
// facets: a face-center cubie twisted in place looks identical from the
// outside but does not compare equal here.
func (c *Cube) Equal(o *Cube) bool {
	if o == nil || c.Size != o.Size || len(c.Cubies) != len(o.Cubies) {
		return false
	}
	for i := range c.Cubies {
		if c.Cubies[i] != o.Cubies[i] {
			return false
		}
	}
	return true
}

// IsSolved reports whether the cube is in its original state.
func (c *Cube) IsSolved() bool {
	return c.Equal(New(c.Size))
}
