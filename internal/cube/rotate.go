package cube

import (
	"fmt"

	"github.com/bit-fu/RustyCube/pkg/types"
)

// rotXPos rotates a cubie +90 degrees about the X axis.
func rotXPos(q Cubie, max int) Cubie {
	p, s := q.Pos, q.Sides
	return Cubie{
		Pos: Vec{p.X, max - p.Z, p.Y},
		Sides: Sides{
			XPos: s.XPos, XNeg: s.XNeg,
			YPos: s.ZNeg, YNeg: s.ZPos,
			ZPos: s.YPos, ZNeg: s.YNeg,
		},
	}
}

// rotXNeg rotates a cubie -90 degrees about the X axis.
func rotXNeg(q Cubie, max int) Cubie {
	p, s := q.Pos, q.Sides
	return Cubie{
		Pos: Vec{p.X, p.Z, max - p.Y},
		Sides: Sides{
			XPos: s.XPos, XNeg: s.XNeg,
			YPos: s.ZPos, YNeg: s.ZNeg,
			ZPos: s.YNeg, ZNeg: s.YPos,
		},
	}
}

// rotYPos rotates a cubie +90 degrees about the Y axis.
func rotYPos(q Cubie, max int) Cubie {
	p, s := q.Pos, q.Sides
	return Cubie{
		Pos: Vec{p.Z, p.Y, max - p.X},
		Sides: Sides{
			XPos: s.ZPos, XNeg: s.ZNeg,
			YPos: s.YPos, YNeg: s.YNeg,
			ZPos: s.XNeg, ZNeg: s.XPos,
		},
	}
}

// rotYNeg rotates a cubie -90 degrees about the Y axis.
func rotYNeg(q Cubie, max int) Cubie {
	p, s := q.Pos, q.Sides
	return Cubie{
		Pos: Vec{max - p.Z, p.Y, p.X},
		Sides: Sides{
			XPos: s.ZNeg, XNeg: s.ZPos,
			YPos: s.YPos, YNeg: s.YNeg,
			ZPos: s.XPos, ZNeg: s.XNeg,
		},
	}
}

// rotZPos rotates a cubie +90 degrees about the Z axis.
func rotZPos(q Cubie, max int) Cubie {
	p, s := q.Pos, q.Sides
	return Cubie{
		Pos: Vec{max - p.Y, p.X, p.Z},
		Sides: Sides{
			XPos: s.YNeg, XNeg: s.YPos,
			YPos: s.XPos, YNeg: s.XNeg,
			ZPos: s.ZPos, ZNeg: s.ZNeg,
		},
	}
}

// rotZNeg rotates a cubie -90 degrees about the Z axis.
func rotZNeg(q Cubie, max int) Cubie {
	p, s := q.Pos, q.Sides
	return Cubie{
		Pos: Vec{p.Y, max - p.X, p.Z},
		Sides: Sides{
			XPos: s.YPos, XNeg: s.YNeg,
			YPos: s.XNeg, YNeg: s.XPos,
			ZPos: s.ZPos, ZNeg: s.ZNeg,
		},
	}
}

func axisComponent(p Vec, a types.Axis) int {
	switch a {
	case types.AxisX:
		return p.X
	case types.AxisY:
		return p.Y
	default:
		return p.Z
	}
}

func rotator(a types.Axis, neg bool) func(Cubie, int) Cubie {
	switch a {
	case types.AxisX:
		if neg {
			return rotXNeg
		}
		return rotXPos
	case types.AxisY:
		if neg {
			return rotYNeg
		}
		return rotYPos
	default:
		if neg {
			return rotZNeg
		}
		return rotZPos
	}
}

// rotateLayer turns one layer (or, when layer == Size, the whole cube)
// by a single quarter turn, in place.
func (c *Cube) rotateLayer(a types.Axis, layer int, neg bool) {
	rot := rotator(a, neg)
	max := c.Size - 1
	whole := layer == c.Size
	for i := range c.Cubies {
		if whole || axisComponent(c.Cubies[i].Pos, a) == layer {
			c.Cubies[i] = rot(c.Cubies[i], max)
		}
	}
}

// Apply performs the move on the cube in place. Apply permutes cubies
// and never creates or destroys them; Apply(m) followed by
// Apply(m.Inverse()) restores the exact prior state.
func (c *Cube) Apply(m types.Move) error {
	if !m.Axis.Valid() {
		return fmt.Errorf("cube: invalid axis %q", string(rune(m.Axis)))
	}
	if m.Layer < 0 || m.Layer > c.Size {
		return fmt.Errorf("cube: layer %d out of range for edge length %d", m.Layer, c.Size)
	}
	turns := ((m.Turns % 4) + 4) % 4
	switch turns {
	case 0:
		// Full rotations are the identity.
	case 1:
		c.rotateLayer(m.Axis, m.Layer, false)
	case 2:
		c.rotateLayer(m.Axis, m.Layer, false)
		c.rotateLayer(m.Axis, m.Layer, false)
	case 3:
		c.rotateLayer(m.Axis, m.Layer, true)
	}
	return nil
}

// ApplySeq applies a sequence of moves in order.
func (c *Cube) ApplySeq(moves []types.Move) error {
	for _, m := range moves {
		if err := c.Apply(m); err != nil {
			return err
		}
	}
	return nil
}
