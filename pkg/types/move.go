// Package types contains shared type definitions for the rustycube application.
package types

import (
	"fmt"
	"strings"
)

// Axis identifies one of the three principal cube axes.
type Axis byte

const (
	AxisX Axis = 'X'
	AxisY Axis = 'Y'
	AxisZ Axis = 'Z'
)

// Valid reports whether the axis is one of X, Y, Z.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

// Move represents the rotation of a layer of cubies about one cube axis.
//
// Layer addresses the rotated cubies by their coordinate value on the
// rotation axis, 0 .. size-1, where 0 is the leftmost / bottommost /
// hindmost layer. A Layer equal to the cube's edge length denotes a
// whole-cube rotation: every layer along the axis turns at once.
//
// Turns counts +90 degree steps; a negative count rotates the other way.
// A total that reduces to 0 mod 4 applies as the identity but still
// occupies its place in a sequence. Parsed sequences consist of unit
// (Turns == +1 or -1) moves.
type Move struct {
	Axis  Axis
	Layer int
	Turns int
}

// Inverse returns the move that exactly undoes m.
func (m Move) Inverse() Move {
	m.Turns = -m.Turns
	return m
}

// Letter returns the notation letter for the move: the axis letter,
// uppercase for +90 steps and lowercase for -90 steps.
func (m Move) Letter() byte {
	if m.Turns < 0 {
		return byte(m.Axis) | 0x20
	}
	return byte(m.Axis)
}

// Ident packs letter and layer into a single comparable value for the
// search engine's pruning checks. Only meaningful for unit moves.
func (m Move) Ident() int {
	return int(m.Letter())<<4 | m.Layer
}

// OppositeIdent returns the ident of the same layer turned the other
// way, flipping the case bit of the packed letter.
func OppositeIdent(ident int) int {
	return ident ^ (0x20 << 4)
}

// IsNoOp reports whether applying the move leaves any cube unchanged.
func (m Move) IsNoOp() bool {
	return m.Turns%4 == 0
}

// Notation renders the move in token form: an optional repeat count,
// the cased axis letter, then the layer digit. Examples: X0, x2, 2X1.
// A turn count above nine exceeds what one count digit can express and
// splits into several tokens, so the result always parses back to the
// same move. Zero turns render as the empty string.
func (m Move) Notation() string {
	n := m.Turns
	if n < 0 {
		n = -n
	}
	if n == 1 {
		return string([]byte{m.Letter(), '0' + byte(m.Layer)})
	}

	var b strings.Builder
	for n > 0 {
		run := n
		if run > 9 {
			run = 9
		}
		if run == 1 {
			b.WriteByte(m.Letter())
			b.WriteByte('0' + byte(m.Layer))
		} else {
			fmt.Fprintf(&b, "%d%c%d", run, m.Letter(), m.Layer)
		}
		n -= run
	}
	return b.String()
}
