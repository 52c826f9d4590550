// Package rustycube simulates Rubik's cubes of any edge length from 1
// to 9 and exhaustively searches for equivalent move sequences.
//
// # Quick Start
//
// Apply a move sequence to a solved cube:
//
//	c, err := rustycube.Simulate(3, "2X1 2Y1 2Z1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(c)
//
// Find every sequence of at most the same length that produces the
// same cube state:
//
//	result, err := rustycube.FindEquivalents(3, "2X1 2Y1 2Z1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, seq := range result.Sequences {
//	    fmt.Println(rustycube.FormatMoves(seq))
//	}
//
// # Move Notation
//
// A move token is «axis»«layer»: the axis letter X, Y or Z (uppercase
// for a +90° turn, lowercase for -90°) followed by a decimal digit
// selecting the rotated layer by its coordinate along the axis,
// 0 ≤ «layer» < N. A layer digit equal to N rotates the whole cube.
// A prefix digit 2-9 repeats the move, and '#' comments out the rest
// of a line.
package rustycube

import (
	"fmt"

	"github.com/bit-fu/RustyCube/internal/cube"
	"github.com/bit-fu/RustyCube/internal/notation"
	"github.com/bit-fu/RustyCube/internal/search"
	"github.com/bit-fu/RustyCube/pkg/types"
)

// MinEdgeLength and MaxEdgeLength bound the supported cube sizes.
const (
	MinEdgeLength = 1
	MaxEdgeLength = 9
)

// Cube is a cube state. See the internal/cube package for methods.
type Cube = cube.Cube

// Move is a single layer rotation.
type Move = types.Move

// Result holds the outcome of an equivalence search.
type Result = search.Result

// New returns a solved cube with the given edge length.
func New(edgeLength int) (*Cube, error) {
	if err := checkEdgeLength(edgeLength); err != nil {
		return nil, err
	}
	return cube.New(edgeLength), nil
}

// ParseMoves parses move notation for a cube of the given edge length.
func ParseMoves(edgeLength int, moveText string) ([]Move, error) {
	if err := checkEdgeLength(edgeLength); err != nil {
		return nil, err
	}
	return notation.Parse(moveText, edgeLength)
}

// FormatMoves renders a move sequence in canonical compressed notation.
func FormatMoves(moves []Move) string {
	return notation.Format(moves)
}

// Simulate applies the given move notation to a solved cube and returns
// the resulting cube state.
func Simulate(edgeLength int, moveText string) (*Cube, error) {
	moves, err := ParseMoves(edgeLength, moveText)
	if err != nil {
		return nil, err
	}
	c := cube.New(edgeLength)
	if err := c.ApplySeq(moves); err != nil {
		return nil, err
	}
	return c, nil
}

// FindEquivalents searches for every move sequence, no longer than the
// given one, that transforms a solved cube into the same state the
// given sequence produces.
func FindEquivalents(edgeLength int, moveText string) (*Result, error) {
	moves, err := ParseMoves(edgeLength, moveText)
	if err != nil {
		return nil, err
	}

	src := cube.New(edgeLength)
	dst := src.Clone()
	if err := dst.ApplySeq(moves); err != nil {
		return nil, err
	}

	return search.Find(src, dst, len(moves))
}

func checkEdgeLength(n int) error {
	if n < MinEdgeLength || n > MaxEdgeLength {
		return fmt.Errorf("rustycube: edge length must be between %d and %d, got %d",
			MinEdgeLength, MaxEdgeLength, n)
	}
	return nil
}
