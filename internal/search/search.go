// Package search enumerates move sequences that reproduce a target
// cube state.
//
// The engine performs an exhaustive breadth-bounded exploration of the
// move alphabet: every sequence no longer than the bound is considered,
// modulo three pruning rules that only skip continuations another
// explored sequence already covers. Revisiting an intermediate state
// through a different move order is deliberate; the output is the set
// of sequences, not states.
package search

import (
	"fmt"

	"github.com/bit-fu/RustyCube/internal/cube"
	"github.com/bit-fu/RustyCube/pkg/types"
)

// Result holds the outcome of an equivalence search.
type Result struct {
	// Sequences that transform the source state into the target,
	// in discovery order.
	Sequences [][]types.Move
	// Explored counts every exploratory move application performed.
	Explored uint64
}

var axisLetters = []byte{'X', 'x', 'Y', 'y', 'Z', 'z'}

// Alphabet returns the engine's move alphabet for the given edge
// length: for each of X, x, Y, y, Z, z in that order, the quarter turn
// of every layer, layers ascending. Whole-cube rotations are accepted
// in user input but never generated here.
func Alphabet(size int) []types.Move {
	moves := make([]types.Move, 0, 6*size)
	for _, letter := range axisLetters {
		turns := 1
		axis := types.Axis(letter)
		if letter >= 'a' {
			axis = types.Axis(letter &^ 0x20)
			turns = -1
		}
		for layer := 0; layer < size; layer++ {
			moves = append(moves, types.Move{Axis: axis, Layer: layer, Turns: turns})
		}
	}
	return moves
}

// tracing is one frontier entry: a cube state and the move sequence
// that produced it from the source state.
type tracing struct {
	cube  *cube.Cube
	moves []types.Move
}

// Find enumerates every move sequence of length at most maxLen that
// transforms src into dst. A sequence that reaches the target is
// collected and not extended further. The frontier is processed in
// FIFO order, so together with the fixed Alphabet order the result is
// deterministic for identical inputs.
func Find(src, dst *cube.Cube, maxLen int) (*Result, error) {
	if src.Size != dst.Size {
		return nil, fmt.Errorf("search: cubes are of different size (%d vs %d)", src.Size, dst.Size)
	}

	alpha := Alphabet(src.Size)
	res := &Result{}

	level := []tracing{{cube: src.Clone()}}
	for depth := 0; depth <= maxLen && len(level) > 0; depth++ {
		// Children generated at the final depth are compared to the
		// target directly instead of joining the frontier.
		final := depth+1 >= maxLen
		var next []tracing

		// Layer doubles performed at this depth, by move ident. A double
		// whose opposite-case twin was already done at the same depth
		// reaches a state some other sequence of this length covers.
		doubles := make(map[int]bool)

		for _, tr := range level {
			if tr.cube.Equal(dst) {
				res.Sequences = append(res.Sequences, tr.moves)
				continue
			}
			if depth >= maxLen {
				continue
			}

			n := len(tr.moves)
			var prevIdent, prev2Ident, prevLayer int
			var undoLetter byte
			if n > 0 {
				prev := tr.moves[n-1]
				prevIdent = prev.Ident()
				prevLayer = prev.Layer
				undoLetter = prev.Inverse().Letter()
				if n > 1 {
					prev2Ident = tr.moves[n-2].Ident()
				}
			}

			for _, m := range alpha {
				// Never undo the previous move.
				if n > 0 && m.Layer == prevLayer && m.Letter() == undoLetter {
					continue
				}
				ident := m.Ident()
				// Never make the same move three times in a row.
				if n > 1 && ident == prevIdent && ident == prev2Ident {
					continue
				}
				isDouble := n > 0 && ident == prevIdent
				if isDouble && doubles[types.OppositeIdent(ident)] {
					continue
				}

				child := tr.cube.Clone()
				if err := child.Apply(m); err != nil {
					return nil, err
				}

				if final {
					if child.Equal(dst) {
						res.Sequences = append(res.Sequences, appendMove(tr.moves, m))
					}
				} else {
					next = append(next, tracing{cube: child, moves: appendMove(tr.moves, m)})
				}

				if isDouble {
					doubles[ident] = true
				}
				res.Explored++
			}
		}
		level = next
	}

	return res, nil
}

// appendMove copies the sequence; frontier entries never share backing
// arrays.
func appendMove(moves []types.Move, m types.Move) []types.Move {
	out := make([]types.Move, len(moves)+1)
	copy(out, moves)
	out[len(moves)] = m
	return out
}
