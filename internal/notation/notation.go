// Package notation converts between textual move tokens and Move values.
//
// A token is an optional repeat-count digit 2-9, the axis letter
// (X, Y or Z; uppercase turns +90 degrees, lowercase -90), and a layer
// digit. Layer digits run 0 .. N-1 from the reference side; the digit N
// itself denotes a whole-cube rotation about the axis. '#' starts a
// comment through the end of the line, and whitespace separates tokens.
package notation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/bit-fu/RustyCube/pkg/types"
)

// Sentinel errors for the notation package.
var (
	ErrBadToken = errors.New("notation: malformed move token")
	ErrBadLayer = errors.New("notation: layer digit out of range")
)

// Parse converts move text into a sequence of unit moves for a cube of
// the given edge length. A repeat count expands into that many copies
// of the move, each counting toward the sequence length.
func Parse(input string, size int) ([]types.Move, error) {
	var moves []types.Move

	count := 1
	pendingCount := false
	var axis types.Axis
	var turns int
	expectLayer := false
	inComment := false

	for _, r := range input {
		if inComment {
			if r == '\n' {
				inComment = false
			}
			continue
		}
		if expectLayer {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("%w: expected layer digit, got %q", ErrBadToken, string(r))
			}
			layer := int(r - '0')
			if layer > size {
				return nil, fmt.Errorf("%w: layer %d on a cube of edge length %d", ErrBadLayer, layer, size)
			}
			m := types.Move{Axis: axis, Layer: layer, Turns: turns}
			for ; count > 0; count-- {
				moves = append(moves, m)
			}
			count = 1
			pendingCount = false
			expectLayer = false
			continue
		}
		switch {
		case r == 'X' || r == 'Y' || r == 'Z':
			axis = types.Axis(r)
			turns = 1
			expectLayer = true
		case r == 'x' || r == 'y' || r == 'z':
			axis = types.Axis(unicode.ToUpper(r))
			turns = -1
			expectLayer = true
		case r >= '2' && r <= '9':
			if pendingCount {
				return nil, fmt.Errorf("%w: repeated count digit %q", ErrBadToken, string(r))
			}
			count = int(r - '0')
			pendingCount = true
		case r == '#':
			inComment = true
		case unicode.IsSpace(r):
			if pendingCount {
				return nil, fmt.Errorf("%w: count digit %d not followed by a move", ErrBadToken, count)
			}
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrBadToken, string(r))
		}
	}

	if expectLayer {
		return nil, fmt.Errorf("%w: axis %q missing its layer digit", ErrBadToken, string(rune(axis)))
	}
	if pendingCount {
		return nil, fmt.Errorf("%w: count digit %d not followed by a move", ErrBadToken, count)
	}

	return moves, nil
}

// Format renders a move sequence in canonical form: runs of up to nine
// identical unit moves collapse into a count-prefixed token, so that
// Format(Parse(tok)) == tok for every well-formed token.
func Format(moves []types.Move) string {
	var b strings.Builder
	for i := 0; i < len(moves); {
		m := moves[i]
		j := i + 1
		if m.Turns == 1 || m.Turns == -1 {
			for j < len(moves) && moves[j] == m && j-i < 9 {
				j++
			}
		}
		if n := j - i; n > 1 {
			fmt.Fprintf(&b, "%d%c%d", n, m.Letter(), m.Layer)
		} else {
			b.WriteString(m.Notation())
		}
		i = j
	}
	return b.String()
}
