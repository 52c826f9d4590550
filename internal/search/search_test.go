package search

import (
	"reflect"
	"testing"

	"github.com/bit-fu/RustyCube/internal/cube"
	"github.com/bit-fu/RustyCube/internal/notation"
)

// findFor runs a search against the state produced by the given move
// text, bounded by the expanded input length.
func findFor(t *testing.T, size int, moveText string) *Result {
	t.Helper()
	moves, err := notation.Parse(moveText, size)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", moveText, err)
	}
	src := cube.New(size)
	dst := src.Clone()
	if err := dst.ApplySeq(moves); err != nil {
		t.Fatalf("ApplySeq(%q) failed: %v", moveText, err)
	}
	res, err := Find(src, dst, len(moves))
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	return res
}

func formatted(res *Result) []string {
	out := make([]string, len(res.Sequences))
	for i, seq := range res.Sequences {
		out[i] = notation.Format(seq)
	}
	return out
}

func TestAlphabetOrder(t *testing.T) {
	alpha := Alphabet(2)
	if len(alpha) != 12 {
		t.Fatalf("Alphabet(2) has %d moves, want 12", len(alpha))
	}
	want := []string{
		"X0", "X1", "x0", "x1",
		"Y0", "Y1", "y0", "y1",
		"Z0", "Z1", "z0", "z1",
	}
	for i, m := range alpha {
		if got := m.Notation(); got != want[i] {
			t.Errorf("Alphabet(2)[%d] = %s, want %s", i, got, want[i])
		}
	}
}

func TestAlphabetExcludesWholeCube(t *testing.T) {
	for _, m := range Alphabet(3) {
		if m.Layer >= 3 {
			t.Errorf("Alphabet(3) contains whole-cube move %s", m.Notation())
		}
	}
}

func TestFindRejectsSizeMismatch(t *testing.T) {
	if _, err := Find(cube.New(2), cube.New(3), 1); err == nil {
		t.Error("Find should reject cubes of different sizes")
	}
}

func TestFindEmptyInput(t *testing.T) {
	res := findFor(t, 3, "")
	if len(res.Sequences) != 1 || len(res.Sequences[0]) != 0 {
		t.Errorf("Searching the solved state with bound 0 should yield the empty sequence, got %v", formatted(res))
	}
	if res.Explored != 0 {
		t.Errorf("Explored = %d, want 0", res.Explored)
	}
}

func TestFindSelfCancellingInput(t *testing.T) {
	// X0 x0 is the identity, so the empty sequence already matches and
	// the search stops before making a single move.
	res := findFor(t, 2, "X0 x0")
	if len(res.Sequences) != 1 || len(res.Sequences[0]) != 0 {
		t.Errorf("Expected only the empty sequence, got %v", formatted(res))
	}
	if res.Explored != 0 {
		t.Errorf("Explored = %d, want 0", res.Explored)
	}
}

func TestFindKnownCounts(t *testing.T) {
	cases := []struct {
		size     int
		input    string
		count    int
		explored uint64
	}{
		{2, "X0", 1, 12},
		{2, "X0 X0", 1, 138},
		{2, "X0 Y1", 1, 138},
		{2, "X0 Y1 Z0", 1, 1458},
		{3, "X1 Y2", 1, 315},
		{3, "X1 X1 Y1 Y1", 2, 85923},
	}
	for _, tc := range cases {
		res := findFor(t, tc.size, tc.input)
		if len(res.Sequences) != tc.count {
			t.Errorf("N=%d %q: %d sequences, want %d: %v",
				tc.size, tc.input, len(res.Sequences), tc.count, formatted(res))
		}
		if res.Explored != tc.explored {
			t.Errorf("N=%d %q: %d exploratory moves, want %d",
				tc.size, tc.input, res.Explored, tc.explored)
		}
	}
}

func TestFindDoubleLayerPair(t *testing.T) {
	res := findFor(t, 3, "X1 X1 Y1 Y1")
	want := []string{"2X12Y1", "2Y12X1"}
	got := formatted(res)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sequences = %v, want %v", got, want)
	}
}

func TestFindLongerEquivalents(t *testing.T) {
	// A single middle-slice turn searched with bound 3 picks up the
	// conjugates that sandwich it between a turn and its inverse.
	moves, err := notation.Parse("X0", 3)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	src := cube.New(3)
	dst := src.Clone()
	if err := dst.ApplySeq(moves); err != nil {
		t.Fatalf("ApplySeq failed: %v", err)
	}
	res, err := Find(src, dst, 3)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	want := []string{"X0", "X1X0x1", "X2X0x2", "x1X0X1", "x2X0X2"}
	got := formatted(res)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sequences = %v, want %v", got, want)
	}
	if res.Explored != 4931 {
		t.Errorf("Explored = %d, want 4931", res.Explored)
	}
}

func TestFindIsDeterministic(t *testing.T) {
	a := formatted(findFor(t, 2, "X0 Y1 Z0"))
	b := formatted(findFor(t, 2, "X0 Y1 Z0"))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Two identical searches disagreed: %v vs %v", a, b)
	}
}

func TestFindCollectedSequencesReproduceTarget(t *testing.T) {
	size := 3
	moves, err := notation.Parse("X1 Y2", size)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	dst := cube.New(size)
	if err := dst.ApplySeq(moves); err != nil {
		t.Fatalf("ApplySeq failed: %v", err)
	}

	res, err := Find(cube.New(size), dst, 4)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(res.Sequences) == 0 {
		t.Fatal("Expected at least one sequence")
	}
	for _, seq := range res.Sequences {
		c := cube.New(size)
		if err := c.ApplySeq(seq); err != nil {
			t.Fatalf("ApplySeq(%s) failed: %v", notation.Format(seq), err)
		}
		if !c.Equal(dst) {
			t.Errorf("Sequence %s does not reproduce the target state", notation.Format(seq))
		}
		if len(seq) > 4 {
			t.Errorf("Sequence %s exceeds the bound", notation.Format(seq))
		}
	}
}

func TestFindTripleDoubleAnchor(t *testing.T) {
	if testing.Short() {
		t.Skip("takes tens of seconds")
	}

	res := findFor(t, 3, "2X1 2Y1 2Z1")
	if len(res.Sequences) != 18 {
		t.Errorf("Expected 18 sequences, got %d: %v", len(res.Sequences), formatted(res))
	}
	if res.Explored != 23351139 {
		t.Errorf("Explored = %d, want 23351139", res.Explored)
	}

	want := []string{
		"2X12Y12Z1", "2X12Z12Y1", "X12Y12Z1X1", "X12Z12Y1X1",
		"x12Y12Z1x1", "x12Z12Y1x1", "Y12X12Z1Y1", "2Y12X12Z1",
		"2Y12Z12X1", "Y12Z12X1Y1", "y12X12Z1y1", "y12Z12X1y1",
		"Z12X12Y1Z1", "Z12Y12X1Z1", "2Z12X12Y1", "2Z12Y12X1",
		"z12X12Y1z1", "z12Y12X1z1",
	}
	got := formatted(res)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sequences = %v, want %v", got, want)
	}
}
