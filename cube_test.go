package pocketcube

import (
	"math/rand"
	"sort"
	"strings"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, m := range AllMoves {
		c := New().Apply(m)
		if c.IsSolved() {
			t.Errorf("Cube should not be solved after %s", m)
		}
	}
}

func TestMoveFourTimesReturnsToSolved(t *testing.T) {
	// Each base rotation has order 4.
	for _, m := range AllMoves {
		c := New()
		for i := 0; i < 4; i++ {
			c = c.Apply(m)
		}
		if !c.IsSolved() {
			t.Errorf("%s x 4 should return to solved", m)
			t.Log(c.String())
		}
	}
}

func TestMoveThenInverseRoundTrip(t *testing.T) {
	// Exercise the round trip from a non-trivial state, not just the
	// solved one.
	r := rand.New(rand.NewSource(1))
	start := New().ApplyMoves(Scramble(r, 30))

	for _, m := range AllMoves {
		got := start.Apply(m).Apply(m.Inverse())
		if got != start {
			t.Errorf("%s then %s should restore the original state", m, m.Inverse())
		}
	}
}

func TestPermutationClosure(t *testing.T) {
	// Moves relabel slot contents; they never invent or destroy
	// facelets.
	r := rand.New(rand.NewSource(2))
	c := New().ApplyMoves(Scramble(r, 50))

	want := faceletMultiset(New())
	got := faceletMultiset(c)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("facelet multiset changed: got %v, want %v", got, want)
		}
	}
}

func faceletMultiset(c Cube) []Facelet {
	fs := make([]Facelet, numSlots)
	for i := 0; i < numSlots; i++ {
		fs[i] = c.Facelet(i)
	}
	sort.Slice(fs, func(i, j int) bool { return fs[i] < fs[j] })
	return fs
}

func TestInvalidMoveIsNoOp(t *testing.T) {
	c := New()
	if c.Apply(Move(42)) != c {
		t.Error("Out-of-range move should leave the cube unchanged")
	}
}

func TestDeterminism(t *testing.T) {
	if New() != New() {
		t.Error("Two fresh cubes should be equal")
	}

	seq := []Move{FrontCW, DownCCW, LeftCW, FrontCCW, DownCW}
	a := New().ApplyMoves(seq)
	b := New().ApplyMoves(seq)
	if a != b {
		t.Error("Same move sequence should produce equal states")
	}
}

func TestHashConsistentWithEquality(t *testing.T) {
	seq := []Move{LeftCW, LeftCW, DownCCW, FrontCW}
	a := New().ApplyMoves(seq)
	b := New().ApplyMoves(seq)
	if a != b {
		t.Fatal("States from the same sequence should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("Equal states must hash equal")
	}
}

func TestSlotLabel(t *testing.T) {
	cases := []struct {
		slot int
		want string
	}{
		{0, "(F)LD"},
		{1, "F(L)D"},
		{2, "FL(D)"},
		{23, "BR(U)"},
	}
	for _, tc := range cases {
		if got := SlotLabel(tc.slot); got != tc.want {
			t.Errorf("SlotLabel(%d) = %q, want %q", tc.slot, got, tc.want)
		}
	}
}

func TestStringVerdict(t *testing.T) {
	s := New().String()
	if !strings.HasSuffix(s, "SOLVED\n") || strings.HasSuffix(s, "UNSOLVED\n") {
		t.Errorf("Solved cube rendering should end with SOLVED, got %q", s)
	}

	s = New().Apply(FrontCW).String()
	if !strings.HasSuffix(s, "UNSOLVED\n") {
		t.Errorf("Scrambled cube rendering should end with UNSOLVED, got %q", s)
	}
}

func TestFaceletColors(t *testing.T) {
	f := newFacelet(Red, Blue, Magenta)
	if f.Color() != Red {
		t.Errorf("Primary color = %s, want R", f.Color())
	}
	if f.String() != "RBM" {
		t.Errorf("Facelet string = %q, want RBM", f.String())
	}
}
