package pocketcube

import (
	"math/rand"
	"testing"
)

func TestScrambleLength(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	moves := Scramble(r, 20)
	if len(moves) != 20 {
		t.Errorf("Scramble(r, 20) returned %d moves", len(moves))
	}
	for i, m := range moves {
		if m >= numMoves {
			t.Errorf("Move %d out of range: %d", i, m)
		}
	}
}

func TestScrambleNonPositive(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for _, n := range []int{0, -1, -100} {
		if moves := Scramble(r, n); moves != nil {
			t.Errorf("Scramble(r, %d) = %v, want nil", n, moves)
		}
	}
}
