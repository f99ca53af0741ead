package pocketcube

import "math/rand"

// Scramble returns n uniformly random base moves. Apply them to a fresh
// solved cube to produce a scrambled starting state:
//
//	c := pocketcube.New().ApplyMoves(pocketcube.Scramble(r, 20))
//
// A non-positive n yields a nil sequence.
func Scramble(r *rand.Rand, n int) []Move {
	if n <= 0 {
		return nil
	}
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = Move(r.Intn(int(numMoves)))
	}
	return moves
}
