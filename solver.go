package pocketcube

import "context"

// moveNone marks the start state's self-referential visited entry.
const moveNone = numMoves

// step records how a state was first discovered: the state it was
// expanded from and the move that produced it.
type step struct {
	parent Cube
	move   Move
}

// Stats describes the work done by one solver invocation.
type Stats struct {
	// StatesExplored counts the distinct states discovered during the
	// search, including the start state.
	StatesExplored int
}

// Solve returns a minimum-length move sequence that brings start to a
// solved configuration. An already-solved cube yields an empty sequence.
func Solve(start Cube) []Move {
	solution, _, err := SolveWithStats(context.Background(), start)
	if err != nil {
		return nil
	}
	return solution
}

// SolveContext is SolveWithStats without the search statistics.
func SolveContext(ctx context.Context, start Cube) ([]Move, error) {
	solution, _, err := SolveWithStats(ctx, start)
	return solution, err
}

// SolveWithStats runs a breadth-first search over the state graph whose
// nodes are cube states and whose edges are the six base moves. Because
// every edge is unweighted, the first solved state dequeued is at
// minimum distance from start.
//
// The context is checked once per dequeue; cancellation returns
// ctx.Err(). ErrNoSolution is returned if the frontier empties without
// reaching a solved state, which cannot happen with the six-move basis
// but is defined rather than left as a silent fall-through.
func SolveWithStats(ctx context.Context, start Cube) ([]Move, Stats, error) {
	frontier := []Cube{start}
	parents := map[Cube]step{start: {parent: start, move: moveNone}}

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, Stats{StatesExplored: len(parents)}, err
		}

		u := frontier[0]
		frontier = frontier[1:]

		if u.IsSolved() {
			return reconstruct(parents, start, u), Stats{StatesExplored: len(parents)}, nil
		}

		for m := Move(0); m < numMoves; m++ {
			v := u.Apply(m)
			if _, seen := parents[v]; !seen {
				parents[v] = step{parent: u, move: m}
				frontier = append(frontier, v)
			}
		}
	}

	return nil, Stats{StatesExplored: len(parents)}, ErrNoSolution
}

// reconstruct follows parent links from the solved state back to start
// and returns the recorded moves in forward order.
func reconstruct(parents map[Cube]step, start, goal Cube) []Move {
	var solution []Move
	for node := goal; node != start; {
		s := parents[node]
		solution = append(solution, s.move)
		node = s.parent
	}
	for i, j := 0, len(solution)-1; i < j; i, j = i+1, j-1 {
		solution[i], solution[j] = solution[j], solution[i]
	}
	return solution
}
