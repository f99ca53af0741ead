// Package pocketcube models a 2x2x2 combination puzzle and finds optimal
// solutions by breadth-first search.
//
// # Cube Model
//
// A Cube is a value type holding 24 facelets in fixed geometric slots.
// Moves permute slot contents; applying a move returns a new Cube:
//
//	c := pocketcube.New()
//	c = c.Apply(pocketcube.FrontCW)
//	fmt.Println(c.IsSolved()) // false
//
// Six base moves exist: the front, left and down layers, each clockwise
// and counter-clockwise. Moves can be parsed from and formatted to
// standard notation:
//
//	moves, err := pocketcube.ParseMoves("F D' L")
//	fmt.Println(pocketcube.FormatMoves(moves)) // "F D' L"
//
// # Solving
//
// Solve returns a minimum-length move sequence that returns a cube to a
// solved configuration:
//
//	scramble := pocketcube.Scramble(rng, 20)
//	c := pocketcube.New().ApplyMoves(scramble)
//	solution := pocketcube.Solve(c)
//	fmt.Println(pocketcube.FormatMoves(solution))
//
// SolveContext is the cancellable variant for long scrambles.
//
// # Tracking
//
// Tracker wraps a Cube for interactive use, keeping move history and
// firing a callback when the cube reaches a solved state.
package pocketcube
