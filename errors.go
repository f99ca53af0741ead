package pocketcube

import "errors"

// Sentinel errors for the pocketcube package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("pocketcube: invalid move notation")

	// Solver errors
	ErrNoSolution = errors.New("pocketcube: no solution found")
)
