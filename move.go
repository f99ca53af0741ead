package pocketcube

import "strings"

// Move is one of the six base moves: the front, down and left layers,
// each clockwise and counter-clockwise. The back, up and right layers
// are not independently rotatable on a 2x2x2 cube; turning them is
// equivalent to turning the opposite layer the other way.
type Move uint8

const (
	FrontCW Move = iota
	FrontCCW
	DownCW
	DownCCW
	LeftCW
	LeftCCW

	numMoves
)

// AllMoves lists the six base moves in table order.
var AllMoves = []Move{FrontCW, FrontCCW, DownCW, DownCCW, LeftCW, LeftCCW}

// Notation returns the standard cube notation for the move.
// Examples: F, F', D, D', L, L'
func (m Move) Notation() string {
	switch m {
	case FrontCW:
		return "F"
	case FrontCCW:
		return "F'"
	case DownCW:
		return "D"
	case DownCCW:
		return "D'"
	case LeftCW:
		return "L"
	case LeftCCW:
		return "L'"
	default:
		return "?"
	}
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes this one.
// F becomes F', F' becomes F, and so on.
func (m Move) Inverse() Move {
	if m >= numMoves {
		return m
	}
	// CW and CCW variants occupy adjacent values.
	return m ^ 1
}

// ParseMove parses a standard notation string into a Move.
// Examples: F, F', D, D', L, L'
// Returns ErrInvalidNotation if the string is not one of the six base
// moves.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, ErrInvalidNotation
	}

	var cw Move
	switch s[0] {
	case 'F', 'f':
		cw = FrontCW
	case 'D', 'd':
		cw = DownCW
	case 'L', 'l':
		cw = LeftCW
	default:
		return 0, ErrInvalidNotation
	}

	switch s[1:] {
	case "":
		return cw, nil
	case "'", "`":
		return cw.Inverse(), nil
	default:
		return 0, ErrInvalidNotation
	}
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "F D' L F'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation
// string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
