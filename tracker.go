package pocketcube

// Tracker wraps a Cube for interactive use: it applies moves, keeps an
// optional move history, and fires a callback when the cube reaches a
// solved state.
type Tracker struct {
	cube           Cube
	history        []Move
	keepHistory    bool
	solvedCallback func()
}

// NewTracker creates a tracker starting from a solved cube.
func NewTracker(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Tracker{
		cube:        New(),
		keepHistory: cfg.moveHistory,
	}
}

// SetSolvedCallback sets a callback that fires when an applied move
// brings the cube to a solved state.
func (t *Tracker) SetSolvedCallback(cb func()) {
	t.solvedCallback = cb
}

// Reset returns the tracker to a solved cube and clears the history.
func (t *Tracker) Reset() {
	t.cube = New()
	t.history = nil
}

// ApplyMove applies a move and checks for the solved transition.
func (t *Tracker) ApplyMove(m Move) {
	wasSolved := t.cube.IsSolved()
	t.cube = t.cube.Apply(m)
	if t.keepHistory {
		t.history = append(t.history, m)
	}
	if !wasSolved && t.cube.IsSolved() && t.solvedCallback != nil {
		t.solvedCallback()
	}
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// IsSolved reports whether the tracked cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Moves returns the applied move history. Empty when history tracking
// is disabled.
func (t *Tracker) Moves() []Move {
	return t.history
}

// Cube returns the current cube state.
func (t *Tracker) Cube() Cube {
	return t.cube
}

// CubeString returns the string rendering of the current state.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
