package pocketcube

import "testing"

func TestTrackerStartsSolved(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMove(FrontCW)
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after move")
	}

	tr.Reset()
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
	if len(tr.Moves()) != 0 {
		t.Error("Reset should clear move history")
	}
}

func TestTrackerHistory(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMoves([]Move{FrontCW, DownCW, FrontCCW})
	if got := FormatMoves(tr.Moves()); got != "F D F'" {
		t.Errorf("History = %q, want %q", got, "F D F'")
	}
}

func TestTrackerHistoryDisabled(t *testing.T) {
	tr := NewTracker(WithMoveHistory(false))
	tr.ApplyMoves([]Move{FrontCW, DownCW})
	if len(tr.Moves()) != 0 {
		t.Error("History should be empty when tracking is disabled")
	}
}

func TestTrackerSolvedCallback(t *testing.T) {
	tr := NewTracker()

	fired := 0
	tr.SetSolvedCallback(func() { fired++ })

	tr.ApplyMove(FrontCW)
	if fired != 0 {
		t.Error("Callback should not fire while unsolved")
	}

	tr.ApplyMove(FrontCCW)
	if fired != 1 {
		t.Errorf("Callback should fire once on the solved transition, fired %d times", fired)
	}
}
