package pocketcube

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"F", FrontCW},
		{"F'", FrontCCW},
		{"D", DownCW},
		{"D'", DownCCW},
		{"L", LeftCW},
		{"L'", LeftCCW},
		{"f", FrontCW},
		{"d'", DownCCW},
		{" L ", LeftCW},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.in)
		if err != nil {
			t.Errorf("ParseMove(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "R", "U'", "F2", "FF", "X"} {
		if _, err := ParseMove(in); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) should return ErrInvalidNotation, got %v", in, err)
		}
	}
}

func TestParseMovesRoundTrip(t *testing.T) {
	in := "F D' L F' D L'"
	moves, err := ParseMoves(in)
	if err != nil {
		t.Fatalf("ParseMoves(%q) returned error: %v", in, err)
	}
	if got := FormatMoves(moves); got != in {
		t.Errorf("FormatMoves(ParseMoves(%q)) = %q", in, got)
	}
}

func TestParseMovesInvalidToken(t *testing.T) {
	if _, err := ParseMoves("F R D"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ParseMoves with invalid token should fail, got %v", err)
	}
}

func TestInversePairs(t *testing.T) {
	for _, m := range AllMoves {
		if m.Inverse().Inverse() != m {
			t.Errorf("Inverse of inverse of %s should be %s", m, m)
		}
	}
	if FrontCW.Inverse() != FrontCCW {
		t.Error("F inverse should be F'")
	}
	if DownCCW.Inverse() != DownCW {
		t.Error("D' inverse should be D")
	}
}

func TestFormatMovesEmpty(t *testing.T) {
	if got := FormatMoves(nil); got != "" {
		t.Errorf("FormatMoves(nil) = %q, want empty", got)
	}
}
