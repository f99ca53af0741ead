package pocketcube

import "sync"

// The six move tables are permutations of the 24 slots: after applying
// move m, slot i holds the facelet that table[m][i] held before. The
// tables depend only on geometry, never on any particular cube's colors,
// so they are built once and shared read-only by every Cube.
var (
	tablesOnce sync.Once
	tables     [numMoves][numSlots]int
)

func moveTables() *[numMoves][numSlots]int {
	tablesOnce.Do(buildTables)
	return &tables
}

// cubeletCycle describes how a quarter turn migrates four cubelets and
// relabels their facelet facings: the cubelet at from[i] ends up at
// to[i], and the facelet that was facing axis a ends up facing
// faceTo[a].
type cubeletCycle struct {
	from, to [4][3]int
	faceTo   [3]int
}

func buildTables() {
	for m := range tables {
		for i := range tables[m] {
			tables[m][i] = i
		}
	}

	cycles := map[Move]cubeletCycle{
		// Front layer, clockwise:
		// (F,L,D) -> (F,L,U) -> (F,R,U) -> (F,R,D) -> (F,L,D)
		FrontCW: {
			from:   [4][3]int{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
			to:     [4][3]int{{0, 0, 1}, {0, 1, 1}, {0, 1, 0}, {0, 0, 0}},
			faceTo: [3]int{0, 2, 1},
		},
		// Left layer, clockwise:
		// (F,L,D) -> (F,L,U) -> (B,L,U) -> (B,L,D) -> (F,L,D)
		LeftCW: {
			from:   [4][3]int{{0, 0, 0}, {0, 0, 1}, {1, 0, 1}, {1, 0, 0}},
			to:     [4][3]int{{0, 0, 1}, {1, 0, 1}, {1, 0, 0}, {0, 0, 0}},
			faceTo: [3]int{2, 1, 0},
		},
		// Down layer, clockwise:
		// (F,L,D) -> (F,R,D) -> (B,R,D) -> (B,L,D) -> (F,L,D)
		DownCW: {
			from:   [4][3]int{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
			to:     [4][3]int{{0, 1, 0}, {1, 1, 0}, {1, 0, 0}, {0, 0, 0}},
			faceTo: [3]int{1, 0, 2},
		},
	}

	for m, cyc := range cycles {
		for c := 0; c < 4; c++ {
			for f := 0; f < 3; f++ {
				src := slotIndex(cyc.from[c][0], cyc.from[c][1], cyc.from[c][2], f)
				dst := slotIndex(cyc.to[c][0], cyc.to[c][1], cyc.to[c][2], cyc.faceTo[f])
				tables[m][src] = dst
			}
		}
	}

	// Counter-clockwise tables are the exact inverse permutations of
	// their clockwise counterparts.
	for _, m := range []Move{FrontCW, LeftCW, DownCW} {
		for i := 0; i < numSlots; i++ {
			tables[m.Inverse()][tables[m][i]] = i
		}
	}
}
