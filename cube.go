package pocketcube

import "strings"

// Cube represents a 2x2x2 pocket cube as 24 facelets held in fixed
// geometric slots. Cube is a value type: two cubes are equal iff all 24
// slots hold the same facelet, and == compares exactly that. Apply
// returns a new Cube rather than mutating the receiver.
type Cube struct {
	slots [numSlots]Facelet
}

// faceColors assigns one color to each half of each axis. Every face of
// a brand new cube is monochromatic under this assignment.
var faceColors = [3][2]Color{
	{Red, Green},      // X faces: front, back
	{Blue, Cyan},      // Y faces: left, right
	{Magenta, Yellow}, // Z faces: down, up
}

// New returns the canonical solved cube.
func New() Cube {
	var c Cube
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				cubelet := [3]Color{faceColors[0][x], faceColors[1][y], faceColors[2][z]}
				for f := 0; f < 3; f++ {
					c.slots[slotIndex(x, y, z, f)] =
						newFacelet(cubelet[f], cubelet[(f+1)%3], cubelet[(f+2)%3])
				}
			}
		}
	}
	return c
}

// Apply returns the cube that results from applying move m. The facelet
// placed at slot i is the one that was at slot table[i] before the move.
// An out-of-range move value leaves the cube unchanged.
func (c Cube) Apply(m Move) Cube {
	if m >= numMoves {
		return c
	}
	tables := moveTables()
	var out Cube
	for i := 0; i < numSlots; i++ {
		out.slots[i] = c.slots[tables[m][i]]
	}
	return out
}

// ApplyMoves applies a sequence of moves in order.
func (c Cube) ApplyMoves(moves []Move) Cube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// IsSolved reports whether every face is monochromatic. Each slot's
// primary color is compared against the reference slot of its face: the
// slot with the two non-facing coordinates pinned to 0. Only the primary
// color matters; the sibling-color fields carry adjacency information
// that a solved face need not expose.
func (c Cube) IsSolved() bool {
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				for f := 0; f < 3; f++ {
					rx, ry, rz := 0, 0, 0
					switch f {
					case 0:
						rx = x
					case 1:
						ry = y
					case 2:
						rz = z
					}
					ref := c.slots[slotIndex(rx, ry, rz, f)].Color()
					if c.slots[slotIndex(x, y, z, f)].Color() != ref {
						return false
					}
				}
			}
		}
	}
	return true
}

// Hash returns an order-sensitive rolling hash over the 24 slots.
// Equal cubes always hash equal.
func (c Cube) Hash() uint64 {
	var h uint64
	for i := 0; i < numSlots; i++ {
		h = h*0xFFF + uint64(c.slots[i])
	}
	return h
}

// String renders the cube as 24 labeled slot assignments followed by a
// solved/unsolved verdict.
func (c Cube) String() string {
	var b strings.Builder
	for slot := 0; slot < numSlots; slot++ {
		b.WriteString("[")
		b.WriteString(SlotLabel(slot))
		b.WriteString("] = ")
		b.WriteString(c.slots[slot].String())
		b.WriteString("\n")
	}
	if c.IsSolved() {
		b.WriteString("SOLVED\n")
	} else {
		b.WriteString("UNSOLVED\n")
	}
	return b.String()
}

// Facelet returns the facelet currently held in the given slot.
func (c Cube) Facelet(slot int) Facelet {
	return c.slots[slot]
}
