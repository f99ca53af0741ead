package pocketcube

// Color represents a face color. Six colors exist, one per face on a
// solved cube.
type Color byte

const (
	Red     Color = 0
	Green   Color = 1
	Blue    Color = 2
	Cyan    Color = 3
	Magenta Color = 4
	Yellow  Color = 5
)

func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Cyan:
		return "C"
	case Magenta:
		return "M"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Facelet identifies a single sticker. Three colors are packed into
// disjoint 3-bit fields: the primary color visible on this facelet,
// followed by the colors of the other two facelets of the same corner
// cubelet, in fixed cyclic order.
type Facelet uint16

// newFacelet packs three colors into a facelet identifier.
func newFacelet(c1, c2, c3 Color) Facelet {
	return Facelet(c1)<<6 | Facelet(c2)<<3 | Facelet(c3)
}

// Color returns the primary (visible) color of the facelet.
func (f Facelet) Color() Color {
	return Color(f >> 6 & 0x7)
}

// String returns the three color codes packed into the facelet,
// primary color first.
func (f Facelet) String() string {
	return Color(f>>6&0x7).String() + Color(f>>3&0x7).String() + Color(f&0x7).String()
}

// The skeleton has 24 fixed slots. A slot is addressed by three binary
// coordinates plus a facing axis:
//
//	X axis: Front = 0, Back = 1
//	Y axis: Left = 0, Right = 1
//	Z axis: Down = 0, Up = 1
//	Face:   X-facing = 0, Y-facing = 1, Z-facing = 2
const numSlots = 24

// slotIndex derives the slot number from cubelet coordinates and the
// facing axis.
func slotIndex(x, y, z, face int) int {
	return (x<<2|y<<1|z)*3 + face
}

// SlotLabel renders a slot number as three axis letters with the facing
// axis parenthesized, e.g. "F(L)D" is the left-facing facelet of the
// cubelet at front-left-down.
func SlotLabel(slot int) string {
	s := slot / 3
	letters := [3]string{"F", "L", "D"}
	if s>>2&0x1 == 1 {
		letters[0] = "B"
	}
	if s>>1&0x1 == 1 {
		letters[1] = "R"
	}
	if s&0x1 == 1 {
		letters[2] = "U"
	}
	letters[slot%3] = "(" + letters[slot%3] + ")"
	return letters[0] + letters[1] + letters[2]
}
