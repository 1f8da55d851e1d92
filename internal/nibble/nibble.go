// Package nibble slices a 16-bit cipher state into its 2x2 matrix of 4-bit nibbles.
//
// The state is packed column-major, most significant first: S00 | S10 | S01 | S11. Every other package addresses
// nibbles by slot (S00, S01, S10, S11) and never by bit offset, so the layout lives here and nowhere else.
package nibble

import "fmt"

// Slots of the state matrix, in row-major order.
const (
	S00 = iota // row 0, column 0: bits 15–12
	S01        // row 0, column 1: bits 7–4
	S10        // row 1, column 0: bits 11–8
	S11        // row 1, column 1: bits 3–0
)

// Slots is the number of nibbles in a state word.
const Slots = 4

func shift(i int) uint {
	switch i {
	case S00:
		return 12
	case S01:
		return 4
	case S10:
		return 8
	case S11:
		return 0
	default:
		panic(fmt.Sprintf("saes/nibble: invalid slot %d", i))
	}
}

// Check panics if n is not a 4-bit value.
func Check(n byte) {
	if n > 0xf {
		panic(fmt.Sprintf("saes/nibble: invalid nibble 0x%02x", n))
	}
}

// Get returns the nibble in slot i of w.
func Get(w uint16, i int) byte {
	return byte(w>>shift(i)) & 0xf
}

// Set returns w with slot i replaced by n.
func Set(w uint16, i int, n byte) uint16 {
	Check(n)
	s := shift(i)
	return w&^(0xf<<s) | uint16(n)<<s
}

// Split returns the four nibbles of w indexed by slot.
func Split(w uint16) (n [Slots]byte) {
	for i := range Slots {
		n[i] = Get(w, i)
	}
	return n
}

// Join is the inverse of Split.
func Join(n [Slots]byte) (w uint16) {
	for i := range Slots {
		w = Set(w, i, n[i])
	}
	return w
}

// HighByte returns bits 15–8 of w.
func HighByte(w uint16) byte {
	return byte(w >> 8)
}

// LowByte returns bits 7–0 of w.
func LowByte(w uint16) byte {
	return byte(w)
}

// FromBytes packs hi and lo into a word.
func FromBytes(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Row returns the high two bits of n, used as the S-box row.
func Row(n byte) byte {
	Check(n)
	return n >> 2
}

// Col returns the low two bits of n, used as the S-box column.
func Col(n byte) byte {
	Check(n)
	return n & 0x3
}
