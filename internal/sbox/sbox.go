// Package sbox provides the 4-bit substitution box and its inverse.
package sbox

import "github.com/codahale/saes/internal/nibble"

//nolint:gochecknoglobals // read-only after init
var (
	forward = [4][4]byte{
		{0x9, 0x4, 0xa, 0xb},
		{0xd, 0x1, 0x8, 0x5},
		{0x6, 0x2, 0x0, 0x3},
		{0xc, 0xe, 0xf, 0x7},
	}

	inverse = [4][4]byte{
		{0xa, 0x5, 0x9, 0xb},
		{0x1, 0x7, 0x8, 0xf},
		{0x6, 0x0, 0x2, 0x3},
		{0xc, 0x4, 0xd, 0xe},
	}
)

// Substitute replaces n with its entry in the forward table, or in the inverse table if inv is set. The high two bits
// of n select the row and the low two bits the column. It panics if n is wider than four bits.
func Substitute(n byte, inv bool) byte {
	row, col := nibble.Row(n), nibble.Col(n)
	if inv {
		return inverse[row][col]
	}
	return forward[row][col]
}

// Forward returns a copy of the forward table.
func Forward() [4][4]byte {
	return forward
}

// Inverse returns a copy of the inverse table.
func Inverse() [4][4]byte {
	return inverse
}
