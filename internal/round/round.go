// Package round implements the elementary S-AES round operations over a 16-bit state.
package round

import (
	"github.com/codahale/saes/internal/gf16"
	"github.com/codahale/saes/internal/nibble"
	"github.com/codahale/saes/internal/sbox"
)

// AddRoundKey XORs the round key k into w. It is its own inverse.
func AddRoundKey(w, k uint16) uint16 {
	return w ^ k
}

// SubNibbles passes every nibble of w through the S-box, or the inverse S-box if inv is set. Nibbles keep their slots.
func SubNibbles(w uint16, inv bool) uint16 {
	n := nibble.Split(w)
	for i := range n {
		n[i] = sbox.Substitute(n[i], inv)
	}
	return nibble.Join(n)
}

// ShiftRow swaps the two nibbles of the second row. Applying it twice is the identity, so decryption uses it as is.
func ShiftRow(w uint16) uint16 {
	n := nibble.Split(w)
	n[nibble.S10], n[nibble.S11] = n[nibble.S11], n[nibble.S10]
	return nibble.Join(n)
}

// MixColumns multiplies each column by [[1,4],[4,1]] over GF(2^4).
func MixColumns(w uint16) uint16 {
	return mix(w, 0x1, 0x4)
}

// InvMixColumns multiplies each column by [[9,2],[2,9]], undoing MixColumns.
func InvMixColumns(w uint16) uint16 {
	return mix(w, 0x9, 0x2)
}

// mix applies the circulant matrix [[d,o],[o,d]] to both columns.
func mix(w uint16, d, o byte) uint16 {
	n := nibble.Split(w)
	var r [nibble.Slots]byte
	for _, col := range [2][2]int{{nibble.S00, nibble.S10}, {nibble.S01, nibble.S11}} {
		top, bottom := n[col[0]], n[col[1]]
		r[col[0]] = gf16.Mul(d, top) ^ gf16.Mul(o, bottom)
		r[col[1]] = gf16.Mul(o, top) ^ gf16.Mul(d, bottom)
	}
	return nibble.Join(r)
}

// RotNib swaps the two nibbles of b.
func RotNib(b byte) byte {
	return b<<4 | b>>4
}

// SubByte passes both nibbles of b through the forward S-box.
func SubByte(b byte) byte {
	return sbox.Substitute(b>>4, false)<<4 | sbox.Substitute(b&0xf, false)
}
