package saes

import (
	"github.com/codahale/saes/internal/gf16"
	"github.com/codahale/saes/internal/sbox"
)

// SBox returns a copy of the S-box, indexed by the high and low two bits of a nibble.
func SBox() [4][4]byte {
	return sbox.Forward()
}

// InvSBox returns a copy of the inverse S-box.
func InvSBox() [4][4]byte {
	return sbox.Inverse()
}

// GF16 returns a copy of the GF(2^4) multiplication table used by MixColumns.
func GF16() [16][16]byte {
	return gf16.Table()
}
