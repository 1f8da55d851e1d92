package saes

import (
	"github.com/codahale/saes/internal/nibble"
	"github.com/codahale/saes/internal/round"
)

// Round constants for the two expansion steps.
const (
	rcon1 = 0x80
	rcon2 = 0x30
)

// RoundKeys holds K0, K1 and K2, one per AddRoundKey step. K0 is always the key itself.
type RoundKeys [Rounds + 1]uint16

// Expand derives the round keys for key.
func Expand(key uint16) RoundKeys {
	w0, w1 := nibble.HighByte(key), nibble.LowByte(key)
	w2 := w0 ^ rcon1 ^ g(w1)
	w3 := w2 ^ w1
	w4 := w2 ^ rcon2 ^ g(w3)
	w5 := w4 ^ w3

	return RoundKeys{
		nibble.FromBytes(w0, w1),
		nibble.FromBytes(w2, w3),
		nibble.FromBytes(w4, w5),
	}
}

func g(b byte) byte {
	return round.SubByte(round.RotNib(b))
}
