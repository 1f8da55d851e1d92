// Package saes implements Simplified AES, a two-round teaching cipher with a 16-bit block and a 16-bit key.
//
// The state is a 2x2 matrix of 4-bit nibbles. Each round substitutes nibbles through a 4-bit S-box, swaps the nibbles
// of the second row, mixes the columns over GF(2^4) (except in the last round) and adds a round key. It is meant for
// studying the structure of AES by hand. It offers no security, no modes of operation, and no resistance to
// side-channel attacks.
package saes

import (
	"github.com/codahale/saes/internal/round"
)

// Rounds is the number of cipher rounds.
const Rounds = 2

// Encrypt enciphers a single block with round keys produced by Expand.
func Encrypt(block uint16, rk RoundKeys) uint16 {
	return EncryptTrace(block, rk, nil)
}

// Decrypt deciphers a single block with round keys produced by Expand. Decryption under the wrong key is not detected;
// it simply produces a different block.
func Decrypt(block uint16, rk RoundKeys) uint16 {
	return DecryptTrace(block, rk, nil)
}

// EncryptTrace is Encrypt, reporting the state to tr after every step. tr may be nil.
func EncryptTrace(block uint16, rk RoundKeys, tr Tracer) uint16 {
	s := round.AddRoundKey(block, rk[0])
	tr.emit(0, OpAddRoundKey, s)

	// Round 1.
	s = round.SubNibbles(s, false)
	tr.emit(1, OpSubNibbles, s)
	s = round.ShiftRow(s)
	tr.emit(1, OpShiftRow, s)
	s = round.MixColumns(s)
	tr.emit(1, OpMixColumns, s)
	s = round.AddRoundKey(s, rk[1])
	tr.emit(1, OpAddRoundKey, s)

	// Round 2 has no MixColumns.
	s = round.SubNibbles(s, false)
	tr.emit(2, OpSubNibbles, s)
	s = round.ShiftRow(s)
	tr.emit(2, OpShiftRow, s)
	s = round.AddRoundKey(s, rk[2])
	tr.emit(2, OpAddRoundKey, s)

	return s
}

// DecryptTrace is Decrypt, reporting the state to tr after every step. tr may be nil.
func DecryptTrace(block uint16, rk RoundKeys, tr Tracer) uint16 {
	s := round.AddRoundKey(block, rk[2])
	tr.emit(0, OpAddRoundKey, s)

	// Inverse of round 2, then the key and inverse mix of round 1.
	s = round.ShiftRow(s)
	tr.emit(1, OpShiftRow, s)
	s = round.SubNibbles(s, true)
	tr.emit(1, OpInvSubNibbles, s)
	s = round.AddRoundKey(s, rk[1])
	tr.emit(1, OpAddRoundKey, s)
	s = round.InvMixColumns(s)
	tr.emit(1, OpInvMixColumns, s)

	// Inverse of the rest of round 1.
	s = round.ShiftRow(s)
	tr.emit(2, OpShiftRow, s)
	s = round.SubNibbles(s, true)
	tr.emit(2, OpInvSubNibbles, s)
	s = round.AddRoundKey(s, rk[0])
	tr.emit(2, OpAddRoundKey, s)

	return s
}
