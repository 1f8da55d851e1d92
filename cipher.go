package saes

import (
	"crypto/cipher"
	"encoding/binary"
	"strconv"
)

const (
	// BlockSize is the block size in bytes.
	BlockSize = 2

	// KeySize is the key size in bytes.
	KeySize = 2
)

// KeySizeError is returned by NewCipher for keys that are not KeySize bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "saes: invalid key size " + strconv.Itoa(int(k))
}

// NewCipher returns a cipher.Block for the big-endian 16-bit key. It encrypts exactly one block per call; no modes of
// operation are provided, and none should be built on it.
func NewCipher(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	return &block{rk: Expand(binary.BigEndian.Uint16(key))}, nil
}

type block struct {
	rk RoundKeys
}

func (b *block) BlockSize() int {
	return BlockSize
}

func (b *block) Encrypt(dst, src []byte) {
	checkBlock(dst, src)
	binary.BigEndian.PutUint16(dst, Encrypt(binary.BigEndian.Uint16(src), b.rk))
}

func (b *block) Decrypt(dst, src []byte) {
	checkBlock(dst, src)
	binary.BigEndian.PutUint16(dst, Decrypt(binary.BigEndian.Uint16(src), b.rk))
}

func checkBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panic("saes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("saes: output not full block")
	}
}

var _ cipher.Block = (*block)(nil)
