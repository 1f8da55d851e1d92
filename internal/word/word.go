// Package word parses and formats 16-bit cipher words as text.
//
// Words are written either in hex with a 0x prefix (0x6F6B) or in binary, with or without a 0b prefix
// (0b0110111101101011, 110111101101011).
package word

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmpty is returned when the input has no digits.
var ErrEmpty = errors.New("saes/word: no digits")

// SyntaxError is returned when the input holds a character that is not a digit of its base.
type SyntaxError struct {
	Input string
	Base  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("saes/word: %q is not a valid %s number", e.Input, baseName(e.Base))
}

// RangeError is returned when the input is well-formed but does not fit in 16 bits.
type RangeError struct {
	Input string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("saes/word: %q does not fit in 16 bits", e.Input)
}

// Parse reads a word in hex (0x prefix) or binary (optional 0b prefix). Surrounding whitespace is ignored.
func Parse(s string) (uint16, error) {
	in := strings.TrimSpace(s)

	base, digits := 2, in
	switch {
	case hasPrefix(in, "0x"):
		base, digits = 16, in[2:]
	case hasPrefix(in, "0b"):
		digits = in[2:]
	}

	if digits == "" {
		return 0, ErrEmpty
	}

	// ParseUint accepts its own prefixes and underscores when base is 0 only, so these are plain digits here.
	v, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &RangeError{Input: in}
		}
		return 0, &SyntaxError{Input: in, Base: base}
	}
	return uint16(v), nil
}

// Hex formats w as 0x followed by four upper-case hex digits.
func Hex(w uint16) string {
	return fmt.Sprintf("0x%04X", w)
}

// Binary formats w as 0b followed by sixteen binary digits.
func Binary(w uint16) string {
	return fmt.Sprintf("0b%016b", w)
}

// Nibbles formats w as four space-separated groups of binary digits, most significant first.
func Nibbles(w uint16) string {
	return fmt.Sprintf("%04b %04b %04b %04b", w>>12, (w>>8)&0xf, (w>>4)&0xf, w&0xf)
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func baseName(base int) string {
	switch base {
	case 2:
		return "binary"
	case 16:
		return "hexadecimal"
	default:
		return "base-" + strconv.Itoa(base)
	}
}
