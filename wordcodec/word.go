package wordcodec

import (
	"fmt"
	"math/bits"
)

const (
	// MaxWordLen is the number of letter fields a Word may occupy.
	MaxWordLen = 6

	// letterBits is the width of one letter field.
	letterBits = 5
)

// fieldMask selects one letter field (0b11111).
const fieldMask = Word(1<<letterBits - 1)

// Word is a lowercase word packed into a single integer: 5 bits per letter,
// field 0 (least significant) holds the first letter, values 1..26 map to
// 'a'..'z' and 0 marks end-of-word.
//
// Two invariants hold for every Word produced by Encode or an operator:
// the encoded value is never zero, and occupied fields form a contiguous
// run starting at field 0. The zero value therefore never collides with a
// valid Word and doubles as the "no word" slot in operator results.
type Word uint64

// Encode packs s into a Word. It fails fast on empty input, on any
// character outside 'a'..'z', and on inputs longer than MaxWordLen.
func Encode(s string) (Word, error) {
	if s == "" {
		return 0, ErrEmptyWord
	}
	if len(s) > MaxWordLen {
		return 0, fmt.Errorf("%w: %q has %d letters, capacity is %d", ErrTooLong, s, len(s), MaxWordLen)
	}
	var w Word
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("%w: %q at position %d", ErrNonLetter, rune(c), i)
		}
		w |= Word(c-'a'+1) << (i * letterBits)
	}

	return w, nil
}

// MustEncode is Encode for literals known to be valid; it panics otherwise.
func MustEncode(s string) Word {
	w, err := Encode(s)
	if err != nil {
		panic(err)
	}

	return w
}

// String decodes w back into its lowercase letters, reading successive
// fields from least to most significant until the zero sentinel.
// It is the exact inverse of Encode for every valid Word.
func (w Word) String() string {
	var buf [MaxWordLen]byte
	n := 0
	for v := w; v != 0; v >>= letterBits {
		buf[n] = byte(v&fieldMask) - 1 + 'a'
		n++
	}

	return string(buf[:n])
}

// Len reports the number of occupied letter fields.
// Complexity: O(1), via the bit length of the encoded value.
func (w Word) Len() int {
	return (bits.Len64(uint64(w)) + letterBits - 1) / letterBits
}
