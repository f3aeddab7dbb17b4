package wordcodec

import "errors"

// Sentinel errors for word encoding. All three are configuration errors:
// they mean the caller handed over input that can never be a valid Word,
// not that a search came up empty.
var (
	// ErrEmptyWord indicates an empty input string.
	ErrEmptyWord = errors.New("wordcodec: word must have at least one letter")
	// ErrNonLetter indicates a character outside 'a'..'z'.
	ErrNonLetter = errors.New("wordcodec: word may contain only lowercase ASCII letters")
	// ErrTooLong indicates the input exceeds MaxWordLen letters.
	ErrTooLong = errors.New("wordcodec: word exceeds encoding capacity")
)
