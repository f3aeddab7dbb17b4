// Package wordcodec packs a short lowercase word into a single integer and
// defines the four elementary edit operators directly on that encoding.
//
// What
//
//   - Word: a uint64 logically split into 5-bit fields, one per letter.
//     Field 0 (least significant) holds the first letter; values 1..26 map
//     to 'a'..'z' and 0 marks end-of-word.
//   - Encode / Word.String: exact inverses between strings and Words.
//   - Word.Len: letter count in O(1) from the leading-zero count.
//   - Operators, all pure, each producing zero, one, or two neighbors:
//   - DuplFirst — duplicate the first letter (bounded by a length cap)
//   - Pop       — drop the first letter (never produces an empty word)
//   - Rotate    — rotate left/right by one position (none for length 1)
//   - Shifts    — shift each letter one step up/down, wrapping z→a, a→z
//
// Why
//
//   - A Word is hashable and comparable by value, so BFS over the implicit
//     edit graph needs only a map[Word]... — no string hashing, no
//     allocation per neighbor.
//   - The encoding invariant (a valid Word is never zero, occupied fields
//     form a contiguous run from field 0) gives the zero value a free
//     meaning: "no word". Operator result arrays use it for empty slots.
//
// Capacity
//
//	MaxWordLen is 6 letters. The 5-bit fields would fit 12 letters in a
//	uint64, but the operator set is sized for the six-field configuration:
//	Shifts returns 12 slots (6 positions × up/down).
//
// Complexity
//
//	Every codec function and operator runs in O(1) time with zero heap
//	allocation, except Neighbors which allocates its result slice.
//
// Usage
//
//	w, err := wordcodec.Encode("abc")
//	if err != nil {
//	    // ErrEmptyWord, ErrNonLetter, or ErrTooLong
//	}
//	rot := w.Rotate()          // [bca cab]
//	up := w.Shifts()[0]        // bbc (first letter a→b)
//	d, ok := w.DuplFirst(6)    // aabc, true
//	p, ok := w.Pop()           // bc, true
//
// Errors
//
//   - ErrEmptyWord  if Encode is given an empty string.
//   - ErrNonLetter  if Encode meets anything outside 'a'..'z'.
//   - ErrTooLong    if the input exceeds MaxWordLen letters.
package wordcodec
