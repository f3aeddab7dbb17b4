package wordcodec

// NumShifts is the size of the Shifts result array:
// MaxWordLen increment slots followed by MaxWordLen decrement slots.
const NumShifts = 2 * MaxWordLen

// DuplFirst returns w with its first letter duplicated: the whole word is
// shifted up one field and the first letter written back into field 0, so
// "abc" becomes "aabc". The second result is false when the word already
// has maxLen letters (or MaxWordLen, whichever is smaller) — growth past
// the cap has no neighbor, which is a legitimate outcome, not an error.
func (w Word) DuplFirst(maxLen int) (Word, bool) {
	if maxLen > MaxWordLen {
		maxLen = MaxWordLen
	}
	if w.Len() >= maxLen {
		return 0, false
	}

	return w<<letterBits | w&fieldMask, true
}

// Pop removes the first letter, shifting the rest down one field, so
// "abc" becomes "bc". The second result is false for one-letter words:
// a Word is never empty.
func (w Word) Pop() (Word, bool) {
	rest := w >> letterBits
	if rest == 0 {
		return 0, false
	}

	return rest, true
}

// Rotate returns the two single-step rotations of w: slot 0 moves the
// first letter to the end ("abc"→"bca"), slot 1 moves the last letter to
// the front ("abc"→"cab"). Both slots are zero for one-letter words, whose
// rotation would be a trivial self-loop. For periodic words the two slots
// may hold the same encoded value; that is correct and deliberately not
// deduplicated — Rotate always describes two rotation operations.
func (w Word) Rotate() [2]Word {
	n := w.Len()
	if n < 2 {
		return [2]Word{}
	}

	lastShift := uint((n - 1) * letterBits)
	first := w & fieldMask
	last := (w >> lastShift) & fieldMask

	left := w>>letterBits | first<<lastShift
	right := (w<<letterBits)&^(fieldMask<<(uint(n)*letterBits)) | last

	return [2]Word{left, right}
}

// Shifts returns the per-letter neighbors of w: slot i holds w with letter
// i shifted one step up the alphabet (wrapping 'z'→'a'), slot i+MaxWordLen
// holds the one-step-down neighbor (wrapping 'a'→'z'). Slots beyond the
// word's length are zero. Every occupied position always yields both
// neighbors, each distinct from w.
func (w Word) Shifts() [NumShifts]Word {
	var out [NumShifts]Word
	for i := 0; i < MaxWordLen; i++ {
		shift := uint(i * letterBits)
		c := (w >> shift) & fieldMask
		if c == 0 {
			break
		}

		base := w &^ (fieldMask << shift)
		up, down := c+1, c-1
		if up == 27 {
			up = 1
		}
		if down == 0 {
			down = 26
		}

		out[i] = base | up<<shift
		out[i+MaxWordLen] = base | down<<shift
	}

	return out
}

// Neighbors collects every word reachable from w by one operator
// application, in operator order: duplicate-first, pop, the NumShifts
// letter shifts, then both rotations. Empty slots are skipped; coinciding
// neighbors (e.g. both rotations of a periodic word) are kept as-is.
func (w Word) Neighbors(maxLen int) []Word {
	out := make([]Word, 0, NumShifts+4)
	if d, ok := w.DuplFirst(maxLen); ok {
		out = append(out, d)
	}
	if p, ok := w.Pop(); ok {
		out = append(out, p)
	}
	for _, s := range w.Shifts() {
		if s != 0 {
			out = append(out, s)
		}
	}
	for _, r := range w.Rotate() {
		if r != 0 {
			out = append(out, r)
		}
	}

	return out
}
