// Package ladder finds exact shortest transformation paths between two
// lowercase words over the wordcodec edit operators, via level-synchronous
// breadth-first search with predecessor tracking.
//
// What
//
//   - Search(start, target, opts...) explores the implicit graph whose
//     vertices are packed Words and whose edges are single applications of
//     duplicate-first, pop, rotate, or a one-letter shift.
//   - Returns a Result containing:
//   - Path: decoded words from start to target inclusive
//   - Depth: number of BFS levels consumed (== len(Path)-1)
//   - Expanded: total distinct words discovered
//   - Supports a per-level progress hook (WithOnLevel), a depth bound
//     (WithMaxDepth, default 31), a word-growth cap (WithMaxWordLen,
//     default: the longer endpoint), and cancellation (WithContext).
//
// Why
//
//   - Every operator costs exactly one step, so unweighted BFS yields
//     provably minimal paths — no heuristics, no approximation.
//   - Storing only (depth, predecessor) per word keeps memory at O(1)
//     amortized per discovered word; the full path is rebuilt once, after
//     the target is found, by walking predecessors back to the root.
//
// Semantics
//
//	The search is level-synchronous: level d is fully expanded before
//	level d+1 begins, and the target is checked once per completed level.
//	Each word is inserted into the visited map exactly once, at its first
//	discovery — which BFS guarantees happens at minimal depth. When several
//	same-level words reach a new word, whichever came first in frontier
//	order becomes its predecessor; all such choices are equally minimal.
//
//	Reaching the depth bound, or draining the reachable state space, is a
//	legitimate negative outcome surfaced as ErrPathNotFound — never
//	conflated with invalid-input errors, which fail fast at the codec
//	boundary before any expansion.
//
// Complexity (S = words reachable within the bounds)
//
//   - Time:   O(S) — each word expanded once, ≤16 neighbors each
//   - Memory: O(S) — visited map plus two frontier slices
//
// Usage
//
//	res, err := ladder.Search("sick", "true",
//	    ladder.WithMaxDepth(31),
//	    ladder.WithOnLevel(func(depth, frontier, visited int) {
//	        fmt.Printf("%d: %d %d\n", depth, frontier, visited)
//	    }),
//	)
//	switch {
//	case errors.Is(err, ladder.ErrPathNotFound):
//	    // exhausted within the depth bound
//	case err != nil:
//	    // bad input or option, or context cancellation
//	default:
//	    fmt.Println(res.Depth, res.Path)
//	}
//
// Errors
//
//   - ErrPathNotFound     if the depth bound is hit or the frontier drains.
//   - ErrOptionViolation  if an invalid Option is supplied.
//   - Wrapped wordcodec errors for invalid start or target words.
//   - The context error if cancellation fires between levels.
package ladder
