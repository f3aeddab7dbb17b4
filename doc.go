// Package lexpath finds shortest transformation paths between short
// lowercase words under four elementary edits: duplicate the first letter,
// drop the first letter, rotate the word by one position, or shift a single
// letter one step up or down the alphabet (wrapping z→a and a→z).
//
// 🚀 What is lexpath?
//
//	A small, exact word-ladder engine built from two pieces:
//		• wordcodec — a word packed into one integer, 5 bits per letter,
//		  with the four edit operators defined directly on that encoding
//		• ladder    — level-synchronous BFS over the implicit edit graph,
//		  with predecessor tracking and full path reconstruction
//
// ✨ Why choose lexpath?
//
//   - Exact — unweighted BFS guarantees minimum-length paths, no heuristics
//   - Compact — a word is one uint64; the visited map stays small and flat
//   - Extensible — per-level hooks for progress, depth and length bounds
//   - Batchable — batch/ runs whole pair lists in parallel and appends
//     results to a shared, file-locked log
//
// Everything is organized under four packages:
//
//	wordcodec/   — packed Word type, codec, and the four edit operators
//	ladder/      — BFS search engine with options, hooks, and path rebuild
//	batch/       — pair lists, scheduling sort, parallel runner, result log
//	cmd/lexpath/ — CLI: solve a single pair or drive a whole batch file
//
// Quick taste:
//
//	res, err := ladder.Search("sick", "true")
//	if err != nil {
//	    // errors.Is(err, ladder.ErrPathNotFound) → exhausted, not a failure
//	}
//	fmt.Println(res.Depth, res.Path)
//
//	go get github.com/katalvlaran/lexpath
package lexpath
