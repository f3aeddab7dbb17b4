// Package batch drives the ladder search engine over whole lists of word
// pairs: loading and scheduling the pairs, running searches in parallel,
// and appending each outcome to a shared, file-locked result log.
//
// What
//
//   - LoadPairs reads "start target" lines from a plain-text file, or a
//     YAML list when the file ends in .yaml/.yml.
//   - SortPairs orders pairs by the scheduling heuristic: shorter word
//     pairs first (cheapest state spaces), ties broken lexicographically.
//   - Runner fans the searches out over a bounded worker pool. Each search
//     owns its visited map; only the log and the OnResult callback are
//     shared, and both are serialized.
//   - ResultLog appends one line per outcome under an advisory file lock,
//     so concurrent processes interleave whole lines only. Every Run is
//     tagged with a fresh run ID recorded on each of its lines.
//
// Why
//
//	The search core is deliberately single-threaded; parallelism belongs
//	at the batch boundary, where runs are independent. A drained or
//	depth-bounded search (ladder.ErrPathNotFound) is recorded as a
//	not-found outcome, not as a run failure.
//
// Usage
//
//	pairs, err := batch.LoadPairs("pairs.txt")
//	batch.SortPairs(pairs)
//	r := &batch.Runner{Workers: 4, Log: batch.NewResultLog("results.log")}
//	outcomes, err := r.Run(ctx, pairs)
package batch
