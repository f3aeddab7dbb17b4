// Package ladder runs breadth-first search over the implicit graph of
// words reachable by the wordcodec edit operators, returning a shortest
// transformation path from a start word to a target word.
package ladder

import (
	"fmt"

	"github.com/katalvlaran/lexpath/wordcodec"
)

// visit records the level a word was first discovered at and the word it
// was discovered from. The start word is its own parent, marking the root.
type visit struct {
	depth  int
	parent wordcodec.Word
}

// walker encapsulates mutable search state for one invocation.
// Neither the visited map nor the frontier survives a run.
type walker struct {
	opts     SearchOptions
	maxLen   int
	visited  map[wordcodec.Word]visit
	frontier []wordcodec.Word
}

// Search finds a minimum-length sequence of edit operator applications
// transforming start into target, applying any number of functional
// Options. Invalid words fail fast with wrapped wordcodec errors;
// exhausting the depth bound returns ErrPathNotFound.
func Search(start, target string, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate both endpoints at the codec boundary, before any expansion.
	src, err := wordcodec.Encode(start)
	if err != nil {
		return nil, fmt.Errorf("ladder: start word: %w", err)
	}
	dst, err := wordcodec.Encode(target)
	if err != nil {
		return nil, fmt.Errorf("ladder: target word: %w", err)
	}

	if src == dst {
		return &Result{Path: []string{start}, Depth: 0, Expanded: 1}, nil
	}

	w := &walker{
		opts:     o,
		maxLen:   lengthCap(o.MaxWordLen, src, dst),
		visited:  map[wordcodec.Word]visit{src: {depth: 0, parent: src}},
		frontier: []wordcodec.Word{src},
	}

	return w.run(dst)
}

// lengthCap resolves the DuplFirst growth cap: the explicit option when
// set, otherwise the longer endpoint, always clamped to codec capacity.
func lengthCap(optCap int, src, dst wordcodec.Word) int {
	limit := optCap
	if limit == 0 {
		limit = src.Len()
		if l := dst.Len(); l > limit {
			limit = l
		}
	}
	if limit > wordcodec.MaxWordLen {
		limit = wordcodec.MaxWordLen
	}

	return limit
}

// run expands one full level per iteration. The target is checked only
// after a level completes, so the reported depth is exactly the level the
// target was first discovered at.
func (w *walker) run(dst wordcodec.Word) (*Result, error) {
	for depth := 1; depth <= w.opts.MaxDepth; depth++ {
		// cancellation check (once per level)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		w.expand(depth)
		w.opts.OnLevel(depth, len(w.frontier), len(w.visited))

		if _, found := w.visited[dst]; found {
			return &Result{
				Path:     w.rebuild(dst),
				Depth:    depth,
				Expanded: len(w.visited),
			}, nil
		}
		if len(w.frontier) == 0 {
			// state space exhausted below the depth bound
			break
		}
	}

	return nil, ErrPathNotFound
}

// expand replaces the frontier with all words first discovered at depth,
// recording each one's predecessor. Insert-if-absent keeps the first
// discovery: BFS guarantees it happened at minimal depth.
func (w *walker) expand(depth int) {
	next := make([]wordcodec.Word, 0, len(w.frontier)*2)
	for _, k := range w.frontier {
		for _, nb := range k.Neighbors(w.maxLen) {
			if _, seen := w.visited[nb]; seen {
				continue
			}
			w.visited[nb] = visit{depth: depth, parent: k}
			next = append(next, nb)
		}
	}
	w.frontier = next
}

// rebuild walks predecessor links from dst back to the self-parented root
// and reverses the chain into start→target order.
func (w *walker) rebuild(dst wordcodec.Word) []string {
	chain := make([]wordcodec.Word, 0, w.visited[dst].depth+1)
	for cur := dst; ; {
		chain = append(chain, cur)
		v := w.visited[cur]
		if v.parent == cur {
			break
		}
		cur = v.parent
	}

	path := make([]string, len(chain))
	for i, word := range chain {
		path[len(chain)-1-i] = word.String()
	}

	return path
}
