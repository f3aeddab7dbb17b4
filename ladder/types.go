// Package ladder provides tunable options and error definitions
// for the word-ladder search engine.
package ladder

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxDepth bounds the number of BFS levels a search may expand.
// Reaching it without finding the target is exhaustion, not an error in
// the search machinery itself.
const DefaultMaxDepth = 31

// Sentinel errors for search execution.
var (
	// ErrPathNotFound is returned when the depth bound is reached or the
	// frontier empties before the target word is discovered. It is a
	// legitimate negative result, distinguishable from input errors.
	ErrPathNotFound = errors.New("ladder: no path within depth bound")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")
)

// Option configures Search behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*SearchOptions)

// SearchOptions holds parameters and callbacks to customize a search run.
type SearchOptions struct {
	// Ctx allows cancellation and deadlines, checked once per level.
	Ctx context.Context

	// MaxDepth bounds the number of expansion levels (DefaultMaxDepth
	// when zero).
	MaxDepth int

	// MaxWordLen caps the length DuplFirst may grow words to. Zero derives
	// the cap from the longer of the two endpoint words; either way the cap
	// never exceeds the codec capacity.
	MaxWordLen int

	// OnLevel is called after each fully expanded level with the level's
	// depth, the size of the new frontier, and the total visited count.
	OnLevel func(depth, frontier, visited int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a SearchOptions with sane defaults:
//   - context.Background()
//   - MaxDepth = DefaultMaxDepth
//   - MaxWordLen derived from the endpoints
//   - no-op OnLevel hook.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Ctx:        context.Background(),
		MaxDepth:   DefaultMaxDepth,
		MaxWordLen: 0,
		OnLevel:    func(int, int, int) {},
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the search at the given number of levels.
//
//	d > 0: expand at most d levels
//	d == 0: keep DefaultMaxDepth
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *SearchOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			o.MaxDepth = DefaultMaxDepth
		default:
			o.MaxDepth = d
		}
	}
}

// WithMaxWordLen caps how long duplicated words may grow.
//
//	n > 0: cap at n letters (clamped to the codec capacity)
//	n == 0: derive from the endpoint words
//	n < 0: invalid option → ErrOptionViolation
func WithMaxWordLen(n int) Option {
	return func(o *SearchOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxWordLen cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxWordLen = n
	}
}

// WithOnLevel registers a per-level progress callback.
func WithOnLevel(fn func(depth, frontier, visited int)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// Result holds the outcome of a successful search:
//   - Path: decoded words from start to target inclusive, each consecutive
//     pair one operator application apart.
//   - Depth: number of BFS levels consumed (len(Path)-1).
//   - Expanded: total distinct words discovered, including the start.
type Result struct {
	Path     []string
	Depth    int
	Expanded int
}
