package batch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lexpath/ladder"
)

// Outcome is the verdict of one pair's search. A search that exhausted its
// depth bound has Found=false and Err=nil; Err is reserved for invalid
// words, bad options, and cancellation.
type Outcome struct {
	Pair
	Found   bool
	Depth   int
	Path    []string
	Elapsed time.Duration
	Err     error
}

// Runner executes searches for a list of pairs on a bounded worker pool.
type Runner struct {
	// Workers bounds concurrent searches; values < 1 mean one worker.
	Workers int

	// MaxDepth overrides the engine's depth bound when > 0.
	MaxDepth int

	// Log, when set, receives every outcome as an appended line.
	Log *ResultLog

	// OnResult, when set, is called for every outcome as it completes.
	// Calls are serialized; completion order is not the input order.
	OnResult func(Outcome)
}

// Run searches every pair and returns outcomes in input order. Individual
// bad pairs are reported in their Outcome, not as a Run error; Run itself
// fails only when the result log cannot be written or the context dies.
func (r *Runner) Run(ctx context.Context, pairs []Pair) ([]Outcome, error) {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	runID := uuid.NewString()
	outcomes := make([]Outcome, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex // serializes log appends and OnResult calls
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			out := r.searchOne(ctx, p)

			mu.Lock()
			defer mu.Unlock()
			if r.Log != nil {
				if err := r.Log.Append(runID, out); err != nil {
					return err
				}
			}
			if r.OnResult != nil {
				r.OnResult(out)
			}
			outcomes[i] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outcomes, err
	}

	return outcomes, nil
}

// searchOne runs a single search and folds its three-way result
// (found / exhausted / failed) into an Outcome.
func (r *Runner) searchOne(ctx context.Context, p Pair) Outcome {
	opts := []ladder.Option{ladder.WithContext(ctx)}
	if r.MaxDepth > 0 {
		opts = append(opts, ladder.WithMaxDepth(r.MaxDepth))
	}

	started := time.Now()
	res, err := ladder.Search(p.Start, p.Target, opts...)
	out := Outcome{Pair: p, Elapsed: time.Since(started)}

	switch {
	case err == nil:
		out.Found = true
		out.Depth = res.Depth
		out.Path = res.Path
	case errors.Is(err, ladder.ErrPathNotFound):
		// exhaustion is a recorded verdict, not a failure
	default:
		out.Err = err
	}

	return out
}
