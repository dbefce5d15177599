package solver

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/danieljhkim/showorder/internal/clock"
	"github.com/danieljhkim/showorder/internal/model"
)

// Solve searches for the assignment of store that satisfies every hard
// constraint and maximizes the summed weight of satisfied soft constraints.
//
// Solve never runs past opts.Timeout. Running out of time is not an error:
// the solution reports StatusFeasible with the best assignment found, or
// StatusTimedOut when there is none. An error is returned only when ctx is
// canceled. All workers have exited when Solve returns.
func Solve(ctx context.Context, store *model.Store, opts Options) (*Solution, error) {
	opts = opts.withDefaults()
	logger := klog.FromContext(ctx).WithName("solver")

	start := opts.Clock.Now()
	deadline := clock.NewDeadline(opts.Clock, opts.Timeout)

	var runCtx context.Context
	var cancel context.CancelFunc
	if opts.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
	} else {
		runCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	idx := newIndex(store)
	best := newIncumbent()
	logger.V(1).Info("Starting search",
		"variables", store.Size(), "hard", len(idx.hard), "soft", len(idx.soft),
		"workers", opts.Workers, "seed", opts.Seed, "timeout", opts.Timeout)

	var proven atomic.Bool
	var nodes atomic.Int64

	g, gctx := errgroup.WithContext(runCtx)
	gctx = klog.NewContext(gctx, logger)
	for i := 0; i < opts.Workers; i++ {
		w := newWorker(gctx, i, idx, best, opts.Seed, deadline)
		g.Go(func() error {
			exhausted, err := w.run()
			nodes.Add(w.nodes)
			if exhausted {
				proven.Store(true)
				cancel()
				return nil
			}
			if errors.Is(err, errStopped) {
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("solver worker failed: %w", err)
	}

	if !proven.Load() && errors.Is(ctx.Err(), context.Canceled) {
		return nil, ctx.Err()
	}

	sol := &Solution{
		Nodes:   nodes.Load(),
		Elapsed: opts.Clock.Now().Sub(start),
		Seed:    opts.Seed,
	}
	values, score, found := best.get()
	switch {
	case proven.Load() && found:
		sol.Status = StatusOptimal
	case proven.Load():
		sol.Status = StatusInfeasible
	case found:
		sol.Status = StatusFeasible
	default:
		sol.Status = StatusTimedOut
	}
	if found {
		sol.Values = values
		sol.Score = score
	}

	logger.V(1).Info("Search finished",
		"status", sol.Status, "score", sol.Score, "nodes", sol.Nodes, "elapsed", sol.Elapsed)
	return sol, nil
}
