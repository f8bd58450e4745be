package variational

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// EvaluateBatch evaluates the edge-cut objective at many packed parameter
// vectors concurrently and returns the values in matching order. Each
// evaluation is an independent pure function over its own tensor map, so
// the only coordination needed is the bounded worker pool.
//
// An Observer installed via WithObserver fires once per completed
// evaluation. The count reflects completion order, which under concurrent
// workers is not the order of params; use the echoed vector to correlate.
//
// All vectors are validated up front; a malformed entry fails the whole
// batch with ErrParameterLength before any evaluation starts.
func EvaluateBatch(degree, depth int, params [][]float64, opts ...Option) ([]float64, error) {
	// 1. Resolve options and validate inputs eagerly.
	cfg := defaultConfig()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}
	for i, x := range params {
		if _, _, err := splitPacked(x); err != nil {
			return nil, fmt.Errorf("variational.EvaluateBatch: params[%d]: %w", i, err)
		}
	}

	// 2. Fan out over a bounded pool; results land at their own index, so
	//    only the observer's evaluation counter needs a lock.
	values := make([]float64, len(params))
	var (
		group errgroup.Group
		mu    sync.Mutex
		evals int
	)
	group.SetLimit(cfg.workers)
	for i, x := range params {
		i, x := i, x
		group.Go(func() error {
			betas, gammas, _ := splitPacked(x)
			v, err := EdgeExpectation(degree, depth, betas, gammas)
			if err != nil {
				return fmt.Errorf("variational.EvaluateBatch: params[%d]: %w", i, err)
			}
			values[i] = v
			if cfg.observer != nil {
				mu.Lock()
				evals++
				n := evals
				mu.Unlock()
				cfg.observer(n, x, v)
			}

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return values, nil
}
