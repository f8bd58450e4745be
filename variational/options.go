package variational

import "runtime"

// Observer receives one callback per objective evaluation: the running
// evaluation count (starting at 1), the probed parameter vector, and the
// value. Typical use is progress reporting around an optimizer run.
type Observer func(eval int, x []float64, value float64)

// Option configures the objective closures and batch evaluation.
type Option func(*config)

type config struct {
	observer Observer
	workers  int
}

func defaultConfig() config {
	return config{
		observer: nil,
		workers:  runtime.GOMAXPROCS(0),
	}
}

// WithObserver installs fn as the per-evaluation hook. It is invoked
// synchronously from the evaluating goroutine; Objective counts in call
// order, EvaluateBatch in completion order, so fn must be safe for
// concurrent use when the batch runs more than one worker.
func WithObserver(fn Observer) Option {
	return func(c *config) {
		c.observer = fn
	}
}

// WithWorkers caps the number of concurrent evaluations in EvaluateBatch.
// Values below 1 keep the default (GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.workers = n
		}
	}
}
