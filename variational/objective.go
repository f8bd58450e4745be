package variational

import (
	"fmt"
	"math"

	"github.com/lightcone/treeqaoa/contraction"
	"github.com/lightcone/treeqaoa/prefixtree"
	"github.com/lightcone/treeqaoa/qaoa"
)

// cutTransform maps the contracted correlator scalar to the edge-cut
// probability.
func cutTransform(zz complex128) float64 {
	return 0.5 * (1 - real(zz))
}

// EdgeExpectation evaluates the edge-cut probability for one angle
// schedule: it builds the measured-edge tree for (degree, depth), inserts
// the ZZ correlator, assigns the QAOA tensors under the canonical
// convention (see package qaoa), contracts, and applies 0.5·(1 − Re).
//
// depth must be at least 1 so the edge partner exists; depth ≥ p+1
// captures the full light cone (the partner branch sits one hop closer
// than its tree depth, so a depth-p tree still truncates distance-p
// nodes). Deeper trees are exact too - out-of-cone nodes contribute unit
// factors.
func EdgeExpectation(degree, depth int, betas, gammas []float64) (float64, error) {
	// 1. Tree for the measured edge.
	tree, root, err := prefixtree.New(degree, depth)
	if err != nil {
		return 0, fmt.Errorf("variational.EdgeExpectation: %w", err)
	}

	// 2. Per-node tensors with the two Pauli-Z insertions.
	tm, err := qaoa.Assign(betas, gammas, tree, root, qaoa.EdgeCorrelator(root))
	if err != nil {
		return 0, fmt.Errorf("variational.EdgeExpectation: %w", err)
	}

	// 3. Contract to the scalar ⟨Z_a·Z_b⟩.
	scalar, err := contraction.Contract(tree, root, tm, nil)
	if err != nil {
		return 0, fmt.Errorf("variational.EdgeExpectation: %w", err)
	}
	zz, err := scalar.ScalarValue()
	if err != nil {
		return 0, fmt.Errorf("variational.EdgeExpectation: %w", err)
	}

	return cutTransform(zz), nil
}

// splitPacked validates x = betas‖gammas and splits it without copying.
func splitPacked(x []float64) (betas, gammas []float64, err error) {
	if len(x) == 0 || len(x)%2 != 0 {
		return nil, nil, fmt.Errorf("variational: len(x)=%d: %w", len(x), ErrParameterLength)
	}
	p := len(x) / 2

	return x[:p], x[p:], nil
}

// Objective returns the edge-cut probability as a closure over a packed
// parameter vector, for handing to a black-box minimizer. The tree is
// validated once up front; per-evaluation failures (which a correct
// caller cannot trigger) and malformed probe vectors surface as NaN so
// the optimizer keeps a well-defined, if useless, value.
//
// The objective is a pure function of x; WithObserver adds the only side
// channel, a synchronous per-evaluation callback.
func Objective(degree, depth int, opts ...Option) (func(x []float64) float64, error) {
	if _, _, err := prefixtree.New(degree, depth); err != nil {
		return nil, fmt.Errorf("variational.Objective: %w", err)
	}

	cfg := defaultConfig()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}

	evals := 0
	obj := func(x []float64) float64 {
		betas, gammas, err := splitPacked(x)
		value := math.NaN()
		if err == nil {
			if v, eerr := EdgeExpectation(degree, depth, betas, gammas); eerr == nil {
				value = v
			}
		}
		if cfg.observer != nil {
			evals++
			cfg.observer(evals, x, value)
		}

		return value
	}

	return obj, nil
}
