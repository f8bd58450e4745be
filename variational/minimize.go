package variational

import (
	"fmt"

	"gonum.org/v1/gonum/optimize"
)

// Result reports the outcome of a parameter search.
type Result struct {
	// X is the best parameter vector found (betas then gammas).
	X []float64

	// F is the objective value at X. For MaximizeEdgeExpectation this is
	// the edge-cut probability itself (already un-negated).
	F float64

	// Evaluations counts objective calls consumed by the search.
	Evaluations int
}

// Minimize runs gonum's Nelder–Mead simplex on an arbitrary objective
// from the start vector x0. No gradient is required and none is estimated;
// the objective is treated as a black box.
func Minimize(obj func(x []float64) float64, x0 []float64) (*Result, error) {
	// 1. Defensive copy: gonum mutates the initial location.
	start := append([]float64(nil), x0...)

	// 2. Derivative-free local search with default convergence settings.
	problem := optimize.Problem{Func: obj}
	res, err := optimize.Minimize(problem, start, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("variational.Minimize: %w", err)
	}

	return &Result{
		X:           res.X,
		F:           res.F,
		Evaluations: res.Stats.FuncEvaluations,
	}, nil
}

// MaximizeEdgeExpectation searches for angles maximizing the edge-cut
// probability at the given (degree, depth), starting from the packed
// vector x0 (p betas then p gammas). It negates the objective for the
// minimizer and un-negates the reported value.
func MaximizeEdgeExpectation(degree, depth int, x0 []float64, opts ...Option) (*Result, error) {
	if _, _, err := splitPacked(x0); err != nil {
		return nil, fmt.Errorf("variational.MaximizeEdgeExpectation: %w", err)
	}
	obj, err := Objective(degree, depth, opts...)
	if err != nil {
		return nil, fmt.Errorf("variational.MaximizeEdgeExpectation: %w", err)
	}

	res, err := Minimize(func(x []float64) float64 { return -obj(x) }, x0)
	if err != nil {
		return nil, err
	}
	res.F = -res.F

	return res, nil
}
