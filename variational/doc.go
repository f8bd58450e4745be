// Package variational is the classical glue around the tensor-network
// core: it composes build → assign → contract into the scalar objective
//
//	(β, γ) ↦ 0.5 × (1 − Re⟨Z_a·Z_b⟩)
//
// (the probability that the measured edge is cut) and feeds it to a
// derivative-free minimizer.
//
// The core stays pure; everything stateful lives here and is
// caller-visible:
//
//   - Objective returns a closure over a parameter vector x packing
//     betas then gammas (len(x) = 2p). Malformed or NaN parameter vectors
//     yield NaN, never a panic or error, so an optimizer may probe freely.
//   - Evaluation counting is caller-supplied instrumentation
//     (WithObserver), not package state.
//   - Minimize / MaximizeEdgeExpectation wrap gonum's Nelder–Mead, which
//     needs no gradient.
//   - EvaluateBatch maps the objective over many parameter vectors with a
//     bounded worker pool; individual evaluations are independent pure
//     functions, so this parallelism is safe by construction.
//
// Errors:
//
//   - ErrParameterLength     x0 / params entries of odd or zero length.
//   - prefixtree.ErrInvalidParameter and friends from tree construction.
package variational
