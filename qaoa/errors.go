// Package qaoa - sentinel errors.

package qaoa

import "errors"

// ErrDimensionMismatch indicates inconsistent assignment inputs: betas and
// gammas of different lengths, an empty schedule (p must be ≥ 1), an
// extra-operator path that does not belong to the tree, or an operator
// matrix whose shape is not 2×2 (or 4×4 at the root of a measured-edge
// tree).
var ErrDimensionMismatch = errors.New("qaoa: dimension mismatch")

// ErrTreeNil is returned when Assign receives a nil tree.
var ErrTreeNil = errors.New("qaoa: tree is nil")
