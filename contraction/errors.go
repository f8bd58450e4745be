// Package contraction - sentinel errors.

package contraction

import "errors"

// ErrMissingTensor indicates the tensor map lacks an entry for a node the
// tree says exists. The map and tree were not produced together.
var ErrMissingTensor = errors.New("contraction: tensor map is missing a node")

// ErrLegMismatch indicates a reduced child tensor whose rank or dimension
// is incompatible with its parent. With a correctly built tree and tensor
// map this is unreachable; treat it as an assertion failure surfaced as an
// error, not as a condition to recover from.
var ErrLegMismatch = errors.New("contraction: tensor leg mismatch")
