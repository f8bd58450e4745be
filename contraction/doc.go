// Package contraction reduces an assigned tree tensor network to a scalar
// by post-order recursion: children first, each child subtree collapsing
// to a rank-1 message over its parent-facing leg, then the parent folding
// every message into its own tensor.
//
// Leg bookkeeping (must match package qaoa exactly - a mismatched leg
// order is a correctness bug, not a performance issue):
//
//   - A node tensor is rank 2 [parentLeg, confLeg]; the root is rank 1
//     [confLeg]. A reduced child is rank 1 over the shared leg.
//   - A child message of length L folds into the parent's configuration
//     leg by index prefix: entry conf contributes message[conf mod L],
//     because the shared leg enumerates the leading time points of the
//     parent's trajectory. L must therefore divide the parent's
//     configuration dimension; anything else is ErrLegMismatch.
//
// Children are contracted in ascending index order. Contraction is
// associative and commutative up to floating-point rounding, so the fixed
// order exists purely for bit-reproducible results.
//
// The top-level call Contract(tree, root, tm, nil) returns a rank-0
// scalar; the caller owns the final classical transform
// 0.5 × (1 − Re(scalar)).
//
// Errors:
//
//   - ErrMissingTensor  the tensor map has no entry for a tree node.
//   - ErrLegMismatch    a reduced child is incompatible with its parent's
//     legs. Indicates a programming error in assignment, never a
//     recoverable input condition.
//   - prefixtree.ErrPathOutOfRange / ErrTreeNil from path resolution.
package contraction
