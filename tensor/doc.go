// Package tensor provides a minimal dense complex tensor value for tree
// tensor-network contraction: an explicit dimension vector plus a flat
// row-major complex128 buffer.
//
// Design notes:
//
//   - Shape is a plain []int; rank 0 (a scalar holding exactly one value)
//     is legal and is what a full contraction returns.
//   - Storage is row-major with the explicit offset formula
//     off = ((i0*d1 + i1)*d2 + i2)..., matching the cache-friendly layout
//     used elsewhere in this module.
//   - Leg semantics (which index is parent-facing, which is the local
//     configuration leg) are a convention of the consuming packages; tensor
//     itself only guarantees shape/offset bookkeeping.
//   - At/Set return errors instead of panicking; hot loops are expected to
//     work on the flat buffer via Data().
//
// Complexity:
//
//   - New: O(size) zero-init; At/Set: O(rank); Clone: O(size).
//
// Errors:
//
//   - ErrInvalidShape    negative dimension in a constructor.
//   - ErrBufferMismatch  FromValues buffer length does not match the shape.
//   - ErrOutOfRange      index arity or bounds violation in At/Set.
//   - ErrNotScalar       Scalar() on a tensor with more than one element.
package tensor
