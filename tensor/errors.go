// Package tensor - sentinel errors.
//
// Error policy (matches the rest of the module):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context (method tag, offending indices) via %w.
//   - No runtime panics: every public entry point returns an error instead.

package tensor

import "errors"

// ErrInvalidShape indicates a constructor received a negative dimension.
// Zero-length dimensions are allowed (they produce an empty tensor), as is
// an empty shape (a rank-0 scalar).
var ErrInvalidShape = errors.New("tensor: invalid shape")

// ErrBufferMismatch indicates FromValues received a buffer whose length
// does not equal the product of the requested dimensions.
var ErrBufferMismatch = errors.New("tensor: buffer length does not match shape")

// ErrOutOfRange indicates an At/Set call with the wrong number of indices
// or with an index outside its dimension.
var ErrOutOfRange = errors.New("tensor: index out of range")

// ErrNotScalar indicates Scalar() was called on a tensor that does not hold
// exactly one element.
var ErrNotScalar = errors.New("tensor: not a scalar")
