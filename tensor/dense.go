// Package tensor - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major complex buffer behind an explicit shape vector.
//   - Guarantee safety at the public surface: At/Set return errors, never panic.
//   - Keep algorithmic determinism (fixed offset formula, no map iteration).

package tensor

import "fmt"

// method tags used in error wrappers
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// Dense is a dense complex tensor.
//   - shape holds the per-leg dimensions; len(shape) is the rank.
//   - data is a flat buffer of length prod(shape) in row-major order.
//
// A rank-0 Dense has an empty shape and a single element.
type Dense struct {
	shape []int        // per-leg dimensions (all >= 0)
	data  []complex128 // contiguous row-major storage
}

// New allocates a zero-filled tensor with the given shape.
// New() with no arguments yields a rank-0 scalar initialized to 0.
// Returns ErrInvalidShape if any dimension is negative.
func New(shape ...int) (*Dense, error) {
	size := 1
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("tensor.New(%v): %w", shape, ErrInvalidShape)
		}
		size *= d
	}
	// Copy the shape so the caller cannot mutate it behind our back.
	s := make([]int, len(shape))
	copy(s, shape)

	return &Dense{shape: s, data: make([]complex128, size)}, nil
}

// FromValues builds a tensor over a copy of the given buffer.
// Returns ErrInvalidShape for negative dimensions and ErrBufferMismatch
// when len(values) != prod(shape).
func FromValues(shape []int, values []complex128) (*Dense, error) {
	t, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(values) != len(t.data) {
		return nil, fmt.Errorf("tensor.FromValues: len=%d want=%d: %w",
			len(values), len(t.data), ErrBufferMismatch)
	}
	copy(t.data, values)

	return t, nil
}

// Scalar allocates a rank-0 tensor holding v.
func Scalar(v complex128) *Dense {
	return &Dense{shape: []int{}, data: []complex128{v}}
}

// Rank returns the number of legs.
func (t *Dense) Rank() int { return len(t.shape) }

// Size returns the total number of elements.
func (t *Dense) Size() int { return len(t.data) }

// Dim returns the dimension of leg i, or 0 if i is out of range.
func (t *Dense) Dim(i int) int {
	if i < 0 || i >= len(t.shape) {
		return 0
	}

	return t.shape[i]
}

// Shape returns a copy of the dimension vector.
func (t *Dense) Shape() []int {
	s := make([]int, len(t.shape))
	copy(s, t.shape)

	return s
}

// Data returns the underlying flat row-major buffer without copying.
// Mutations through the returned slice are visible in the tensor; hot
// contraction loops rely on this.
func (t *Dense) Data() []complex128 { return t.data }

// Clone returns a deep copy.
func (t *Dense) Clone() *Dense {
	s := make([]int, len(t.shape))
	copy(s, t.shape)
	d := make([]complex128, len(t.data))
	copy(d, t.data)

	return &Dense{shape: s, data: d}
}

// offset maps a multi-index to the flat buffer position, validating arity
// and bounds. method is the caller's context tag for error wrapping.
func (t *Dense) offset(method string, idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("Dense.%s%v: want %d indices: %w",
			method, idx, len(t.shape), ErrOutOfRange)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			return 0, fmt.Errorf("Dense.%s%v: leg %d: %w", method, idx, k, ErrOutOfRange)
		}
		off = off*t.shape[k] + i
	}

	return off, nil
}

// At returns the element at the given multi-index.
func (t *Dense) At(idx ...int) (complex128, error) {
	off, err := t.offset(ctxAt, idx)
	if err != nil {
		return 0, err
	}

	return t.data[off], nil
}

// Set stores v at the given multi-index.
func (t *Dense) Set(v complex128, idx ...int) error {
	off, err := t.offset(ctxSet, idx)
	if err != nil {
		return err
	}
	t.data[off] = v

	return nil
}

// ScalarValue extracts the single element of a rank-0 (or single-element)
// tensor. Returns ErrNotScalar otherwise.
func (t *Dense) ScalarValue() (complex128, error) {
	if len(t.data) != 1 {
		return 0, fmt.Errorf("Dense.ScalarValue: size=%d: %w", len(t.data), ErrNotScalar)
	}

	return t.data[0], nil
}
