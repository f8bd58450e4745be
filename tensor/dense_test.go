package tensor_test

import (
	"testing"

	"github.com/lightcone/treeqaoa/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_ShapeAndSize verifies that New allocates a zero buffer of the
// expected size and reports rank and dimensions correctly.
func TestNew_ShapeAndSize(t *testing.T) {
	d, err := tensor.New(4, 16)
	require.NoError(t, err)

	assert.Equal(t, 2, d.Rank(), "two legs expected")
	assert.Equal(t, 64, d.Size(), "4*16 elements expected")
	assert.Equal(t, 4, d.Dim(0))
	assert.Equal(t, 16, d.Dim(1))
	assert.Equal(t, 0, d.Dim(2), "out-of-range leg must report 0")
	assert.Equal(t, []int{4, 16}, d.Shape())

	for _, v := range d.Data() {
		assert.Equal(t, complex128(0), v, "fresh buffer must be zeroed")
	}
}

// TestNew_RankZero verifies that New() with no dimensions yields a scalar.
func TestNew_RankZero(t *testing.T) {
	d, err := tensor.New()
	require.NoError(t, err)

	assert.Equal(t, 0, d.Rank())
	assert.Equal(t, 1, d.Size())

	v, err := d.ScalarValue()
	assert.NoError(t, err)
	assert.Equal(t, complex128(0), v)
}

// TestNew_NegativeDimension verifies that a negative dimension is rejected
// with ErrInvalidShape.
func TestNew_NegativeDimension(t *testing.T) {
	_, err := tensor.New(4, -1)
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}

// TestFromValues_BufferMismatch verifies the length check against prod(shape).
func TestFromValues_BufferMismatch(t *testing.T) {
	_, err := tensor.FromValues([]int{2, 2}, []complex128{1, 2, 3})
	assert.ErrorIs(t, err, tensor.ErrBufferMismatch)
}

// TestFromValues_CopiesBuffer verifies that the tensor owns a copy of the
// caller's slice.
func TestFromValues_CopiesBuffer(t *testing.T) {
	src := []complex128{1, 2, 3, 4}
	d, err := tensor.FromValues([]int{2, 2}, src)
	require.NoError(t, err)

	src[0] = 99
	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), v, "mutating the source slice must not affect the tensor")
}

// TestAtSet_RoundTrip verifies element access in row-major order.
func TestAtSet_RoundTrip(t *testing.T) {
	d, err := tensor.New(2, 3)
	require.NoError(t, err)

	require.NoError(t, d.Set(1+2i, 1, 2))

	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1+2i, v)

	// Row-major: element (1,2) lives at offset 1*3+2 = 5.
	assert.Equal(t, 1+2i, d.Data()[5])
}

// TestAtSet_OutOfRange verifies bounds and arity validation on At/Set.
func TestAtSet_OutOfRange(t *testing.T) {
	d, err := tensor.New(2, 3)
	require.NoError(t, err)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange, "index beyond leg dimension")

	_, err = d.At(0, -1)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange, "negative index")

	_, err = d.At(0)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange, "wrong arity")

	err = d.Set(1, 0, 3)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange)
}

// TestScalar_Value verifies the rank-0 constructor and ScalarValue.
func TestScalar_Value(t *testing.T) {
	s := tensor.Scalar(3 - 1i)

	assert.Equal(t, 0, s.Rank())
	v, err := s.ScalarValue()
	require.NoError(t, err)
	assert.Equal(t, 3-1i, v)
}

// TestScalarValue_NotScalar verifies that multi-element tensors are rejected.
func TestScalarValue_NotScalar(t *testing.T) {
	d, err := tensor.New(2)
	require.NoError(t, err)

	_, err = d.ScalarValue()
	assert.ErrorIs(t, err, tensor.ErrNotScalar)
}

// TestClone_Independence verifies that Clone deep-copies shape and data.
func TestClone_Independence(t *testing.T) {
	d, err := tensor.FromValues([]int{2, 2}, []complex128{1, 2, 3, 4})
	require.NoError(t, err)

	c := d.Clone()
	require.NoError(t, c.Set(42, 0, 0))

	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), v, "clone mutation must not leak into the original")
	assert.Equal(t, d.Shape(), c.Shape())
}

// TestShape_ReturnsCopy verifies that the shape accessor is defensive.
func TestShape_ReturnsCopy(t *testing.T) {
	d, err := tensor.New(2, 3)
	require.NoError(t, err)

	s := d.Shape()
	s[0] = 99
	assert.Equal(t, 2, d.Dim(0), "mutating the returned shape must not affect the tensor")
}
