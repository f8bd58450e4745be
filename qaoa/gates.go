// Package qaoa - gate constructors.
//
// All generators used by QAOA square to the identity, so every rotation has
// the closed form exp(−i·θ/2·G) = cos(θ/2)·I − i·sin(θ/2)·G. Expm provides
// the general dense exponential for cross-checking the closed forms.

package qaoa

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/lightcone/treeqaoa/tensor"
)

// qubitDim is the physical leg dimension.
const qubitDim = 2

// mustMatrix builds a d×d tensor from literal entries. Only called with
// matching lengths, so the constructor error is unreachable.
func mustMatrix(d int, entries []complex128) *tensor.Dense {
	m, err := tensor.FromValues([]int{d, d}, entries)
	if err != nil {
		panic(err) // unreachable: shapes are compile-time literals
	}

	return m
}

// Identity2 returns the 2×2 identity.
func Identity2() *tensor.Dense {
	return mustMatrix(qubitDim, []complex128{1, 0, 0, 1})
}

// PauliX returns the Pauli X matrix.
func PauliX() *tensor.Dense {
	return mustMatrix(qubitDim, []complex128{0, 1, 1, 0})
}

// PauliZ returns the Pauli Z matrix, the insertion used for edge
// correlators.
func PauliZ() *tensor.Dense {
	return mustMatrix(qubitDim, []complex128{1, 0, 0, -1})
}

// PauliZZ returns the 4×4 Z⊗Z matrix, the joint form of the edge
// correlator insertion.
func PauliZZ() *tensor.Dense {
	return mustMatrix(2*qubitDim, []complex128{
		1, 0, 0, 0,
		0, -1, 0, 0,
		0, 0, -1, 0,
		0, 0, 0, 1,
	})
}

// MixerGate returns exp(−i·β/2·X) in closed trigonometric form.
func MixerGate(beta float64) *tensor.Dense {
	c := complex(math.Cos(beta/2), 0)
	s := complex(0, -math.Sin(beta/2))

	return mustMatrix(qubitDim, []complex128{c, s, s, c})
}

// IsingGate returns exp(−i·γ/2·Z⊗Z) in closed trigonometric form; the
// matrix is diagonal with entries exp(−i·γ/2·s_u·s_v), s ∈ {+1, −1}.
func IsingGate(gamma float64) *tensor.Dense {
	agree := cmplx.Exp(complex(0, -gamma/2))
	differ := cmplx.Exp(complex(0, gamma/2))

	return mustMatrix(2*qubitDim, []complex128{
		agree, 0, 0, 0,
		0, differ, 0, 0,
		0, 0, differ, 0,
		0, 0, 0, agree,
	})
}

// expmTaylorTerms bounds the Taylor series; with the argument scaled below
// norm 1/2 the tail after 16 terms is far below double precision.
const expmTaylorTerms = 16

// Expm computes the matrix exponential of a small square tensor by scaling
// and squaring with a truncated Taylor series. It exists to validate the
// closed-form gate constructors and to exponentiate caller-provided
// generators; it is not tuned for large matrices.
// Fails with tensor.ErrInvalidShape when m is not square of rank 2.
func Expm(m *tensor.Dense) (*tensor.Dense, error) {
	// 1. Shape gate: rank-2 square only.
	if m.Rank() != 2 || m.Dim(0) != m.Dim(1) {
		return nil, fmt.Errorf("qaoa.Expm: shape %v: %w", m.Shape(), tensor.ErrInvalidShape)
	}
	n := m.Dim(0)

	// 2. Scale the argument down until its max-abs entry is below 1/2.
	scale := 0
	norm := maxAbs(m.Data())
	for norm > 0.5 && scale < 64 {
		norm /= 2
		scale++
	}
	factor := complex(1/math.Pow(2, float64(scale)), 0)
	scaled := m.Clone()
	for i := range scaled.Data() {
		scaled.Data()[i] *= factor
	}

	// 3. Taylor series: sum_{k} scaled^k / k!.
	sum := identityMatrix(n)
	term := identityMatrix(n)
	for k := 1; k <= expmTaylorTerms; k++ {
		term = matMul(n, term, scaled)
		inv := complex(1/float64(k), 0)
		for i := range term.Data() {
			term.Data()[i] *= inv
		}
		for i := range sum.Data() {
			sum.Data()[i] += term.Data()[i]
		}
	}

	// 4. Square back up.
	for s := 0; s < scale; s++ {
		sum = matMul(n, sum, sum)
	}

	return sum, nil
}

// identityMatrix returns the n×n identity.
func identityMatrix(n int) *tensor.Dense {
	id, err := tensor.New(n, n)
	if err != nil {
		panic(err) // unreachable: n >= 0 by construction
	}
	for i := 0; i < n; i++ {
		id.Data()[i*n+i] = 1
	}

	return id
}

// matMul multiplies two n×n tensors with the fixed i-k-j loop order.
func matMul(n int, a, b *tensor.Dense) *tensor.Dense {
	out, err := tensor.New(n, n)
	if err != nil {
		panic(err) // unreachable
	}
	ad, bd, od := a.Data(), b.Data(), out.Data()
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			aik := ad[i*n+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				od[i*n+j] += aik * bd[k*n+j]
			}
		}
	}

	return out
}

// maxAbs returns the largest entry magnitude.
func maxAbs(data []complex128) float64 {
	m := 0.0
	var a float64
	for _, v := range data {
		if a = cmplx.Abs(v); a > m {
			m = a
		}
	}

	return m
}
