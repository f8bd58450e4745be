package contraction_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/lightcone/treeqaoa/contraction"
	"github.com/lightcone/treeqaoa/prefixtree"
	"github.com/lightcone/treeqaoa/qaoa"
	"github.com/stretchr/testify/require"
)

// edgeScalar runs the full tree pipeline and returns the raw inserted-
// operator expectation value ⟨ψ|O|ψ⟩.
func edgeScalar(
	t *testing.T,
	tr *prefixtree.Tree,
	root prefixtree.Path,
	betas, gammas []float64,
	ops qaoa.ExtraOperators,
) complex128 {
	t.Helper()

	tm, err := qaoa.Assign(betas, gammas, tr, root, ops)
	require.NoError(t, err)

	res, err := contraction.Contract(tr, root, tm, nil)
	require.NoError(t, err)

	v, err := res.ScalarValue()
	require.NoError(t, err)

	return v
}

// edgeValue computes the measured-edge cut expectation 0.5·(1 − Re⟨ZZ⟩) on
// a degree-regular tree of the given depth.
func edgeValue(t *testing.T, degree, depth int, betas, gammas []float64) float64 {
	t.Helper()

	tr, root, err := prefixtree.New(degree, depth)
	require.NoError(t, err)
	zz := edgeScalar(t, tr, root, betas, gammas, qaoa.EdgeCorrelator(root))

	return 0.5 * (1 - real(zz))
}

// bruteGraph is the explicit form of a prefix tree for the reference
// statevector simulator: one qubit per node, one edge per parent link.
type bruteGraph struct {
	n     int
	index map[string]int
	edges [][2]int
}

// buildBruteGraph enumerates the tree in the same pre-order the assigner
// uses, so node keys resolve to stable qubit indices.
func buildBruteGraph(tr *prefixtree.Tree, root prefixtree.Path) *bruteGraph {
	g := &bruteGraph{index: make(map[string]int)}
	var walk func(p prefixtree.Path)
	walk = func(p prefixtree.Path) {
		g.index[p.Key()] = g.n
		g.n++
		for c := 0; c < tr.BranchingFactor(p); c++ {
			child := p.Child(c)
			g.edges = append(g.edges, [2]int{g.index[p.Key()], g.n})
			walk(child)
		}
	}
	walk(root)

	return g
}

// bruteState prepares |+⟩^n and applies p full cost+mixer layers with the
// dense 2^n statevector. No light-cone truncation: every layer acts on
// every node, which is what the tree engine must reproduce.
func bruteState(g *bruteGraph, betas, gammas []float64) []complex128 {
	dim := 1 << g.n
	state := make([]complex128, dim)
	amp := complex(1/math.Sqrt(float64(dim)), 0)
	for s := range state {
		state[s] = amp
	}

	for l := range betas {
		// Cost layer: diagonal phase per edge.
		for s := 0; s < dim; s++ {
			for _, e := range g.edges {
				su := 1 - 2*((s>>e[0])&1)
				sv := 1 - 2*((s>>e[1])&1)
				state[s] *= cmplx.Exp(complex(0, -gammas[l]/2*float64(su*sv)))
			}
		}
		// Mixer layer: the same single-qubit rotation on every node.
		mc := complex(math.Cos(betas[l]/2), 0)
		ms := complex(0, -math.Sin(betas[l]/2))
		for q := 0; q < g.n; q++ {
			mask := 1 << q
			for s := 0; s < dim; s++ {
				if s&mask != 0 {
					continue
				}
				a0, a1 := state[s], state[s|mask]
				state[s] = mc*a0 + ms*a1
				state[s|mask] = ms*a0 + mc*a1
			}
		}
	}

	return state
}

// applySingle maps φ ← O·φ for a 2×2 operator on qubit q.
func applySingle(state []complex128, q int, op []complex128) {
	mask := 1 << q
	for s := range state {
		if s&mask != 0 {
			continue
		}
		a0, a1 := state[s], state[s|mask]
		state[s] = op[0]*a0 + op[1]*a1
		state[s|mask] = op[2]*a0 + op[3]*a1
	}
}

// applyJoint maps φ ← O·φ for a 4×4 operator on the qubit pair (qa, qb),
// with qa the high bit of the row index.
func applyJoint(state []complex128, qa, qb int, op []complex128) {
	ma, mb := 1<<qa, 1<<qb
	for s := range state {
		if s&ma != 0 || s&mb != 0 {
			continue
		}
		idx := [4]int{s, s | mb, s | ma, s | ma | mb}
		var old [4]complex128
		for c := 0; c < 4; c++ {
			old[c] = state[idx[c]]
		}
		for r := 0; r < 4; r++ {
			var acc complex128
			for c := 0; c < 4; c++ {
				acc += op[r*4+c] * old[c]
			}
			state[idx[r]] = acc
		}
	}
}

// bruteExpect returns ⟨ψ|O|ψ⟩ for an already-applied operator image φ=O·ψ.
func bruteExpect(psi, phi []complex128) complex128 {
	var v complex128
	for s := range psi {
		v += cmplx.Conj(psi[s]) * phi[s]
	}

	return v
}

// bruteScalar is the reference value of the inserted-operator expectation:
// a dense simulation of the identical circuit on the identical tree graph.
func bruteScalar(
	t *testing.T,
	tr *prefixtree.Tree,
	root prefixtree.Path,
	betas, gammas []float64,
	ops qaoa.ExtraOperators,
) complex128 {
	t.Helper()

	g := buildBruteGraph(tr, root)
	psi := bruteState(g, betas, gammas)

	// Single-site insertions act first; a joint operator multiplies from the
	// left, matching the assigner's joint·(I⊗op) composition.
	phi := make([]complex128, len(psi))
	copy(phi, psi)
	for key, op := range ops {
		require.Contains(t, g.index, key)
		if op.Dim(0) == 2 {
			applySingle(phi, g.index[key], op.Data())
		}
	}
	for key, op := range ops {
		if op.Dim(0) == 4 {
			partner := root.Child(prefixtree.EdgePartnerChild)
			applyJoint(phi, g.index[key], g.index[partner.Key()], op.Data())
		}
	}

	return bruteExpect(psi, phi)
}
