package qaoa

import (
	"fmt"
	"math/cmplx"
	"sort"

	"github.com/lightcone/treeqaoa/prefixtree"
	"github.com/lightcone/treeqaoa/tensor"
)

// TensorMap maps a node path key (Path.Key) to that node's assigned
// tensor. A TensorMap is built fresh per evaluation and never shared
// across calls.
type TensorMap map[string]*tensor.Dense

// ExtraOperators maps a node path key to a 2×2 operator matrix inserted
// between U and U† at that node. A 4×4 matrix registered at the root of a
// measured-edge tree acts jointly on (root, edge partner).
type ExtraOperators map[string]*tensor.Dense

// Set registers op at the given node path and returns the map for
// chaining.
func (ops ExtraOperators) Set(path prefixtree.Path, op *tensor.Dense) ExtraOperators {
	ops[path.Key()] = op

	return ops
}

// EdgeCorrelator returns the insertion map of the ZZ edge correlator:
// Pauli-Z at the root and at its edge-partner child.
func EdgeCorrelator(root prefixtree.Path) ExtraOperators {
	return ExtraOperators{}.
		Set(root, PauliZ()).
		Set(root.Child(prefixtree.EdgePartnerChild), PauliZ())
}

// jointDim is the leg size of a two-site operator.
const jointDim = 4

// assignment carries the per-evaluation precomputed state shared by every
// node tensor: layer tables, the validated operator map, and the resolved
// joint two-site operator (nil when absent).
type assignment struct {
	tree   *prefixtree.Tree
	layers int               // p
	mixKet [][2][2]complex128 // ket-side mixer amplitudes per layer
	mixBra [][2][2]complex128 // bra side (complex conjugate)
	phase  [][4][4]complex128 // per-layer cost phases over digit pairs
	extra  ExtraOperators
	joint  []complex128 // 16 row-major entries, or nil
}

// Assign walks the tree and produces the tensor of every node under the
// canonical angle convention (see the package comment). betas and gammas
// must have equal positive length p; extra may be nil.
//
// The per-node tensor covers, for q = max(p − distance, 0) acting layers,
// the product cost-then-mixer repeated innermost-first, closed by the
// node's extra operator (identity when none is registered).
//
// Fails with ErrTreeNil on a nil tree and ErrDimensionMismatch on length
// mismatch, p = 0, a non-root base path, an operator path outside the
// tree, or an ill-shaped operator. NaN/Inf angles are NOT rejected: they
// propagate through the trigonometric tables into NaN tensors, so an
// optimizer probing invalid regions sees a well-defined value.
func Assign(
	betas, gammas []float64,
	t *prefixtree.Tree,
	root prefixtree.Path,
	extra ExtraOperators,
) (TensorMap, error) {
	// 1. Validate structural inputs.
	if t == nil {
		return nil, ErrTreeNil
	}
	if len(betas) != len(gammas) {
		return nil, fmt.Errorf("qaoa.Assign: len(betas)=%d len(gammas)=%d: %w",
			len(betas), len(gammas), ErrDimensionMismatch)
	}
	if len(betas) == 0 {
		return nil, fmt.Errorf("qaoa.Assign: need at least one layer: %w", ErrDimensionMismatch)
	}
	if !root.IsRoot() || !t.Contains(root) {
		return nil, fmt.Errorf("qaoa.Assign: base path %v is not the tree root: %w",
			root, ErrDimensionMismatch)
	}

	// 2. Validate the operator map and resolve the optional joint operator.
	a := &assignment{tree: t, layers: len(betas), extra: extra}
	if err := a.resolveOperators(root); err != nil {
		return nil, err
	}

	// 3. Precompute per-layer amplitude and phase tables from the gate
	//    constructors (digit = ketBit + 2·braBit, least significant first).
	a.buildTables(betas, gammas)

	// 4. Assign every node in deterministic pre-order, children ascending.
	tm := make(TensorMap, t.NodeCount())
	a.walk(root, tm)

	return tm, nil
}

// resolveOperators checks every registered operator path and shape, and
// folds a root 4×4 together with any partner-site 2×2 into a.joint.
func (a *assignment) resolveOperators(root prefixtree.Path) error {
	if a.extra == nil {
		return nil
	}

	// Sorted keys keep validation error reporting deterministic.
	keys := make([]string, 0, len(a.extra))
	for k := range a.extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rootKey := root.Key()
	var partner prefixtree.Path
	if !a.tree.VertexRooted() {
		partner = root.Child(prefixtree.EdgePartnerChild)
	}

	for _, key := range keys {
		op := a.extra[key]
		path, err := prefixtree.ParseKey(key)
		if err != nil {
			return fmt.Errorf("qaoa.Assign: operator path %q: %w", key, ErrDimensionMismatch)
		}
		if !a.tree.Contains(path) {
			return fmt.Errorf("qaoa.Assign: operator path %q outside tree: %w",
				key, ErrDimensionMismatch)
		}
		if op == nil || op.Rank() != 2 || op.Dim(0) != op.Dim(1) {
			return fmt.Errorf("qaoa.Assign: operator at %q must be square: %w",
				key, ErrDimensionMismatch)
		}
		switch {
		case op.Dim(0) == qubitDim:
			// single-site insertion, always legal
		case op.Dim(0) == jointDim && key == rootKey && partner != nil:
			if !a.tree.Contains(partner) {
				return fmt.Errorf("qaoa.Assign: joint operator needs the partner node: %w",
					ErrDimensionMismatch)
			}
			a.joint = append([]complex128(nil), op.Data()...)
		default:
			return fmt.Errorf("qaoa.Assign: operator at %q has shape %v: %w",
				key, op.Shape(), ErrDimensionMismatch)
		}
	}

	// Fold a partner-site single operator into the joint one: the combined
	// middle factor is joint·(I⊗op).
	if a.joint != nil {
		if op := a.extra[partner.Key()]; op != nil {
			a.joint = mulJoint(a.joint, kronLeftIdentity(op.Data()))
		}
	}

	return nil
}

// buildTables fills the per-layer mixer amplitude and cost phase tables.
func (a *assignment) buildTables(betas, gammas []float64) {
	p := a.layers
	a.mixKet = make([][2][2]complex128, p)
	a.mixBra = make([][2][2]complex128, p)
	a.phase = make([][4][4]complex128, p)

	var i, j, du, dv int
	for l := 0; l < p; l++ {
		mg := MixerGate(betas[l]).Data()
		for i = 0; i < qubitDim; i++ {
			for j = 0; j < qubitDim; j++ {
				a.mixKet[l][i][j] = mg[i*qubitDim+j]
				a.mixBra[l][i][j] = cmplx.Conj(mg[i*qubitDim+j])
			}
		}

		// The cost phase over a (parent digit, child digit) pair is the ket
		// Ising diagonal times the conjugated bra diagonal.
		ig := IsingGate(gammas[l]).Data()
		for du = 0; du < jointDim; du++ {
			for dv = 0; dv < jointDim; dv++ {
				ket := (du&1)*2 + (dv & 1)       // row of the z_u z_v basis state
				bra := (du>>1)*2 + (dv >> 1)     // row of the w_u w_v basis state
				a.phase[l][du][dv] = ig[ket*jointDim+ket] * cmplx.Conj(ig[bra*jointDim+bra])
			}
		}
	}
}

// walk assigns node tensors in pre-order with ascending child indices.
func (a *assignment) walk(path prefixtree.Path, tm TensorMap) {
	tm[path.Key()] = a.nodeTensor(path)
	bf := a.tree.BranchingFactor(path)
	for i := 0; i < bf; i++ {
		a.walk(path.Child(i), tm)
	}
}

// coneLayers is the light-cone truncation: layers left at graph distance d.
func (a *assignment) coneLayers(dist int) int {
	if q := a.layers - dist; q > 0 {
		return q
	}

	return 0
}

// nodeTensor builds one node's tensor; see the package comment for the leg
// and digit conventions.
func (a *assignment) nodeTensor(path prefixtree.Path) *tensor.Dense {
	q := a.coneLayers(a.tree.Distance(path))
	confDim := 1 << (2 * (q + 1)) // 4^(q+1) local bra/ket trajectories

	isRoot := path.IsRoot()
	isPartner := !a.tree.VertexRooted() &&
		len(path) == 1 && path[0] == prefixtree.EdgePartnerChild

	w := a.localWeights(path, q, confDim, isRoot, isPartner)

	// The root carries no parent leg: its tensor is the weight vector.
	if isRoot {
		rt, err := tensor.FromValues([]int{confDim}, w)
		if err != nil {
			panic(err) // unreachable: shape matches by construction
		}

		return rt
	}

	// 1. Parent leg size: 4^c for c cost layers on the parent edge; the
	//    partner leg is widened to the parent's full configuration when a
	//    joint operator must see the parent's middle time point.
	parent, _ := path.Parent()
	c := a.coneLayers(a.tree.Distance(parent))
	legDim := 1 << (2 * c)
	withJoint := a.joint != nil && isPartner
	if withJoint {
		legDim <<= 2
	}

	// 2. Fill T[leg, conf] = weight(conf) × edge phases × joint factor.
	nt, err := tensor.New(legDim, confDim)
	if err != nil {
		panic(err) // unreachable
	}
	data := nt.Data()
	var (
		alpha, tt int
		f         complex128
	)
	for b := 0; b < confDim; b++ {
		for alpha = 0; alpha < legDim; alpha++ {
			f = w[b]
			for tt = 0; tt < c; tt++ {
				f *= a.phase[tt][(alpha>>(2*tt))&3][(b>>(2*tt))&3]
			}
			if withJoint {
				da := (alpha >> (2 * c)) & 3 // parent middle digit
				db := (b >> (2 * q)) & 3     // own middle digit
				row := (da>>1)*2 + (db >> 1)
				col := (da&1)*2 + (db & 1)
				f *= a.joint[row*jointDim+col]
			}
			data[alpha*confDim+b] = f
		}
	}

	return nt
}

// localWeights computes the single-site factor of every local
// configuration: the |+⟩ overlaps, the in-cone mixer amplitudes on ket and
// bra sides, and the middle closure (extra operator, identity, or — under a
// joint operator — no closure at all on the two measured sites).
func (a *assignment) localWeights(
	path prefixtree.Path,
	q, confDim int,
	isRoot, isPartner bool,
) []complex128 {
	// Middle closure selection.
	var closure [2][2]complex128
	switch {
	case a.joint != nil && (isRoot || isPartner):
		// The joint factor carries the whole pair closure.
		closure = [2][2]complex128{{1, 1}, {1, 1}}
	default:
		closure = [2][2]complex128{{1, 0}, {0, 1}}
		if op := a.extra[path.Key()]; op != nil && op.Dim(0) == qubitDim {
			od := op.Data()
			closure = [2][2]complex128{{od[0], od[1]}, {od[2], od[3]}}
		}
	}

	const plusOverlap = 0.5 // ⟨z|+⟩·conj(⟨w|+⟩) = (1/√2)²

	w := make([]complex128, confDim)
	var (
		tt, prev, cur, mid int
		v                  complex128
	)
	for b := 0; b < confDim; b++ {
		v = complex(plusOverlap, 0)
		for tt = 1; tt <= q; tt++ {
			prev = (b >> (2 * (tt - 1))) & 3
			cur = (b >> (2 * tt)) & 3
			v *= a.mixKet[tt-1][cur&1][prev&1]
			v *= a.mixBra[tt-1][cur>>1][prev>>1]
		}
		mid = (b >> (2 * q)) & 3
		v *= closure[mid>>1][mid&1]
		w[b] = v
	}

	return w
}

// mulJoint multiplies two 4×4 row-major matrices.
func mulJoint(a, b []complex128) []complex128 {
	out := make([]complex128, jointDim*jointDim)
	for i := 0; i < jointDim; i++ {
		for k := 0; k < jointDim; k++ {
			aik := a[i*jointDim+k]
			for j := 0; j < jointDim; j++ {
				out[i*jointDim+j] += aik * b[k*jointDim+j]
			}
		}
	}

	return out
}

// kronLeftIdentity lifts a 2×2 operator on the partner site to I⊗op.
func kronLeftIdentity(op []complex128) []complex128 {
	out := make([]complex128, jointDim*jointDim)
	for i := 0; i < qubitDim; i++ {
		for r := 0; r < qubitDim; r++ {
			for c := 0; c < qubitDim; c++ {
				out[(i*qubitDim+r)*jointDim+(i*qubitDim+c)] = op[r*qubitDim+c]
			}
		}
	}

	return out
}
