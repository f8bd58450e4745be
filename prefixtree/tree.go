package prefixtree

import "fmt"

// minDegree is the smallest degree with a well-defined branching structure.
const minDegree = 2

// EdgePartnerChild is the reserved child index of the root that identifies
// the measured edge's partner vertex under the measured-edge convention.
const EdgePartnerChild = 0

// Tree is an implicit prefix tree describing the depth-bounded
// neighbourhood of an edge (or vertex) of a degree-regular graph.
// It is immutable once built; all structural queries are closed-form.
type Tree struct {
	degree     int  // graph degree d (>= 2)
	maxDepth   int  // truncation depth p' (>= 0)
	vertexRoot bool // root convention; see package doc
}

// New validates (degree, depth) and returns the tree together with its root
// path. The default (measured-edge) convention designates the root as one
// endpoint of the measured edge, with child 0 reserved for the partner
// endpoint.
//
// Fails with ErrInvalidParameter when degree < 2 or depth < 0. Pure: no
// side effects, no allocation proportional to the node count.
func New(degree, depth int, opts ...Option) (*Tree, Path, error) {
	// 1. Validate parameters (fail fast, zero side effects).
	if degree < minDegree {
		return nil, nil, fmt.Errorf("prefixtree.New: degree=%d < min=%d: %w",
			degree, minDegree, ErrInvalidParameter)
	}
	if depth < 0 {
		return nil, nil, fmt.Errorf("prefixtree.New: depth=%d: %w", depth, ErrInvalidParameter)
	}

	// 2. Resolve options.
	cfg := defaultBuildOptions()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}

	// 3. Construct the implicit tree; the root is the empty path.
	t := &Tree{degree: degree, maxDepth: depth, vertexRoot: cfg.vertexRoot}

	return t, Path{}, nil
}

// Degree returns the underlying graph degree d.
func (t *Tree) Degree() int { return t.degree }

// MaxDepth returns the truncation depth.
func (t *Tree) MaxDepth() int { return t.maxDepth }

// VertexRooted reports whether the tree uses the single-vertex root
// convention.
func (t *Tree) VertexRooted() bool { return t.vertexRoot }

// Contains reports whether path identifies a node of the tree: depth within
// bounds and every choice index below the local branching factor.
func (t *Tree) Contains(path Path) bool {
	if t == nil || len(path) > t.maxDepth {
		return false
	}
	var d, c int
	for d, c = range path {
		if c < 0 || c >= t.branchingAtDepth(d) {
			return false
		}
	}

	return true
}

// BranchingFactor returns the number of children of the node at path:
// degree at the root, degree−1 deeper (self-avoiding walk), 0 at maxDepth.
// An out-of-tree path yields 0.
func (t *Tree) BranchingFactor(path Path) int {
	if !t.Contains(path) || len(path) == t.maxDepth {
		return 0
	}

	return t.branchingAtDepth(len(path))
}

// branchingAtDepth is BranchingFactor without the leaf/containment guard.
func (t *Tree) branchingAtDepth(depth int) int {
	if depth == 0 {
		return t.degree
	}

	return t.degree - 1
}

// Distance returns the graph distance between the node at path and the
// measured root object. Under the measured-edge convention the partner
// branch (child 0 of the root) sits one hop closer than its tree depth;
// under the vertex convention distance equals tree depth. Returns -1 for
// paths outside the tree.
func (t *Tree) Distance(path Path) int {
	if !t.Contains(path) {
		return -1
	}
	if len(path) == 0 {
		return 0
	}
	if !t.vertexRoot && path[0] == EdgePartnerChild {
		return len(path) - 1
	}

	return len(path)
}

// NodeAt resolves a sequence of child-choice indices starting at base into
// the corresponding node path. Fails with ErrPathOutOfRange if any choice
// index exceeds the branching factor at that depth or the resulting depth
// exceeds MaxDepth, and with ErrTreeNil on a nil receiver.
func (t *Tree) NodeAt(base Path, choices []int) (Path, error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	if !t.Contains(base) {
		return nil, fmt.Errorf("prefixtree.NodeAt: base %v: %w", base, ErrPathOutOfRange)
	}

	// Walk choice by choice so the error names the offending step.
	node := base.Clone()
	var step, c int
	for step, c = range choices {
		if len(node) == t.maxDepth {
			return nil, fmt.Errorf("prefixtree.NodeAt: step %d: depth exceeds %d: %w",
				step, t.maxDepth, ErrPathOutOfRange)
		}
		if c < 0 || c >= t.branchingAtDepth(len(node)) {
			return nil, fmt.Errorf("prefixtree.NodeAt: step %d: choice %d of %d: %w",
				step, c, t.branchingAtDepth(len(node)), ErrPathOutOfRange)
		}
		node = append(node, c)
	}

	return node, nil
}

// NodesAtDepth returns the number of nodes at tree depth k in closed form:
// 1 at the root, d·(d−1)^(k−1) deeper (0 beyond MaxDepth).
func (t *Tree) NodesAtDepth(k int) int {
	if k < 0 || k > t.maxDepth {
		return 0
	}
	if k == 0 {
		return 1
	}
	n := t.degree
	for i := 1; i < k; i++ {
		n *= t.degree - 1
	}

	return n
}

// NodeCount returns the total number of nodes, summing NodesAtDepth over
// all levels. O(depth) time.
func (t *Tree) NodeCount() int {
	total := 0
	for k := 0; k <= t.maxDepth; k++ {
		total += t.NodesAtDepth(k)
	}

	return total
}
