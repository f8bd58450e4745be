package contraction

import (
	"fmt"

	"github.com/lightcone/treeqaoa/prefixtree"
	"github.com/lightcone/treeqaoa/qaoa"
	"github.com/lightcone/treeqaoa/tensor"
)

// Contract recursively contracts the subtree of the node reached from root
// via pathToHere and returns the reduced tensor: rank 1 over the
// parent-facing leg for an inner node, rank 0 (a scalar) at the true root.
//
// The recursion is post-order - every child subtree is reduced before its
// message folds into the parent - and children are visited in ascending
// index order for bit-reproducibility.
func Contract(
	t *prefixtree.Tree,
	root prefixtree.Path,
	tm qaoa.TensorMap,
	pathToHere []int,
) (*tensor.Dense, error) {
	// 1. Resolve the current node; NodeAt validates tree and choices.
	node, err := t.NodeAt(root, pathToHere)
	if err != nil {
		return nil, fmt.Errorf("contraction.Contract: %w", err)
	}

	// 2. Fetch this node's tensor.
	nt, ok := tm[node.Key()]
	if !ok {
		return nil, fmt.Errorf("contraction.Contract: node %v: %w", node, ErrMissingTensor)
	}

	// 3. Reduce every child subtree (base case: branching factor 0 at a
	//    leaf or max-depth node, so the loop is empty and the node's own
	//    tensor passes through with only the parent leg open).
	branching := t.BranchingFactor(node)
	messages := make([]*tensor.Dense, branching)
	for i := 0; i < branching; i++ {
		// Fresh backing storage per child: append on a shared slice would
		// alias across recursive calls.
		childPath := make([]int, len(pathToHere)+1)
		copy(childPath, pathToHere)
		childPath[len(pathToHere)] = i
		if messages[i], err = Contract(t, root, tm, childPath); err != nil {
			return nil, err
		}
	}

	return fold(node, nt, messages)
}

// fold contracts the reduced child messages into the node tensor along the
// configuration leg and sums that leg out, leaving the parent leg (or a
// scalar at the root).
func fold(node prefixtree.Path, nt *tensor.Dense, messages []*tensor.Dense) (*tensor.Dense, error) {
	// 1. Identify the configuration leg (the last one) and sanity-check the
	//    node tensor rank against its role.
	atRoot := node.IsRoot()
	wantRank := 2
	if atRoot {
		wantRank = 1
	}
	if nt.Rank() != wantRank {
		return nil, fmt.Errorf("contraction.fold: node %v: rank %d, want %d: %w",
			node, nt.Rank(), wantRank, ErrLegMismatch)
	}
	confDim := nt.Dim(nt.Rank() - 1)

	// 2. Combine child messages into a pointwise product over the
	//    configuration leg. Each message indexes a prefix of the local
	//    trajectory, hence the modulus; its length must divide confDim.
	product := make([]complex128, confDim)
	for i := range product {
		product[i] = 1
	}
	var m *tensor.Dense
	for i := 0; i < len(messages); i++ {
		m = messages[i]
		if m.Rank() != 1 || m.Dim(0) == 0 || confDim%m.Dim(0) != 0 {
			return nil, fmt.Errorf("contraction.fold: node %v child %d: shape %v vs conf %d: %w",
				node, i, m.Shape(), confDim, ErrLegMismatch)
		}
		md, legDim := m.Data(), m.Dim(0)
		for b := 0; b < confDim; b++ {
			product[b] *= md[b%legDim]
		}
	}

	// 3. Sum out the configuration leg.
	data := nt.Data()
	if atRoot {
		var scalar complex128
		for b := 0; b < confDim; b++ {
			scalar += data[b] * product[b]
		}

		return tensor.Scalar(scalar), nil
	}

	legDim := nt.Dim(0)
	out, err := tensor.New(legDim)
	if err != nil {
		panic(err) // unreachable: legDim >= 0 by construction
	}
	od := out.Data()
	var b int
	for alpha := 0; alpha < legDim; alpha++ {
		row := data[alpha*confDim:]
		var acc complex128
		for b = 0; b < confDim; b++ {
			acc += row[b] * product[b]
		}
		od[alpha] = acc
	}

	return out, nil
}
