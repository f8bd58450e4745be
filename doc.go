// Package treeqaoa evaluates two-qubit correlators of depth-p QAOA
// circuits on edges of large d-regular graphs — exactly, and without a
// many-qubit statevector — by contracting a finite tree tensor network
// over the edge's p-hop neighbourhood.
//
// 🚀 What is treeqaoa?
//
//	A small, pure-Go numeric library that brings together:
//		• Prefix trees: implicit, closed-form models of regular-graph neighbourhoods
//		• Dense complex tensors: explicit shape + flat row-major buffer
//		• A QAOA tensor assigner: per-node light-cone evolution operators
//		• A recursive contraction engine: post-order reduction to a scalar
//		• Variational glue: gonum Nelder–Mead over the edge-expectation objective
//
// ✨ Why choose treeqaoa?
//
//   - Exact – when the p-neighbourhood is a tree, the contraction equals the
//     full circuit expectation (no sampling, no truncation error)
//   - Tiny state – tensors scale with the light cone, not the graph
//   - Deterministic – fixed contraction order, bit-reproducible results
//   - Pure Go core – the only runtime deps are gonum (optimizer glue) and
//     x/sync (batch evaluation)
//
// Under the hood, everything is organized under five subpackages:
//
//	tensor/      — dense complex tensors (shape vector + flat buffer)
//	prefixtree/  — tree model & builder for d-regular edge neighbourhoods
//	qaoa/        — gate constructors and the per-node tensor assigner
//	contraction/ — the recursive child-into-parent contraction engine
//	variational/ — objective closures, Nelder–Mead glue, batch evaluation
//
// Quick ASCII example (degree 3, the measured edge a─b):
//
//	  c1   c2        d1   d2
//	    \ /            \ /
//	     a ──────────── b
//
//	the p-hop neighbourhood of a─b branches with factor d−1 away from
//	the edge; treeqaoa contracts it leaves-first into ⟨Z_a·Z_b⟩.
//
// The composed map (β, γ) ↦ 0.5·(1 − Re⟨Z_a·Z_b⟩) is the probability that
// the edge is cut, the quantity a MaxCut parameter search maximizes.
//
//	go get github.com/lightcone/treeqaoa
package treeqaoa
