// Package qaoa assigns, to every node of a prefix tree, the dense complex
// tensor encoding that node's contribution to the sandwich
// ⟨+…+| U† · O · U |+…+⟩, where U is the depth-p QAOA circuit restricted
// to the tree and O is a product of caller-supplied extra operators
// (Pauli-Z insertions for the edge correlator).
//
// Canonical angle convention (all doubling and sign flips belong to the
// caller boundary, never to this package):
//
//	layer t (innermost first) applies, on every in-cone tree edge,
//	    exp(−i·γ_t/2·Z⊗Z)
//	and then, on every in-cone vertex,
//	    exp(−i·β_t/2·X).
//
// Light cone: a node at graph distance k from the measured edge (or
// vertex) feels max(p−k, 0) mixer layers, and the tree edge into a
// distance-k node carries max(p−k+1, 0) cost layers (all p on the root
// edge). Layers beyond the cone cancel between U and U†, which is what
// makes the truncated tree computation exact on high-girth graphs.
//
// Tensor and leg convention (consumed by package contraction):
//
//	Each node tensor is rank 2: leg 0 faces the parent and enumerates the
//	parent's bra/ket trajectory prefix (dimension 4^c for c cost layers on
//	the parent edge); leg 1 is the node's local configuration leg
//	(dimension 4^(q+1) for q mixer layers) into which every child message
//	contracts. The root tensor is rank 1 (local leg only). Configuration
//	indices use base-4 digits, least significant first; digit t encodes
//	(ket bit, bra bit) at time point t as z + 2·w.
//
// Extra operators are 2×2 matrices registered per node path and
// left-multiplied into the node's middle closure. A 4×4 matrix registered
// at the root path (measured-edge trees only) acts jointly on the pair
// (root, edge partner).
//
// Numerical semantics: gate entries come from closed-form trigonometric
// formulas (see MixerGate, IsingGate), which the general dense exponential
// Expm reproduces to numerical tolerance. NaN or Inf angles propagate as
// NaN tensors; they never raise an error.
//
// Errors:
//
//   - ErrDimensionMismatch  betas/gammas length mismatch, zero layers,
//     an operator path outside the tree, or an ill-shaped operator matrix.
//   - ErrTreeNil            nil tree.
package qaoa
