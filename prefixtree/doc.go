// Package prefixtree models the p-hop neighbourhood of an edge (or a
// vertex) of a d-regular graph as an implicit rooted tree addressed by
// child-choice paths.
//
// A node is identified by the sequence of child indices taken from the
// root; the empty path is the root itself. The tree is never materialized:
// node existence, branching factor, and graph distance are O(depth)
// closed-form queries on (degree, maxDepth, path), which sidesteps any
// owned node graph entirely.
//
// Two root conventions exist:
//
//   - Measured-edge (default): the root stands for one endpoint of the
//     measured edge and its child 0 is reserved for the edge partner.
//     Both endpoints are at graph distance 0 from the edge, so paths that
//     descend through child 0 are one hop closer than their length says.
//   - Vertex (WithVertexRoot): the root is a single measured vertex and
//     graph distance equals path length.
//
// Branching: the root has exactly degree children; every deeper node has
// degree−1 children (a neighbourhood walk never returns through the edge
// it arrived by); nodes at maxDepth are leaves regardless. Depth 0 is the
// degenerate single-node tree: legal under both conventions, but under
// the measured-edge convention the partner child then does not exist, so
// nothing can be inserted on the measured edge.
//
// Key operations:
//
//   - New(degree, depth, opts...): validate parameters and return the
//     (Tree, root Path) pair.
//   - Tree.NodeAt(root, choices): resolve a child-choice sequence.
//   - Tree.BranchingFactor / Distance / Contains / NodeCount / NodesAtDepth.
//
// Errors:
//
//   - ErrInvalidParameter   degree < 2 or depth < 0 at build time.
//   - ErrPathOutOfRange     a choice index exceeds the branching factor,
//     or the resolved depth exceeds maxDepth.
//   - ErrTreeNil            a nil *Tree receiver in a package function.
package prefixtree
