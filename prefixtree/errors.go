// Package prefixtree - sentinel errors.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w; sentinels stay unformatted.
//   - No runtime panics.

package prefixtree

import "errors"

// ErrInvalidParameter indicates malformed build parameters: degree < 2
// (a 1-regular graph has no meaningful neighbourhood tree) or depth < 0.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* reject inputs */ }.
var ErrInvalidParameter = errors.New("prefixtree: invalid degree or depth")

// ErrPathOutOfRange indicates a child-choice sequence that leaves the tree:
// a choice index at or beyond the local branching factor, a negative index,
// or a resolved depth beyond the tree's maximum depth.
var ErrPathOutOfRange = errors.New("prefixtree: path out of range")

// ErrTreeNil is returned when a nil *Tree is passed where a built tree is
// required.
var ErrTreeNil = errors.New("prefixtree: tree is nil")
