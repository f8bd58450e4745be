package prefixtree

import (
	"fmt"
	"strconv"
	"strings"
)

// keySep separates child indices inside a Path key.
const keySep = "/"

// Path identifies a tree node by the sequence of child-choice indices
// taken from the root. The empty (nil or zero-length) Path is the root.
// Paths are value-like: treat them as immutable and use Clone/Child to
// derive new ones.
type Path []int

// Depth returns the number of edges between the node and the root.
func (p Path) Depth() int { return len(p) }

// IsRoot reports whether p identifies the root node.
func (p Path) IsRoot() bool { return len(p) == 0 }

// Parent returns the parent path and true, or (nil, false) for the root.
func (p Path) Parent() (Path, bool) {
	if len(p) == 0 {
		return nil, false
	}
	parent := make(Path, len(p)-1)
	copy(parent, p[:len(p)-1])

	return parent, true
}

// Child returns a fresh path extended by one child index. The receiver is
// not modified and no backing storage is shared.
func (p Path) Child(i int) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = i

	return child
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	c := make(Path, len(p))
	copy(c, p)

	return c
}

// Key renders p as a stable string ("" for the root, "0/2/1" otherwise),
// suitable as a map key for tensor and operator maps.
func (p Path) Key() string {
	if len(p) == 0 {
		return ""
	}
	parts := make([]string, len(p))
	var i int
	for i = range p {
		parts[i] = strconv.Itoa(p[i])
	}

	return strings.Join(parts, keySep)
}

// ParseKey is the inverse of Key: "" yields the root path, "0/2/1" yields
// Path{0, 2, 1}. Fails with ErrPathOutOfRange on malformed input.
func ParseKey(key string) (Path, error) {
	if key == "" {
		return Path{}, nil
	}
	parts := strings.Split(key, keySep)
	p := make(Path, len(parts))
	var (
		i   int
		s   string
		err error
	)
	for i, s = range parts {
		if p[i], err = strconv.Atoi(s); err != nil || p[i] < 0 {
			return nil, fmt.Errorf("prefixtree.ParseKey(%q): segment %d: %w",
				key, i, ErrPathOutOfRange)
		}
	}

	return p, nil
}

// String implements fmt.Stringer; the root renders as "·".
func (p Path) String() string {
	if len(p) == 0 {
		return "·"
	}

	return p.Key()
}
