package prefixtree

// Option configures optional behavior of New.
type Option func(*buildOptions)

// buildOptions holds resolved construction parameters.
type buildOptions struct {
	// vertexRoot selects the single-vertex root convention: the root stands
	// for a measured vertex rather than one endpoint of a measured edge, and
	// graph distance equals path length. Default is false (measured-edge).
	vertexRoot bool
}

// defaultBuildOptions returns the measured-edge convention, which is the one
// every correlator call site in this module uses.
func defaultBuildOptions() buildOptions {
	return buildOptions{vertexRoot: false}
}

// WithVertexRoot returns an Option selecting the single-vertex root
// convention. Use it when the observable under measurement sits on a single
// vertex instead of an edge.
func WithVertexRoot() Option {
	return func(o *buildOptions) {
		o.vertexRoot = true
	}
}
