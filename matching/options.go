package matching

// VertexPredicate reports whether a vertex may participate in the
// matching. A nil predicate admits every vertex.
type VertexPredicate func(v int) bool

// EdgePredicate reports whether an edge may participate in the matching.
// A nil predicate admits every edge.
type EdgePredicate func(e Edge) bool

// Option configures a Matching at construction time, mirroring the
// functional-options style used throughout this module's teacher package
// (bfs.Option/dfs.Option in github.com/katalvlaran/lvlath).
type Option func(*Matching)

// WithVertexUsable restricts the matching to vertices accepted by fn. This
// is how the three source-toolkit matcher specializations
// (GraphMatchingFixed, GraphMatchingEdgeFixed, GraphMatchingVerticesFixed)
// are expressed here: a small predicate rather than a subclass.
func WithVertexUsable(fn VertexPredicate) Option {
	return func(m *Matching) { m.vertexUsable = fn }
}

// WithEdgeUsable restricts the matching to edges accepted by fn.
func WithEdgeUsable(fn EdgePredicate) Option {
	return func(m *Matching) { m.edgeUsable = fn }
}
