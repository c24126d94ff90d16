package lgraph

import "errors"

// Sentinel errors for lgraph operations.
var (
	// ErrEmptyLabel indicates AddVertex was called with an empty label.
	ErrEmptyLabel = errors.New("lgraph: vertex label is empty")

	// ErrVertexNotFound indicates a lookup referenced a label or index that does not exist.
	ErrVertexNotFound = errors.New("lgraph: vertex not found")

	// ErrSelfLoop indicates an edge was asserted between a vertex and itself.
	ErrSelfLoop = errors.New("lgraph: self-loop edges are rejected")
)

// Vertex is a tuple (index, label, attributes, weight). Index is the dense
// zero-based position assigned at insertion; Attrs is an ordered multiset of
// tag strings; Weight is meaningful only for association graphs (§3) and is
// left at its zero value on base graphs.
type Vertex struct {
	Index  int
	Label  string
	Attrs  []string
	Weight float64
}

// Edge is an unordered pair of labels. Self-loops are rejected by AddEdge;
// duplicate edges collapse (asserting the same pair twice is a no-op).
type Edge struct {
	U, V string
}
