package lgraph

import (
	"sync"

	"github.com/toejamhoney/nabu-go/matrix"
)

// Graph is a labeled, undirected graph over a dense 0/1 adjacency matrix.
// Vertex labels are unique within a Graph — the second assertion of a label
// with a different attribute set is ignored; the first insertion wins.
type Graph struct {
	mu sync.RWMutex

	vertices   []Vertex
	labelIndex map[string]int
	adj        *matrix.Dense
	order      int
	size       int
	edgeOrder  []Edge // first-asserted (U,V) pairs, in the order AddEdge/AddEdgeIndex first created them
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{labelIndex: make(map[string]int)}
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.order
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.size
}

// Grow enlarges the adjacency matrix by n rows/columns filled with 0,
// preserving existing entries. It is a no-op for n <= 0.
func (g *Graph) Grow(n int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.growLocked(n)
}

func (g *Graph) growLocked(n int) error {
	if n <= 0 {
		return nil
	}
	newOrder := g.order + n
	nm, err := matrix.NewDense(newOrder, newOrder)
	if err != nil {
		return err
	}
	if g.adj != nil {
		for i := 0; i < g.order; i++ {
			for j := 0; j < g.order; j++ {
				v, err := g.adj.At(i, j)
				if err != nil {
					return err
				}
				if v != 0 {
					if err := nm.Set(i, j, v); err != nil {
						return err
					}
				}
			}
		}
	}
	g.adj = nm
	g.order = newOrder
	return nil
}

// Init bulk-loads vertices and edges. Idempotent on repeated identical input,
// since both AddVertex and AddEdge collapse duplicates.
func (g *Graph) Init(vertices []Vertex, edges []Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, v := range vertices {
		if _, err := g.addVertexLocked(v.Label, v.Attrs); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if err := g.addEdgeLocked(e.U, e.V); err != nil {
			return err
		}
	}
	return nil
}

// AddVertex appends a vertex with the given label and attributes, returning
// its index. A repeated label returns the index assigned on first insertion;
// the new attribute set is discarded (first wins, per the uniqueness rule).
func (g *Graph) AddVertex(label string, attrs []string) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addVertexLocked(label, attrs)
}

func (g *Graph) addVertexLocked(label string, attrs []string) (int, error) {
	if label == "" {
		return 0, ErrEmptyLabel
	}
	if idx, ok := g.labelIndex[label]; ok {
		return idx, nil
	}
	idx := len(g.vertices)
	if idx >= g.order {
		if err := g.growLocked(idx - g.order + 1); err != nil {
			return 0, err
		}
	}
	g.vertices = append(g.vertices, Vertex{Index: idx, Label: label, Attrs: attrs})
	g.labelIndex[label] = idx
	return idx, nil
}

// VertexByLabel returns the index assigned to label, or ErrVertexNotFound.
func (g *Graph) VertexByLabel(label string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.labelIndex[label]
	if !ok {
		return 0, ErrVertexNotFound
	}
	return idx, nil
}

// VertexAt returns a copy of the vertex at index.
func (g *Graph) VertexAt(index int) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if index < 0 || index >= len(g.vertices) {
		return Vertex{}, ErrVertexNotFound
	}
	return g.vertices[index], nil
}

// Vertices returns a snapshot of all vertices in index order.
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// SetWeight sets the weight of the vertex at index (used by association
// graphs; base graphs leave weight at its zero value).
func (g *Graph) SetWeight(index int, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if index < 0 || index >= len(g.vertices) {
		return ErrVertexNotFound
	}
	g.vertices[index].Weight = weight
	return nil
}

// Adjacent reports whether uLabel and vLabel are connected: 1 if adjacent,
// 0 otherwise (including u == v). Returns ErrVertexNotFound if either label
// is unknown.
func (g *Graph) Adjacent(uLabel, vLabel string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	u, ok := g.labelIndex[uLabel]
	if !ok {
		return 0, ErrVertexNotFound
	}
	v, ok := g.labelIndex[vLabel]
	if !ok {
		return 0, ErrVertexNotFound
	}
	return g.adjacentIndexLocked(u, v)
}

// AdjacentIndex is Adjacent addressed by vertex index instead of label.
func (g *Graph) AdjacentIndex(u, v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.adjacentIndexLocked(u, v)
}

func (g *Graph) adjacentIndexLocked(u, v int) (int, error) {
	if u < 0 || u >= g.order || v < 0 || v >= g.order {
		return 0, ErrVertexNotFound
	}
	if u == v {
		return 0, nil
	}
	val, err := g.adj.At(u, v)
	if err != nil {
		return 0, err
	}
	if val != 0 {
		return 1, nil
	}
	return 0, nil
}

// Neighbors returns the strictly ascending, duplicate-free list of vertex
// indices adjacent to index.
func (g *Graph) Neighbors(index int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if index < 0 || index >= g.order {
		return nil, ErrVertexNotFound
	}
	var out []int
	for j := 0; j < g.order; j++ {
		v, err := g.adj.At(index, j)
		if err != nil {
			return nil, err
		}
		if v != 0 {
			out = append(out, j)
		}
	}
	return out, nil
}

// AddEdge asserts an edge between uLabel and vLabel. Missing endpoints are
// created implicitly with no attributes (PDFs reference undefined object ids
// in the wild); self-loops are rejected; re-asserting an existing edge is a
// no-op.
func (g *Graph) AddEdge(uLabel, vLabel string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addEdgeLocked(uLabel, vLabel)
}

func (g *Graph) addEdgeLocked(uLabel, vLabel string) error {
	u, err := g.addVertexLocked(uLabel, nil)
	if err != nil {
		return err
	}
	v, err := g.addVertexLocked(vLabel, nil)
	if err != nil {
		return err
	}
	return g.addEdgeIndexLocked(u, v)
}

// AddEdgeIndex asserts an edge between two existing vertex indices. Both
// indices must name vertices already added with AddVertex (a slot reserved
// by Grow alone returns ErrVertexNotFound); this is
// the entry point association-graph construction uses, since its vertices
// are indexed positionally rather than discovered by label lookup.
func (g *Graph) AddEdgeIndex(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addEdgeIndexLocked(u, v)
}

func (g *Graph) addEdgeIndexLocked(u, v int) error {
	if u < 0 || u >= len(g.vertices) || v < 0 || v >= len(g.vertices) {
		return ErrVertexNotFound
	}
	if u == v {
		return ErrSelfLoop
	}
	existing, err := g.adj.At(u, v)
	if err != nil {
		return err
	}
	if existing != 0 {
		return nil // duplicate edge collapses
	}
	if err := g.adj.Set(u, v, 1); err != nil {
		return err
	}
	if err := g.adj.Set(v, u, 1); err != nil {
		return err
	}
	g.size++
	g.edgeOrder = append(g.edgeOrder, Edge{U: g.vertices[u].Label, V: g.vertices[v].Label})
	return nil
}

// EdgeList returns every edge exactly once, as the (U,V) label pair in the
// order it was first asserted via AddEdge/AddEdgeIndex — endpoint order
// preserved as called, not normalized by vertex index. This is the
// "adapter-emitted order" a canonical edge-digest is computed over, distinct
// from Neighbors' index-ascending view of the same adjacency.
func (g *Graph) EdgeList() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edgeOrder))
	copy(out, g.edgeOrder)
	return out
}
