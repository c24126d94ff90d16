package lgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toejamhoney/nabu-go/internal/lgraph"
)

// buildTriangle returns a 3-vertex graph A-B-C-A with attribute tags.
func buildTriangle(t *testing.T) *lgraph.Graph {
	t.Helper()
	g := lgraph.New()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("A", "C"))
	return g
}

func TestGraph_AddVertex_FirstWins(t *testing.T) {
	g := lgraph.New()
	idx1, err := g.AddVertex("A", []string{"x"})
	require.NoError(t, err)

	idx2, err := g.AddVertex("A", []string{"y"})
	require.NoError(t, err)
	assert.Equal(t, idx1, idx2, "repeated label must return its original index")

	v, err := g.VertexAt(idx1)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, v.Attrs, "first attribute set wins on duplicate label")
}

func TestGraph_AddVertex_EmptyLabel(t *testing.T) {
	g := lgraph.New()
	_, err := g.AddVertex("", nil)
	assert.ErrorIs(t, err, lgraph.ErrEmptyLabel)
}

func TestGraph_AddEdge_ImplicitVertexCreation(t *testing.T) {
	g := lgraph.New()
	require.NoError(t, g.AddEdge("1", "2"))

	assert.Equal(t, 2, g.Order())
	assert.Equal(t, 1, g.Size())

	adj, err := g.Adjacent("1", "2")
	require.NoError(t, err)
	assert.Equal(t, 1, adj)
}

func TestGraph_AddEdge_SelfLoopRejected(t *testing.T) {
	g := lgraph.New()
	_, err := g.AddVertex("A", nil)
	require.NoError(t, err)
	err = g.AddEdge("A", "A")
	assert.ErrorIs(t, err, lgraph.ErrSelfLoop)
}

func TestGraph_AddEdge_DuplicateCollapses(t *testing.T) {
	g := lgraph.New()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "A")) // same pair, reversed order
	assert.Equal(t, 1, g.Size(), "duplicate edges must collapse")
}

func TestGraph_EdgeList_PreservesAssertedOrderAndEndpoints(t *testing.T) {
	g := lgraph.New()
	require.NoError(t, g.AddEdge("B", "A")) // higher-index-first endpoint order, on purpose
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("B", "A")) // duplicate must not appear twice

	got := g.EdgeList()
	require.Len(t, got, 2)
	assert.Equal(t, lgraph.Edge{U: "B", V: "A"}, got[0], "endpoint order as asserted, not normalized by vertex index")
	assert.Equal(t, lgraph.Edge{U: "A", V: "C"}, got[1], "edges appear in first-assertion order")
}

func TestGraph_Symmetry(t *testing.T) {
	g := buildTriangle(t)
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}} {
		fwd, err := g.Adjacent(pair[0], pair[1])
		require.NoError(t, err)
		rev, err := g.Adjacent(pair[1], pair[0])
		require.NoError(t, err)
		assert.Equal(t, fwd, rev, "adjacency must be symmetric")
	}
	diag, err := g.Adjacent("A", "A")
	require.NoError(t, err)
	assert.Equal(t, 0, diag, "diagonal must be 0")
}

func TestGraph_Neighbors_AscendingNoDuplicates(t *testing.T) {
	g := buildTriangle(t)
	idxA, err := g.VertexByLabel("A")
	require.NoError(t, err)

	nbrs, err := g.Neighbors(idxA)
	require.NoError(t, err)
	assert.True(t, sortedAscendingUnique(nbrs), "neighbors must be strictly ascending with no duplicates")
	assert.Len(t, nbrs, 2)
}

func sortedAscendingUnique(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}

func TestGraph_VertexByLabel_NotFound(t *testing.T) {
	g := lgraph.New()
	_, err := g.VertexByLabel("missing")
	assert.ErrorIs(t, err, lgraph.ErrVertexNotFound)
}

func TestGraph_Grow_PreservesExistingEdges(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.Grow(2))
	assert.Equal(t, 5, g.Order())

	adj, err := g.Adjacent("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1, adj, "growing the matrix must preserve existing edges")
}

func TestGraph_Init_IdempotentOnRepeatedInput(t *testing.T) {
	vertices := []lgraph.Vertex{
		{Label: "A", Attrs: []string{"a"}},
		{Label: "B", Attrs: []string{"a", "b"}},
	}
	edges := []lgraph.Edge{{U: "A", V: "B"}}

	g := lgraph.New()
	require.NoError(t, g.Init(vertices, edges))
	require.NoError(t, g.Init(vertices, edges))

	assert.Equal(t, 2, g.Order())
	assert.Equal(t, 1, g.Size())
}
