package clique

import (
	"github.com/toejamhoney/nabu-go/internal/lgraph"
)

// engine holds all search data for one MaximalCliques run. As with the
// branch-and-bound search in the teacher's tsp package, search state lives in
// a dedicated struct with a dense adjacency buffer rather than being threaded
// through closures: it keeps the hot adjacency probe an O(1) slice index and
// makes the recursion's dependencies explicit.
type engine struct {
	n   int
	adj []bool // adj[u*n+v], symmetric, diagonal false
	nbr [][]int // nbr[v] = sorted ascending neighbor indices of v

	cliques [][]int
}

func (e *engine) adjacent(u, v int) bool {
	return e.adj[u*e.n+v]
}

// newEngine snapshots g's adjacency into a dense buffer.
func newEngine(g *lgraph.Graph) (*engine, error) {
	n := g.Order()
	e := &engine{
		n:   n,
		adj: make([]bool, n*n),
		nbr: make([][]int, n),
	}
	for u := 0; u < n; u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		e.nbr[u] = nbrs
		for _, v := range nbrs {
			e.adj[u*n+v] = true
		}
	}
	return e, nil
}

// MaximalCliques returns every maximal clique of g, each as a sorted slice of
// vertex indices. The order of returned cliques is deterministic but
// unspecified; callers that need the maximum clique should scan the result
// (see internal/assoc.bestWeightClique).
func MaximalCliques(g *lgraph.Graph) ([][]int, error) {
	e, err := newEngine(g)
	if err != nil {
		return nil, err
	}
	if e.n == 0 {
		return nil, nil
	}

	order := e.degeneracyOrdering()

	for i, v := range order {
		earlier := order[:i]
		later := order[i+1:]

		p := intersectSorted(e.nbr[v], sortedCopy(later))
		x := intersectSorted(e.nbr[v], sortedCopy(earlier))
		e.expand([]int{v}, p, x)
	}

	return e.cliques, nil
}

// degeneracyOrdering returns vertices ordered by repeated extraction of the
// minimum-degree vertex in the remaining subgraph (a "degeneracy" or
// "smallest-last" ordering). This is the classic O(n^2) construction rather
// than the linear bucket-queue variant: at the vertex counts this package
// runs over (association graphs of PDF object trees) the simpler form is
// plenty fast and much easier to verify by inspection.
func (e *engine) degeneracyOrdering() []int {
	remaining := make([]bool, e.n)
	degree := make([]int, e.n)
	for v := 0; v < e.n; v++ {
		remaining[v] = true
		degree[v] = len(e.nbr[v])
	}

	order := make([]int, 0, e.n)
	for len(order) < e.n {
		min := -1
		for v := 0; v < e.n; v++ {
			if !remaining[v] {
				continue
			}
			if min == -1 || degree[v] < degree[min] {
				min = v
			}
		}
		remaining[min] = false
		order = append(order, min)
		for _, w := range e.nbr[min] {
			if remaining[w] {
				degree[w]--
			}
		}
	}
	return order
}

// expand is the pivoted Bron-Kerbosch recursion: R is the clique built so
// far, P the candidates that can still extend it, X the candidates already
// explored (and thus forbidden, to avoid reporting the same clique twice).
func (e *engine) expand(r, p, x []int) {
	if len(p) == 0 && len(x) == 0 {
		e.cliques = append(e.cliques, sortedCopy(r))
		return
	}
	if len(p) == 0 {
		return
	}

	pivot := e.choosePivot(p, x)
	candidates := subtractSorted(p, e.nbr[pivot])

	pRemaining := append([]int(nil), p...)
	xLocal := append([]int(nil), x...)

	for _, v := range candidates {
		nv := e.nbr[v]
		rNext := append(append([]int(nil), r...), v)
		pNext := intersectSorted(pRemaining, nv)
		xNext := intersectSorted(xLocal, nv)

		e.expand(rNext, pNext, xNext)

		pRemaining = removeSorted(pRemaining, v)
		xLocal = insertSorted(xLocal, v)
	}
}

// choosePivot picks the vertex in P union X with the most neighbors in P,
// breaking ties by smallest index, so the result is deterministic.
func (e *engine) choosePivot(p, x []int) int {
	best := -1
	bestCount := -1
	consider := func(candidates []int) {
		for _, u := range candidates {
			count := 0
			for _, v := range p {
				if e.adjacent(u, v) {
					count++
				}
			}
			if count > bestCount || (count == bestCount && (best == -1 || u < best)) {
				best = u
				bestCount = count
			}
		}
	}
	consider(p)
	consider(x)
	return best
}
