package assoc

import (
	"github.com/toejamhoney/nabu-go/internal/clique"
	"github.com/toejamhoney/nabu-go/internal/lgraph"
)

// Result holds the two similarity scores derived from a pairwise comparison.
type Result struct {
	// Jaccard is |K*| / (order(G1) + order(G2) - |K*|), where K* is the
	// maximum-weight clique of the association graph.
	Jaccard float64
	// Weighted is weight(K*) / order(G1).
	Weighted float64
}

// Similarity compares g1 and g2 via their association graph's maximum-weight
// maximal clique. If either graph is empty, or the association graph has no
// clique at all, both scores are 0 and the association graph is never built
// (or is built but trivially empty).
func Similarity(g1, g2 *lgraph.Graph) (Result, error) {
	order1, order2 := g1.Order(), g2.Order()
	if order1 == 0 || order2 == 0 {
		return Result{}, nil
	}

	ag, err := Build(g1, g2)
	if err != nil {
		return Result{}, err
	}

	cliques, err := clique.MaximalCliques(ag)
	if err != nil {
		return Result{}, err
	}
	if len(cliques) == 0 {
		return Result{}, nil
	}

	best, bestWeight, err := bestWeightClique(ag, cliques)
	if err != nil {
		return Result{}, err
	}

	// Every pair of vertices in a clique of the association graph differs in
	// both coordinates (the compatibility rule requires a1 != a2 and b1 !=
	// b2), so the clique's size already equals the count of distinct first
	// (and second) coordinates it covers.
	size := len(best)

	jac := float64(size) / float64(order1+order2-size)
	weighted := bestWeight / float64(order1)

	return Result{Jaccard: jac, Weighted: weighted}, nil
}

// bestWeightClique scans cliques and returns the one maximizing the sum of
// its vertices' weights, along with that sum.
func bestWeightClique(ag *lgraph.Graph, cliques [][]int) ([]int, float64, error) {
	var best []int
	var bestWeight float64
	first := true

	for _, c := range cliques {
		var w float64
		for _, idx := range c {
			v, err := ag.VertexAt(idx)
			if err != nil {
				return nil, 0, err
			}
			w += v.Weight
		}
		if first || w > bestWeight {
			best = c
			bestWeight = w
			first = false
		}
	}
	return best, bestWeight, nil
}
