package netsimile

import (
	"github.com/toejamhoney/nabu-go/internal/lgraph"
	"github.com/toejamhoney/nabu-go/matrix"
)

// Row order of the feature matrix, fixed per feature index.
const (
	featDegree = iota
	featClustering
	featMeanNeighborDegree
	featMeanNeighborClustering
	featEgoEdges
	featEgoOutgoing
	featEgoExternalNeighbors
	featureCount
)

// FeatureMatrix computes the 7xN per-node feature matrix of g: row r,
// column v holds feature r of vertex v, in the fixed order documented on
// the feat* constants.
func FeatureMatrix(g *lgraph.Graph) (*matrix.Dense, error) {
	n := g.Order()
	if n == 0 {
		return nil, nil
	}
	m, err := matrix.NewDense(featureCount, n)
	if err != nil {
		return nil, err
	}

	degree := make([]int, n)
	neighbors := make([][]int, n)
	for v := 0; v < n; v++ {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		neighbors[v] = nbrs
		degree[v] = len(nbrs)
	}

	clusterCoef := make([]float64, n)
	for v := 0; v < n; v++ {
		c, err := localClustering(g, v, neighbors[v])
		if err != nil {
			return nil, err
		}
		clusterCoef[v] = c
	}

	for v := 0; v < n; v++ {
		if err := m.Set(featDegree, v, float64(degree[v])); err != nil {
			return nil, err
		}
		if err := m.Set(featClustering, v, clusterCoef[v]); err != nil {
			return nil, err
		}

		var meanDeg, meanClust float64
		if degree[v] > 0 {
			var sumDeg, sumClust float64
			for _, u := range neighbors[v] {
				sumDeg += float64(degree[u])
				sumClust += clusterCoef[u]
			}
			meanDeg = sumDeg / float64(degree[v])
			meanClust = sumClust / float64(degree[v])
		}
		if err := m.Set(featMeanNeighborDegree, v, meanDeg); err != nil {
			return nil, err
		}
		if err := m.Set(featMeanNeighborClustering, v, meanClust); err != nil {
			return nil, err
		}

		edges, outgoing, external, err := egoStats(v, neighbors)
		if err != nil {
			return nil, err
		}
		if err := m.Set(featEgoEdges, v, float64(edges)); err != nil {
			return nil, err
		}
		if err := m.Set(featEgoOutgoing, v, float64(outgoing)); err != nil {
			return nil, err
		}
		if err := m.Set(featEgoExternalNeighbors, v, float64(external)); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// localClustering returns c(v), the fraction of pairs among v's neighbors
// that are themselves adjacent. 0 when v has fewer than two neighbors.
func localClustering(g *lgraph.Graph, v int, neighbors []int) (float64, error) {
	k := len(neighbors)
	if k < 2 {
		return 0, nil
	}
	var links int
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			adj, err := g.AdjacentIndex(neighbors[i], neighbors[j])
			if err != nil {
				return 0, err
			}
			if adj != 0 {
				links++
			}
		}
	}
	return 2 * float64(links) / float64(k*(k-1)), nil
}

// egoStats computes, for the ego-graph of v (v and its neighbors, with the
// edges induced between them): the number of internal edges, the number of
// edges leaving the ego-graph (exactly one endpoint inside), and the number
// of distinct external vertices those outgoing edges reach.
func egoStats(v int, neighbors [][]int) (edges, outgoing, external int, err error) {
	inEgo := make(map[int]bool, len(neighbors[v])+1)
	inEgo[v] = true
	for _, u := range neighbors[v] {
		inEgo[u] = true
	}

	externalSeen := make(map[int]bool)
	for u := range inEgo {
		for _, w := range neighbors[u] {
			if inEgo[w] {
				if w > u {
					edges++
				}
				continue
			}
			outgoing++
			externalSeen[w] = true
		}
	}
	return edges, outgoing, len(externalSeen), nil
}
