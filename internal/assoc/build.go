package assoc

import (
	"fmt"

	"github.com/toejamhoney/nabu-go/internal/lgraph"
)

// Build constructs the association graph of g1 and g2: one vertex per pair
// (a,b) with a in g1, b in g2, weighted by attribute Jaccard; an edge
// between (a1,b1) and (a2,b2) iff a1 != a2, b1 != b2, and adjacency in g1
// agrees with adjacency in g2 for those coordinate pairs.
//
// Vertex labels encode their coordinates as "a:b" so a returned graph's
// vertex order is exactly row-major (a*order2+b) — callers needing the
// originating (a,b) pair can recover it from the index alone.
func Build(g1, g2 *lgraph.Graph) (*lgraph.Graph, error) {
	order1, order2 := g1.Order(), g2.Order()
	out := lgraph.New()
	if order1 == 0 || order2 == 0 {
		return out, nil
	}
	if err := out.Grow(order1 * order2); err != nil {
		return nil, err
	}

	v1 := g1.Vertices()
	v2 := g2.Vertices()

	for a := 0; a < order1; a++ {
		for b := 0; b < order2; b++ {
			idx, err := out.AddVertex(fmt.Sprintf("%d:%d", a, b), nil)
			if err != nil {
				return nil, err
			}
			w := jaccard(v1[a].Attrs, v2[b].Attrs)
			if err := out.SetWeight(idx, w); err != nil {
				return nil, err
			}
		}
	}

	// Only pairs with a1 < a2 are considered: compatibility requires a1 != a2,
	// and iterating strictly a1 < a2 visits each unordered vertex pair once
	// (idx1 = a1*order2+b1 < a2*order2+b2 = idx2 whenever a2 > a1).
	for a1 := 0; a1 < order1; a1++ {
		for b1 := 0; b1 < order2; b1++ {
			idx1 := a1*order2 + b1
			for a2 := a1 + 1; a2 < order1; a2++ {
				for b2 := 0; b2 < order2; b2++ {
					if b2 == b1 {
						continue
					}
					idx2 := a2*order2 + b2

					adj1, err := g1.AdjacentIndex(a1, a2)
					if err != nil {
						return nil, err
					}
					adj2, err := g2.AdjacentIndex(b1, b2)
					if err != nil {
						return nil, err
					}
					if (adj1 != 0) == (adj2 != 0) {
						if err := out.AddEdgeIndex(idx1, idx2); err != nil {
							return nil, err
						}
					}
				}
			}
		}
	}

	return out, nil
}

// jaccard returns |a∩b| / |a∪b| over the two attribute multisets treated as
// sets, or 0 if both are empty.
func jaccard(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	var intersection int
	for tag := range setA {
		if setB[tag] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func toSet(xs []string) map[string]bool {
	out := make(map[string]bool, len(xs))
	for _, x := range xs {
		out[x] = true
	}
	return out
}
