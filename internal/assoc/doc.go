// Package assoc builds the association (modular-product) graph of two
// labeled graphs and scores their structural similarity via the maximum
// common subgraph its maximum clique represents.
//
// Each vertex of the association graph is a pair (a,b) with a drawn from
// the first input and b from the second, weighted by the Jaccard overlap of
// their attribute sets. Two pair-vertices are adjacent iff their first and
// second coordinates differ and the corresponding adjacency relation agrees
// (both adjacent, or both non-adjacent) in the two source graphs — the
// standard modular-product construction for maximum common induced
// subgraph detection. Because any clique of this graph can never contain
// two vertices sharing a coordinate, a clique's size already equals its
// count of distinct first (and second) coordinates, which is what the
// Jaccard structural score below is built from.
package assoc
