// Package clique enumerates maximal cliques of an undirected graph using the
// Bron-Kerbosch algorithm with pivoting and a degeneracy vertex ordering.
//
// The pivoting rule and degeneracy ordering are refinements over the
// textbook unpivoted recursion: pivoting prunes branches that cannot extend
// the current clique past what the pivot already covers, and processing
// vertices in degeneracy order keeps the top-level branching factor low on
// the sparse association graphs this package is built to run over (see
// internal/assoc). Tie-breaks throughout (pivot choice, vertex order) are
// resolved by smallest index, so MaximalCliques is deterministic for a given
// adjacency.
package clique
