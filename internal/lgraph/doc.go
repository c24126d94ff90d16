// Package lgraph implements a labeled, undirected graph backed by a dense
// adjacency matrix: vertices carry a label, an attribute bag, and a weight;
// edges are unordered pairs stored as 0/1 entries in a square matrix.
//
// Dense storage over sparse is a deliberate choice: association graphs built
// over two inputs of order n1, n2 have up to n1*n2 vertices, and the clique
// engine's inner adjacency probe runs far more often than the one-time
// O(n^2) construction cost — a dense matrix keeps that probe O(1) with
// predictable cache behavior.
package lgraph
