// Package netsimile computes NetSimile-style structural signatures of a
// labeled graph: a fixed-length, size-independent feature vector that lets
// two object graphs of different order be compared directly.
//
// Per node, seven features are computed (degree, local clustering
// coefficient, mean neighbor degree, mean neighbor clustering coefficient,
// and three counts over the node's ego-graph); the resulting 7xN feature
// matrix is then reduced column-wise to five statistical moments each,
// producing a 35-dim signature. Two signatures are compared with Canberra
// distance, which — unlike Euclidean — stays meaningful across features of
// very different scale (a degree count next to a clustering coefficient in
// [0,1]).
package netsimile
