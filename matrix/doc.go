// Package matrix provides a small, dense-buffer linear algebra primitive
// (the Matrix interface and its Dense implementation) used as the backing
// store for adjacency matrices and per-entity feature matrices elsewhere
// in this module.
//
// Design:
//   - Dense stores its r*c elements in a single row-major float64 slice for
//     cache-friendly access and to avoid the allocation overhead of a
//     slice-of-slices.
//   - At/Set are bounds-checked and return sentinel errors rather than
//     panicking, matching the rest of this module's error style.
//   - ColumnMoments reduces a feature matrix (rows = samples, columns =
//     features) to five summary statistics per column in one pass.
package matrix
