// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Reduce each column of a matrix to its five central moments
//     (median, mean, population stddev, skewness, kurtosis) in one pass.
//   - Used by callers aggregating a per-entity feature matrix into a
//     fixed-length signature (one row per entity, one column per feature).
//
// Determinism:
//   - Column order preserved; within a column, values are sorted only for
//     the median computation (a dedicated copy, the source column order is
//     never mutated).

package matrix

import (
	"math"
	"sort"
)

const opColumnMoments = "ColumnMoments"

// columnMoments returns, for every column of X, (median, mean, stddev, skewness, kurtosis).
//
// Stddev is the population standard deviation (divisor n, not n-1) to match
// the moment-based skewness/kurtosis formulas below, which share the same
// denominator convention.
//
// Degenerate columns (population variance == 0) report skewness == 0 and
// kurtosis == 0 rather than NaN from a 0/0 division.
func columnMoments(X Matrix) (median, mean, std, skew, kurt []float64, err error) {
	if err = ValidateNotNil(X); err != nil {
		return nil, nil, nil, nil, nil, matrixErrorf(opColumnMoments, err)
	}

	r, c := X.Rows(), X.Cols()
	median = make([]float64, c)
	mean = make([]float64, c)
	std = make([]float64, c)
	skew = make([]float64, c)
	kurt = make([]float64, c)
	if r == 0 || c == 0 {
		return median, mean, std, skew, kurt, nil
	}

	col := make([]float64, r) // scratch buffer reused per column
	d, isDense := X.(*Dense)

	var i, j int
	var v float64
	for j = 0; j < c; j++ {
		if isDense {
			for i = 0; i < r; i++ {
				col[i] = d.data[i*c+j]
			}
		} else {
			for i = 0; i < r; i++ {
				v, err = X.At(i, j)
				if err != nil {
					return nil, nil, nil, nil, nil, matrixErrorf(opColumnMoments, err)
				}
				col[i] = v
			}
		}

		mean[j] = sumOf(col) / float64(r)

		sorted := append([]float64(nil), col...)
		sort.Float64s(sorted)
		median[j] = medianOfSorted(sorted)

		var m2, m3, m4, dv float64
		for i = 0; i < r; i++ {
			dv = col[i] - mean[j]
			m2 += dv * dv
			m3 += dv * dv * dv
			m4 += dv * dv * dv * dv
		}
		m2 /= float64(r)
		m3 /= float64(r)
		m4 /= float64(r)

		std[j] = math.Sqrt(m2)
		if m2 > 0 {
			skew[j] = m3 / math.Pow(m2, 1.5)
			kurt[j] = m4/(m2*m2) - 3.0 // excess kurtosis
		} // else: leave skew/kurt at zero value (degenerate column policy)
	}

	return median, mean, std, skew, kurt, nil
}

func sumOf(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

func medianOfSorted(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2.0
}
