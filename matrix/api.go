package matrix

// ColumnMoments reduces every column of X to (median, mean, population
// stddev, skewness, excess kurtosis). Degenerate (zero-variance) columns
// report skewness == 0 and kurtosis == 0 instead of NaN.
// Time: O(r*c log r) (per-column sort for the median). Space: O(r+c).
func ColumnMoments(X Matrix) (median, mean, std, skew, kurt []float64, err error) {
	return columnMoments(X)
}
