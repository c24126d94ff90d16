package netsimile

import (
	"errors"
	"math"

	"github.com/toejamhoney/nabu-go/internal/lgraph"
	"github.com/toejamhoney/nabu-go/matrix"
)

// SignatureLength is the fixed dimension of every signature: one of five
// moments per feature, featureCount features.
const SignatureLength = featureCount * 5

// ErrSignatureLengthMismatch indicates CanberraDistance was called with
// vectors of a length other than SignatureLength.
var ErrSignatureLengthMismatch = errors.New("netsimile: signature length mismatch")

// Signature computes the 35-dim NetSimile signature of g: for each of the 7
// per-node features (in feat* order), the five column moments (median,
// mean, stddev, skewness, kurtosis) computed over all of g's vertices, laid
// out feature-major. An empty graph yields a zero vector.
func Signature(g *lgraph.Graph) ([]float64, error) {
	fm, err := FeatureMatrix(g)
	if err != nil {
		return nil, err
	}
	if fm == nil {
		return make([]float64, SignatureLength), nil
	}

	byVertex, err := transpose(fm)
	if err != nil {
		return nil, err
	}

	median, mean, std, skew, kurt, err := matrix.ColumnMoments(byVertex)
	if err != nil {
		return nil, err
	}

	sig := make([]float64, 0, SignatureLength)
	for f := 0; f < featureCount; f++ {
		sig = append(sig, median[f], mean[f], std[f], skew[f], kurt[f])
	}
	return sig, nil
}

// transpose returns an n x 7 matrix from a 7 x n feature matrix, so that
// matrix.ColumnMoments reduces per-feature rather than per-vertex.
func transpose(fm *matrix.Dense) (*matrix.Dense, error) {
	rows, cols := fm.Rows(), fm.Cols()
	out, err := matrix.NewDense(cols, rows)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := fm.At(i, j)
			if err != nil {
				return nil, err
			}
			if err := out.Set(j, i, v); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// CanberraDistance computes the Canberra distance between two signatures:
// sum over dimensions of |a-b| / (|a|+|b|), skipping dimensions where both
// are zero (0/0 contributes 0, not NaN).
func CanberraDistance(a, b []float64) (float64, error) {
	if len(a) != SignatureLength || len(b) != SignatureLength {
		return 0, ErrSignatureLengthMismatch
	}
	var sum float64
	for i := range a {
		denom := math.Abs(a[i]) + math.Abs(b[i])
		if denom == 0 {
			continue
		}
		sum += math.Abs(a[i]-b[i]) / denom
	}
	return sum, nil
}
