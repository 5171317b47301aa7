package intent

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestCosineSimilarity(t *testing.T) {
	v := []float32{0.3, -1.2, 4.5, 0.01}

	t.Run("Self Similarity Is One", func(t *testing.T) {
		if got := CosineSimilarity(v, v); !almostEqual(got, 1.0) {
			t.Errorf("similarity(v, v) = %v, want 1.0", got)
		}
	})

	t.Run("Negated Vector Is Minus One", func(t *testing.T) {
		neg := make([]float32, len(v))
		for i := range v {
			neg[i] = -v[i]
		}
		if got := CosineSimilarity(v, neg); !almostEqual(got, -1.0) {
			t.Errorf("similarity(v, -v) = %v, want -1.0", got)
		}
	})

	t.Run("Symmetry", func(t *testing.T) {
		w := []float32{1, 2, 3, 4}
		if CosineSimilarity(v, w) != CosineSimilarity(w, v) {
			t.Errorf("similarity is not symmetric")
		}
	})

	t.Run("Orthogonal Vectors", func(t *testing.T) {
		a := []float32{1, 0}
		b := []float32{0, 1}
		if got := CosineSimilarity(a, b); !almostEqual(got, 0) {
			t.Errorf("similarity of orthogonal vectors = %v, want 0", got)
		}
	})

	t.Run("Length Mismatch Scores Zero", func(t *testing.T) {
		if got := CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}); got != 0 {
			t.Errorf("mismatched lengths = %v, want 0", got)
		}
		if got := CosineSimilarity(nil, nil); got != 0 {
			t.Errorf("empty vectors = %v, want 0", got)
		}
	})
}
