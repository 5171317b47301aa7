package intent

import "math"

// CosineSimilarity computes the normalized dot product of two equal-length
// vectors, range [-1, 1]. Mismatched or zero-length inputs score 0. Degenerate
// (all-zero) vectors are excluded by the Embedder contract; feeding one yields
// NaN, which can never win a strict > comparison.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}

	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
