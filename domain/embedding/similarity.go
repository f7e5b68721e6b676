package embedding

import "math"

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns a value between -1 (opposite) and 1 (identical).
// Returns 0 on length mismatch or when either vector has zero magnitude,
// so a single degenerate entry never aborts ranking of the rest.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, magA, magB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}

	if magA == 0 || magB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(magA) * math.Sqrt(magB))
}

// MatchScore remaps a cosine similarity s in [-1,1] to a display score in
// [0,100], rounded to two decimals. The remap matters: term-frequency
// vectors rarely produce negative cosine values, so raw similarities
// cluster near the top of [0,1] — callers must not reinterpret raw
// cosine values as percentages.
func MatchScore(similarity float64) float64 {
	score := ((similarity + 1) / 2) * 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return math.Round(score*100) / 100
}
