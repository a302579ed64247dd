// Package semantic provides the textual-similarity collaborator used as a
// soft signal by the scoring engine.
package semantic

import (
	"context"
	"math"
)

// Scorer computes a symmetric similarity measure between two texts as a
// score in [0,100]. Implementations may call external services; callers
// should impose a timeout via ctx and treat failures as a soft signal
// (degrade to 0) rather than aborting the pipeline.
type Scorer interface {
	Score(ctx context.Context, a, b string) (float64, error)
}

// Static is a Scorer returning a fixed score, used by tests and as an
// offline fallback.
type Static float64

// Score returns the fixed score regardless of inputs.
func (s Static) Score(_ context.Context, _, _ string) (float64, error) {
	return float64(s), nil
}

// cosine computes cosine similarity between two embedding vectors.
// Returns 0 when either vector is empty or zero-length in norm.
func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// toScore scales a cosine similarity to [0,100], clamping negatives to 0.
func toScore(cos float64) float64 {
	score := cos * 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return math.Round(score*100) / 100
}
