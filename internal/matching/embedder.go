// Package matching scores how well a resume fits a job description by
// combining embedding similarity with a domain-classification adjustment.
package matching

import (
	"context"
	"fmt"
	"math"
)

// Embedder produces a fixed-dimension vector for a text. Implementations must
// be deterministic for identical input and model version.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ClassificationError wraps an embedding-model failure. Batch processing
// isolates it per resume and continues.
type ClassificationError struct {
	Stage string
	Err   error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification failed (%s): %v", e.Stage, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Returns 0 for mismatched lengths or zero vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
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
