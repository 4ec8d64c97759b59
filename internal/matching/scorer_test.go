package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/domain"
)

// fakeEmbedder returns canned vectors keyed by input text.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	vec, ok := f.vectors[text]
	if !ok {
		return nil, errors.New("no vector for text")
	}
	return vec, nil
}

// fakeClassifier maps exact texts to domains, defaulting to General.
type fakeClassifier struct {
	domains map[string]domain.Domain
}

func (f *fakeClassifier) Classify(text string) domain.Domain {
	if d, ok := f.domains[text]; ok {
		return d
	}
	return domain.General
}

func TestScore_BothGeneralAppliesMixedPenalty(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"resume": {1, 0},
		"job":    {0.8, 0.6},
	}}
	scorer := NewScorer(embedder, &fakeClassifier{})

	result, err := scorer.Score(context.Background(), "resume", "job")
	require.NoError(t, err)

	assert.Equal(t, 56.0, result.Score)
	assert.Equal(t, "Mixed domain match with semantic similarity analysis.", result.Reasoning)
	assert.Equal(t, domain.General, result.ResumeDomain)
	assert.Equal(t, domain.General, result.JobDomain)
}

func TestScore_MixedDomainPenalty(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"resume": {1, 0},
		"job":    {0.8, 0.6},
	}}
	classifier := &fakeClassifier{domains: map[string]domain.Domain{
		"resume": domain.Technology,
	}}
	scorer := NewScorer(embedder, classifier)

	result, err := scorer.Score(context.Background(), "resume", "job")
	require.NoError(t, err)

	assert.Equal(t, 56.0, result.Score)
	assert.Equal(t, "Mixed domain match with semantic similarity analysis.", result.Reasoning)
}

func TestScore_MatchingDomainBoost(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"resume": {1, 0},
		"job":    {0.9, 0.43588989},
	}}
	classifier := &fakeClassifier{domains: map[string]domain.Domain{
		"resume": domain.Technology,
		"job":    domain.Technology,
	}}
	scorer := NewScorer(embedder, classifier)

	result, err := scorer.Score(context.Background(), "resume", "job")
	require.NoError(t, err)

	assert.Equal(t, 99.0, result.Score)
	assert.Equal(t, "Strong domain match (technology) with semantic similarity analysis.", result.Reasoning)
}

func TestScore_BoostIsCappedAt100(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"resume": {1, 0},
		"job":    {1, 0},
	}}
	classifier := &fakeClassifier{domains: map[string]domain.Domain{
		"resume": domain.Healthcare,
		"job":    domain.Healthcare,
	}}
	scorer := NewScorer(embedder, classifier)

	result, err := scorer.Score(context.Background(), "resume", "job")
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.Score)
}

func TestScore_DomainMismatchPenalty(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"resume": {1, 0},
		"job":    {0.8, 0.6},
	}}
	classifier := &fakeClassifier{domains: map[string]domain.Domain{
		"resume": domain.Technology,
		"job":    domain.Healthcare,
	}}
	scorer := NewScorer(embedder, classifier)

	result, err := scorer.Score(context.Background(), "resume", "job")
	require.NoError(t, err)

	assert.Equal(t, 12.0, result.Score)
	assert.Equal(t,
		"Significant domain mismatch: Resume is technology-focused while job requires healthcare expertise. Very low compatibility.",
		result.Reasoning)
}

func TestScore_NegativeSimilarityClampsToZero(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"resume": {1, 0},
		"job":    {-1, 0},
	}}
	scorer := NewScorer(embedder, &fakeClassifier{})

	result, err := scorer.Score(context.Background(), "resume", "job")
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Score)
}

func TestScore_IsDeterministic(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"resume": {0.3, 0.4, 0.5},
		"job":    {0.5, 0.1, 0.9},
	}}
	classifier := &fakeClassifier{domains: map[string]domain.Domain{
		"resume": domain.Commerce,
		"job":    domain.Commerce,
	}}
	scorer := NewScorer(embedder, classifier)

	first, err := scorer.Score(context.Background(), "resume", "job")
	require.NoError(t, err)
	second, err := scorer.Score(context.Background(), "resume", "job")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScore_EmbedderErrorIsWrapped(t *testing.T) {
	embedErr := errors.New("model unavailable")
	embedder := &fakeEmbedder{err: embedErr}
	scorer := NewScorer(embedder, &fakeClassifier{})

	_, err := scorer.Score(context.Background(), "resume", "job")
	require.Error(t, err)

	var classErr *ClassificationError
	require.ErrorAs(t, err, &classErr)
	assert.Equal(t, "resume embedding", classErr.Stage)
	assert.ErrorIs(t, err, embedErr)
}

func TestCosineSimilarity_EdgeCases(t *testing.T) {
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{2, 3}, []float32{2, 3}), 1e-9)
}
