package matching

import (
	"context"
	"fmt"
	"math"

	"github.com/jonathan/resume-analyzer/internal/domain"
)

// MatchResult is a scored resume/job comparison.
type MatchResult struct {
	Score         float64       `json:"score"`
	Reasoning     string        `json:"reasoning"`
	ResumeDomain  domain.Domain `json:"resume_domain"`
	JobDomain     domain.Domain `json:"job_domain"`
	RawSimilarity float64       `json:"raw_similarity"`
}

// Scorer computes compatibility scores from embeddings, adjusted by
// the detected professional domains of the two documents.
type Scorer struct {
	embedder   Embedder
	classifier domain.Classifier
}

// NewScorer creates a scorer using the given embedder and classifier.
func NewScorer(embedder Embedder, classifier domain.Classifier) *Scorer {
	return &Scorer{
		embedder:   embedder,
		classifier: classifier,
	}
}

// Score embeds both documents, takes cosine similarity as a base score
// on a 0-100 scale, and adjusts it by domain agreement. The score is
// always in [0, 100] and rounded to two decimal places.
func (s *Scorer) Score(ctx context.Context, resumeText, jobText string) (MatchResult, error) {
	resumeVec, err := s.embedder.Embed(ctx, resumeText)
	if err != nil {
		return MatchResult{}, &ClassificationError{Stage: "resume embedding", Err: err}
	}

	jobVec, err := s.embedder.Embed(ctx, jobText)
	if err != nil {
		return MatchResult{}, &ClassificationError{Stage: "job embedding", Err: err}
	}

	similarity := cosineSimilarity(resumeVec, jobVec)
	base := similarity * 100

	resumeDomain := s.classifier.Classify(resumeText)
	jobDomain := s.classifier.Classify(jobText)

	score, reasoning := adjustForDomains(base, resumeDomain, jobDomain)

	return MatchResult{
		Score:         round2(clamp(score, 0, 100)),
		Reasoning:     reasoning,
		ResumeDomain:  resumeDomain,
		JobDomain:     jobDomain,
		RawSimilarity: similarity,
	}, nil
}

func adjustForDomains(base float64, resumeDomain, jobDomain domain.Domain) (float64, string) {
	switch {
	case resumeDomain == jobDomain && resumeDomain != domain.General:
		score := math.Min(base*1.1, 100)
		reasoning := fmt.Sprintf("Strong domain match (%s) with semantic similarity analysis.", resumeDomain)
		return score, reasoning
	case resumeDomain != jobDomain && resumeDomain != domain.General && jobDomain != domain.General:
		reasoning := fmt.Sprintf(
			"Significant domain mismatch: Resume is %s-focused while job requires %s expertise. Very low compatibility.",
			resumeDomain, jobDomain)
		return base * 0.15, reasoning
	case resumeDomain == domain.General || jobDomain == domain.General:
		return base * 0.7, "Mixed domain match with semantic similarity analysis."
	default:
		return base, "Semantic similarity based on content analysis."
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
