package batch

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/gap"
	"github.com/jonathan/resume-analyzer/internal/matching"
)

// ErrNothingToProcess rejects a batch before any work starts when the job
// description or resume list is missing.
var ErrNothingToProcess = errors.New("nothing to process: a job description and at least one resume are required")

// Scorer scores one resume text against one job text.
type Scorer interface {
	Score(ctx context.Context, resumeText, jobText string) (matching.MatchResult, error)
}

// Processor runs the full analysis pipeline per resume.
type Processor struct {
	extractor extraction.TextExtractor
	scorer    Scorer
	analyzer  *gap.Analyzer
	logf      func(format string, args ...any)
}

// NewProcessor wires a processor from its collaborators. logf receives
// per-item failure warnings; pass nil to use the standard logger.
func NewProcessor(extractor extraction.TextExtractor, scorer Scorer, analyzer *gap.Analyzer, logf func(format string, args ...any)) *Processor {
	if logf == nil {
		logf = log.Printf
	}
	return &Processor{
		extractor: extractor,
		scorer:    scorer,
		analyzer:  analyzer,
		logf:      logf,
	}
}

// Process analyzes each resume against jobText in input order. A failing
// resume yields an Outcome with Err set and processing continues; the
// returned slice always has one entry per attempted resume. Cancelling ctx
// stops between items and returns the partial outcomes with ctx's error.
func (p *Processor) Process(ctx context.Context, jobText string, resumes []Resume) ([]Outcome, error) {
	if strings.TrimSpace(jobText) == "" || len(resumes) == 0 {
		return nil, ErrNothingToProcess
	}

	outcomes := make([]Outcome, 0, len(resumes))
	for _, resume := range resumes {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		candidate, err := p.processOne(ctx, jobText, resume)
		if err != nil {
			p.logf("error processing %s: %v", resume.Filename, err)
			outcomes = append(outcomes, Outcome{Filename: resume.Filename, Err: err})
			continue
		}
		outcomes = append(outcomes, Outcome{Filename: resume.Filename, Candidate: candidate})
	}

	return outcomes, nil
}

func (p *Processor) processOne(ctx context.Context, jobText string, resume Resume) (*Candidate, error) {
	rawText, err := p.extractor.Extract(resume.Data, resume.MediaType)
	if err != nil {
		return nil, err
	}

	profile := extraction.BuildProfile(rawText)

	match, err := p.scorer.Score(ctx, profile.RawText, jobText)
	if err != nil {
		return nil, err
	}

	report := p.analyzer.Analyze(profile.Skills, jobText)

	return newCandidate(resume.Filename, profile.RawText,
		profile.Name, profile.Email, profile.Phone, profile.Skills,
		match, report), nil
}
