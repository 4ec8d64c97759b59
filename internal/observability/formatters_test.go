package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/batch"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/gap"
	"github.com/jonathan/resume-analyzer/internal/matching"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&extraction.ResumeProfile{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Phone:  "5551234567",
		Skills: []string{"Python", "Docker", "Git", "React", "AWS", "MySQL", "HTML"},
	}, "Software Developer")

	out := buf.String()
	assert.Contains(t, out, "CANDIDATE PROFILE")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Software Developer")
	assert.Contains(t, out, "... and 2 more")
}

func TestPrintProfile_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil, "")
	assert.Empty(t, buf.String())
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatch(&matching.MatchResult{
		Score:        99.0,
		Reasoning:    "Strong domain match (technology) with semantic similarity analysis.",
		ResumeDomain: "technology",
		JobDomain:    "technology",
	}, true)

	out := buf.String()
	assert.Contains(t, out, "MATCH SCORE")
	assert.Contains(t, out, "99.00%")
	assert.Contains(t, out, "Resume domain: technology")
}

func TestPrintGapReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGapReport(&gap.Report{
		RequiredSkills:  []string{"Python", "React"},
		MatchingSkills:  []string{"Python"},
		MissingSkills:   []string{"React"},
		MatchPercentage: 50,
	})

	out := buf.String()
	assert.Contains(t, out, "SKILL GAP ANALYSIS")
	assert.Contains(t, out, "✓ Python")
	assert.Contains(t, out, "✗ React")
}

func TestPrintGapReport_EmptyIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintGapReport(&gap.Report{})
	assert.Empty(t, buf.String())
}

func TestPrintCandidates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	candidates := []batch.Candidate{
		{Name: "Alice", MatchScore: 82.5, SkillMatchPercent: 60, MissingSkills: []string{"Kubernetes"}},
		{Name: "Bob", MatchScore: 45, SkillMatchPercent: 80},
	}
	p.PrintCandidates(candidates, batch.Stats{Total: 2, AverageScore: 63.75, TopScore: 82.5, Qualified: 1})

	out := buf.String()
	assert.Contains(t, out, "BATCH RESULTS")
	assert.Contains(t, out, "#1  Alice")
	assert.Contains(t, out, "Missing: Kubernetes")
	assert.Contains(t, out, "Qualified: 1")
}

func TestPrintCandidates_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCandidates(nil, batch.Stats{})

	assert.True(t, strings.Contains(buf.String(), "No candidates match"))
}
