// Package batch runs the analysis pipeline over many resumes against one
// job description and manages the recruiter-facing result set: filtering,
// sorting, shortlisting, and export.
package batch

import (
	"time"

	"github.com/jonathan/resume-analyzer/internal/gap"
	"github.com/jonathan/resume-analyzer/internal/matching"
)

// previewLimit caps the stored resume excerpt shown alongside results.
const previewLimit = 300

// Resume is one uploaded document queued for batch processing.
type Resume struct {
	Filename  string
	MediaType string
	Data      []byte
}

// Candidate aggregates everything the pipeline learned about one resume.
type Candidate struct {
	Filename          string   `json:"filename"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	MatchScore        float64  `json:"match_score"`
	Reasoning         string   `json:"reasoning"`
	Skills            []string `json:"skills"`
	MatchingSkills    []string `json:"matching_skills"`
	MissingSkills     []string `json:"missing_skills"`
	SkillMatchPercent float64  `json:"skill_match_percent"`
	Preview           string   `json:"resume_preview"`
}

// Outcome is the per-resume result of a batch run. Exactly one of
// Candidate and Err is set; a failed item never aborts the batch.
type Outcome struct {
	Filename  string
	Candidate *Candidate
	Err       error
}

// ShortlistEntry is a candidate a recruiter has marked for follow-up.
type ShortlistEntry struct {
	Candidate
	JobTitle      string    `json:"job_title"`
	ShortlistedAt time.Time `json:"shortlisted_at"`
}

func newCandidate(filename, rawText string, name, email, phone string, skills []string, match matching.MatchResult, report gap.Report) *Candidate {
	preview := rawText
	if len(preview) > previewLimit {
		preview = preview[:previewLimit] + "..."
	}

	return &Candidate{
		Filename:          filename,
		Name:              name,
		Email:             email,
		Phone:             phone,
		MatchScore:        match.Score,
		Reasoning:         match.Reasoning,
		Skills:            skills,
		MatchingSkills:    report.MatchingSkills,
		MissingSkills:     report.MissingSkills,
		SkillMatchPercent: report.MatchPercentage,
		Preview:           preview,
	}
}
