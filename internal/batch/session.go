package batch

import (
	"sort"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/extraction"
)

// SortOrder selects how filtered results are ordered.
type SortOrder string

const (
	SortByScoreDesc  SortOrder = "score_desc"
	SortByScoreAsc   SortOrder = "score_asc"
	SortByName       SortOrder = "name"
	SortBySkillMatch SortOrder = "skill_match"
)

// FilterOptions narrows and orders a result set.
type FilterOptions struct {
	MinScore      float64
	RequiredSkill string
	SortBy        SortOrder
}

// Stats summarizes a result set for the dashboard.
type Stats struct {
	Total        int     `json:"total"`
	AverageScore float64 `json:"average_score"`
	TopScore     float64 `json:"top_score"`
	Qualified    int     `json:"qualified"`
}

// qualifiedThreshold is the score at or above which a candidate counts as
// qualified in summary stats.
const qualifiedThreshold = 50.0

// Session holds one recruiter session's accumulated state. It is owned by
// the calling context, one instance per session, and is not safe for
// concurrent use.
type Session struct {
	results   []Candidate
	shortlist []ShortlistEntry
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// SetResults replaces the session's batch results with the successful
// candidates from outcomes, preserving input order.
func (s *Session) SetResults(outcomes []Outcome) {
	s.results = s.results[:0]
	for _, outcome := range outcomes {
		if outcome.Candidate != nil {
			s.results = append(s.results, *outcome.Candidate)
		}
	}
}

// Results returns the stored candidates in processing order.
func (s *Session) Results() []Candidate {
	return s.results
}

// Clear drops all batch results and the shortlist.
func (s *Session) Clear() {
	s.results = nil
	s.shortlist = nil
}

// Filter returns the candidates passing opts, ordered per opts.SortBy.
// The session's stored order is untouched.
func (s *Session) Filter(opts FilterOptions) []Candidate {
	filtered := make([]Candidate, 0, len(s.results))
	for _, c := range s.results {
		if c.MatchScore < opts.MinScore {
			continue
		}
		if opts.RequiredSkill != "" && !hasSkill(c.Skills, opts.RequiredSkill) {
			continue
		}
		filtered = append(filtered, c)
	}

	switch opts.SortBy {
	case SortByScoreDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].MatchScore > filtered[j].MatchScore })
	case SortByScoreAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].MatchScore < filtered[j].MatchScore })
	case SortByName:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })
	case SortBySkillMatch:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].SkillMatchPercent > filtered[j].SkillMatchPercent })
	}

	return filtered
}

// Stats summarizes the given candidates (typically a Filter result).
func (s *Session) Stats(candidates []Candidate) Stats {
	stats := Stats{Total: len(candidates)}
	if len(candidates) == 0 {
		return stats
	}

	var sum float64
	for _, c := range candidates {
		sum += c.MatchScore
		if c.MatchScore > stats.TopScore {
			stats.TopScore = c.MatchScore
		}
		if c.MatchScore >= qualifiedThreshold {
			stats.Qualified++
		}
	}
	stats.AverageScore = sum / float64(len(candidates))

	return stats
}

// AddToShortlist appends a candidate unless one with the same name and
// email is already shortlisted. Reports whether the candidate was added.
func (s *Session) AddToShortlist(candidate Candidate, jobTitle string, at time.Time) bool {
	for _, entry := range s.shortlist {
		if entry.Name == candidate.Name && entry.Email == candidate.Email {
			return false
		}
	}
	if jobTitle == "" {
		jobTitle = "Unknown Position"
	}
	s.shortlist = append(s.shortlist, ShortlistEntry{
		Candidate:     candidate,
		JobTitle:      jobTitle,
		ShortlistedAt: at,
	})
	return true
}

// RemoveFromShortlist drops the entry matching name and email. Reports
// whether an entry was removed.
func (s *Session) RemoveFromShortlist(name, email string) bool {
	for i, entry := range s.shortlist {
		if entry.Name == name && entry.Email == email {
			s.shortlist = append(s.shortlist[:i], s.shortlist[i+1:]...)
			return true
		}
	}
	return false
}

// ClearShortlist removes every shortlisted candidate.
func (s *Session) ClearShortlist() {
	s.shortlist = nil
}

// Shortlist returns shortlisted candidates in the order they were added.
func (s *Session) Shortlist() []ShortlistEntry {
	return s.shortlist
}

// EmailList returns the shortlist's email addresses, skipping candidates
// whose email was never found.
func (s *Session) EmailList() []string {
	var emails []string
	for _, entry := range s.shortlist {
		if entry.Email != extraction.NotFound {
			emails = append(emails, entry.Email)
		}
	}
	return emails
}

func hasSkill(skills []string, want string) bool {
	for _, skill := range skills {
		if strings.EqualFold(skill, want) {
			return true
		}
	}
	return false
}
