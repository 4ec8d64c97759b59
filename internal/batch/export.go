package batch

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

const (
	exportSkillLimit        = 5
	exportMissingSkillLimit = 3
)

var resultColumns = []string{
	"Rank", "Name", "Email", "Phone", "Match Score (%)", "Skill Match (%)",
	"Skills", "Missing Skills", "Filename",
}

var shortlistColumns = []string{
	"Rank", "Name", "Email", "Phone", "Position", "Match Score (%)",
	"Skill Match (%)", "Skills", "Shortlisted At", "Filename",
}

// WriteResultsCSV writes candidates as the recruiter export table. Rank is
// the 1-based position in the given order, so callers sort first.
func WriteResultsCSV(w io.Writer, candidates []Candidate) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(resultColumns); err != nil {
		return err
	}
	for i, c := range candidates {
		record := []string{
			strconv.Itoa(i + 1),
			c.Name,
			c.Email,
			c.Phone,
			formatPercent(c.MatchScore),
			formatPercent(c.SkillMatchPercent),
			joinLimited(c.Skills, exportSkillLimit),
			joinLimited(c.MissingSkills, exportMissingSkillLimit),
			c.Filename,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteShortlistCSV writes the shortlist export table.
func WriteShortlistCSV(w io.Writer, entries []ShortlistEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(shortlistColumns); err != nil {
		return err
	}
	for i, entry := range entries {
		record := []string{
			strconv.Itoa(i + 1),
			entry.Name,
			entry.Email,
			entry.Phone,
			entry.JobTitle,
			formatPercent(entry.MatchScore),
			formatPercent(entry.SkillMatchPercent),
			joinLimited(entry.Skills, exportSkillLimit),
			entry.ShortlistedAt.Format("2006-01-02 15:04:05"),
			entry.Filename,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func joinLimited(items []string, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}
