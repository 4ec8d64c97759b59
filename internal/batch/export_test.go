package batch

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResultsCSV_ColumnsAndTruncation(t *testing.T) {
	candidates := []Candidate{
		{
			Name:              "Alice",
			Email:             "alice@example.com",
			Phone:             "5551234567",
			MatchScore:        82.5,
			SkillMatchPercent: 60,
			Skills:            []string{"Python", "Docker", "Git", "React", "AWS", "MySQL", "HTML"},
			MissingSkills:     []string{"Kubernetes", "GraphQL", "Redis", "Jenkins"},
			Filename:          "alice.pdf",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResultsCSV(&buf, candidates))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{
		"Rank", "Name", "Email", "Phone", "Match Score (%)", "Skill Match (%)",
		"Skills", "Missing Skills", "Filename",
	}, records[0])

	row := records[1]
	assert.Equal(t, "1", row[0])
	assert.Equal(t, "Alice", row[1])
	assert.Equal(t, "82.50", row[4])
	assert.Equal(t, "60.00", row[5])
	assert.Equal(t, "Python, Docker, Git, React, AWS", row[6])
	assert.Equal(t, "Kubernetes, GraphQL, Redis", row[7])
	assert.Equal(t, "alice.pdf", row[8])
}

func TestWriteResultsCSV_EmptyInputWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResultsCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWriteShortlistCSV_IncludesPositionAndTimestamp(t *testing.T) {
	entries := []ShortlistEntry{
		{
			Candidate: Candidate{
				Name:       "Bob",
				Email:      "bob@example.com",
				Phone:      "Not Found",
				MatchScore: 45,
				Skills:     []string{"React"},
				Filename:   "bob.pdf",
			},
			JobTitle:      "Frontend Engineer",
			ShortlistedAt: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteShortlistCSV(&buf, entries))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{
		"Rank", "Name", "Email", "Phone", "Position", "Match Score (%)",
		"Skill Match (%)", "Skills", "Shortlisted At", "Filename",
	}, records[0])
	assert.Equal(t, "Frontend Engineer", records[1][4])
	assert.Equal(t, "2026-03-01 10:30:00", records[1][8])
}
