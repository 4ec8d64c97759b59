// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/batch"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/gap"
	"github.com/jonathan/resume-analyzer/internal/matching"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the analyze and batch commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs the extracted resume profile.
func (p *Printer) PrintProfile(profile *extraction.ResumeProfile, role string) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", profile.Email))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", profile.Phone))
	sb.WriteString(fmt.Sprintf("Role:   %s\n", role))

	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs the match score with its reasoning and domains.
func (p *Printer) PrintMatch(match *matching.MatchResult, verbose bool) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %.2f%%\n\n", match.Score))

	reasoning := match.Reasoning
	for len(reasoning) > boxWidth-4 {
		sb.WriteString(reasoning[:boxWidth-4] + "\n")
		reasoning = reasoning[boxWidth-4:]
	}
	sb.WriteString(reasoning)

	if verbose {
		sb.WriteString(fmt.Sprintf("\n\nResume domain: %s\n", match.ResumeDomain))
		sb.WriteString(fmt.Sprintf("Job domain:    %s", match.JobDomain))
	}

	p.printBox("MATCH SCORE", sb.String())
}

// PrintGapReport outputs the skill-gap analysis.
func (p *Printer) PrintGapReport(report *gap.Report) {
	if report == nil || len(report.RequiredSkills) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill match: %.2f%%\n", report.MatchPercentage))

	if len(report.MatchingSkills) > 0 {
		sb.WriteString("\nMatching:\n")
		for _, skill := range report.MatchingSkills {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", skill))
		}
	}
	if len(report.MissingSkills) > 0 {
		sb.WriteString("\nMissing:\n")
		for _, skill := range report.MissingSkills {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", skill))
		}
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidates outputs ranked batch candidates with summary stats.
func (p *Printer) PrintCandidates(candidates []batch.Candidate, stats batch.Stats) {
	if len(candidates) == 0 {
		p.printBox("BATCH RESULTS", "No candidates match the current filters.")
		return
	}

	var sb strings.Builder
	count := min(len(candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := candidates[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, c.Name))
		sb.WriteString(fmt.Sprintf("    Score: %.1f%%  Skills: %.1f%%\n", c.MatchScore, c.SkillMatchPercent))
		if len(c.MissingSkills) > 0 {
			missing := strings.Join(c.MissingSkills, ", ")
			if len(missing) > 40 {
				missing = missing[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", missing))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(candidates)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("\n\nAverage: %.1f%%  Top: %.1f%%  Qualified: %d",
		stats.AverageScore, stats.TopScore, stats.Qualified))

	p.printBox("BATCH RESULTS", sb.String())
}
