package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_PartitionsRequiredSkills(t *testing.T) {
	analyzer := NewAnalyzer()

	report := analyzer.Analyze(
		[]string{"Python", "Git"},
		"We need Python, React, and Docker expertise.",
	)

	assert.Equal(t, []string{"Python", "React", "Docker"}, report.RequiredSkills)
	assert.Equal(t, []string{"Python"}, report.MatchingSkills)
	assert.Equal(t, []string{"React", "Docker"}, report.MissingSkills)
	assert.InDelta(t, 33.33, report.MatchPercentage, 0.01)
}

func TestAnalyze_ResumeSkillMatchIsCaseInsensitive(t *testing.T) {
	analyzer := NewAnalyzer()

	report := analyzer.Analyze(
		[]string{"python", "REACT"},
		"We need Python and React.",
	)

	assert.Equal(t, []string{"Python", "React"}, report.MatchingSkills)
	assert.Empty(t, report.MissingSkills)
	assert.InDelta(t, 100.0, report.MatchPercentage, 0.001)
}

func TestAnalyze_RequiredSkillsCappedAtTen(t *testing.T) {
	analyzer := NewAnalyzer()
	jobText := "Python JavaScript TypeScript React Angular Vue.js HTML CSS Bootstrap Node.js Django MySQL"

	report := analyzer.Analyze(nil, jobText)

	// "JavaScript" also contains "Java", so Java counts as detected.
	assert.Equal(t, []string{
		"Python", "JavaScript", "Java", "TypeScript", "React",
		"Angular", "Vue.js", "HTML", "CSS", "Bootstrap",
	}, report.RequiredSkills)
	assert.Len(t, report.MissingSkills, 5)
	assert.Equal(t, 0.0, report.MatchPercentage)
}

func TestAnalyze_FallbackToGeneralRequirements(t *testing.T) {
	analyzer := NewAnalyzer()

	report := analyzer.Analyze(
		nil,
		"Looking for someone with strong communication and a bachelor degree.",
	)

	assert.Equal(t, []string{"Relevant Degree", "Communication Skills"}, report.RequiredSkills)
	assert.Equal(t, []string{"Relevant Degree", "Communication Skills"}, report.MissingSkills)
	assert.Equal(t, 0.0, report.MatchPercentage)
}

func TestAnalyze_DefaultFallbackWhenNothingDetected(t *testing.T) {
	analyzer := NewAnalyzer()

	report := analyzer.Analyze(nil, "Seeking a motivated individual.")

	assert.Equal(t, []string{"Domain Knowledge", "Professional Experience"}, report.RequiredSkills)
}

func TestAnalyze_EmptyInputs(t *testing.T) {
	analyzer := NewAnalyzer()

	report := analyzer.Analyze(nil, "")

	assert.Equal(t, []string{"Domain Knowledge", "Professional Experience"}, report.RequiredSkills)
	assert.Empty(t, report.MatchingSkills)
	assert.Equal(t, 0.0, report.MatchPercentage)
}

func TestAnalyze_OrderFollowsRequiredSkills(t *testing.T) {
	analyzer := NewAnalyzer()

	report := analyzer.Analyze(
		[]string{"Docker"},
		"We need Python, React, and Docker expertise.",
	)

	// Matching and missing interleave back into the required order.
	combined := make(map[string]int)
	for i, skill := range report.RequiredSkills {
		combined[skill] = i
	}
	assert.True(t, combined["Python"] < combined["React"])
	assert.True(t, combined["React"] < combined["Docker"])
	assert.Equal(t, []string{"Docker"}, report.MatchingSkills)
	assert.Equal(t, []string{"Python", "React"}, report.MissingSkills)
}
