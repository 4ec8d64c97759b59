package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	text := "Worked with PYTHON, react and DoCkEr in production."

	skills := ExtractSkills(text)

	assert.Equal(t, []string{"Python", "React", "Docker"}, skills)
}

func TestExtractSkills_VocabularyOrderAndDedup(t *testing.T) {
	// Mentions out of vocabulary order, with one repeated skill.
	text := "Docker Docker then Python and finally HTML"

	skills := ExtractSkills(text)

	// Result follows vocabulary scan order, not mention order.
	assert.Equal(t, []string{"HTML", "Python", "Docker"}, skills)
}

func TestExtractSkills_MultiWordPhrase(t *testing.T) {
	skills := ExtractSkills("Designed REST APIs for the platform")

	assert.Contains(t, skills, "REST APIs")
}

func TestExtractSkills_WholeWordOnly(t *testing.T) {
	// "Javascripting" must not match "JavaScript"; "GitLab" must not match "Git".
	skills := ExtractSkills("Javascripting with GitLab")

	assert.NotContains(t, skills, "JavaScript")
	assert.NotContains(t, skills, "Git")
}

func TestExtractSkills_DottedSkillName(t *testing.T) {
	skills := ExtractSkills("Backend in Node.js with Express.js middleware")

	assert.Contains(t, skills, "Node.js")
	assert.Contains(t, skills, "Express.js")
}

func TestExtractSkills_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
}

func TestHasSkill(t *testing.T) {
	skills := []string{"Python", "React"}

	assert.True(t, HasSkill(skills, "python"))
	assert.True(t, HasSkill(skills, "React"))
	assert.False(t, HasSkill(skills, "Docker"))
}
