package extraction

import (
	"regexp"
	"strings"
)

// SkillVocabulary is the fixed, ordered list of skills the extractor knows
// about. Matches are returned in this order, which is the canonical ordering
// for any downstream "top N" slicing.
var SkillVocabulary = []string{
	"HTML", "CSS", "JavaScript", "Node.js", "Express.js", "MongoDB", "MySQL",
	"REST APIs", "Postman", "Figma", "phpMyAdmin", "Python", "C++", "Java",
	"React", "Git", "GitHub", "Docker", "XAMPP",
}

// skillPatterns holds one compiled whole-word pattern per vocabulary entry,
// in vocabulary order.
var skillPatterns = compileSkillPatterns(SkillVocabulary)

func compileSkillPatterns(vocab []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(vocab))
	for i, skill := range vocab {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return patterns
}

// ExtractSkills scans text for vocabulary skills, case-insensitively and with
// word-boundary semantics (multi-word skills match as contiguous phrases).
// The result keeps the vocabulary's original casing, is deduplicated, and is
// ordered by vocabulary scan order so results are reproducible.
func ExtractSkills(text string) []string {
	found := make([]string, 0, 8)
	for i, pattern := range skillPatterns {
		if pattern.MatchString(text) {
			found = append(found, SkillVocabulary[i])
		}
	}
	return found
}

// HasSkill reports whether a skill list contains the given skill,
// case-insensitively.
func HasSkill(skills []string, skill string) bool {
	for _, s := range skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}
