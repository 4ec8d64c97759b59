package extraction

import (
	"regexp"
	"strings"
	"unicode"
)

// NotFound is the sentinel returned when a contact field cannot be located.
const NotFound = "Not Found"

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Exactly ten consecutive digits. International formats, dashes and
	// parentheses are intentionally not handled; this matches the documented
	// behavior downstream consumers rely on.
	phoneRe = regexp.MustCompile(`\b\d{10}\b`)
)

// Contact holds the best-guess contact fields pulled from resume text.
// Each field is NotFound when no match exists.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ExtractContact applies the pattern heuristics for name, email and phone.
func ExtractContact(text string) Contact {
	return Contact{
		Name:  extractName(text),
		Email: firstMatch(emailRe, text),
		Phone: firstMatch(phoneRe, text),
	}
}

func firstMatch(re *regexp.Regexp, text string) string {
	if m := re.FindString(text); m != "" {
		return m
	}
	return NotFound
}

// extractName returns the first line with at least two whitespace-separated
// tokens and at least one alphabetic character. Resumes usually open with the
// candidate's name on its own line; a two-word section heading can fool this,
// which is accepted behavior rather than a defect to fix.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(strings.Fields(line)) >= 2 && containsLetter(line) {
			return line
		}
	}
	return NotFound
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
