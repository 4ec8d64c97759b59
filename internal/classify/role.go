// Package classify predicts the professional role a resume targets using
// keyword presence counts. It feeds the prediction-history feature rather
// than the match score.
package classify

import "strings"

// DefaultRole is returned when no role keyword appears in the text.
const DefaultRole = "General"

// roleKeywords pairs each role label with its indicator terms. Slice order
// is the tie-break order, earliest wins.
var roleKeywords = []struct {
	role     string
	keywords []string
}{
	{"Software Developer", []string{
		"python", "javascript", "java", "programming", "coding", "software development",
		"web development", "react", "node.js", "html", "css", "git", "github",
		"api", "database", "sql", "frontend", "backend", "fullstack",
	}},
	{"Data Scientist", []string{
		"machine learning", "data science", "python", "pandas", "numpy", "tensorflow",
		"pytorch", "scikit-learn", "data analysis", "statistics", "ml", "ai",
		"artificial intelligence", "deep learning", "neural networks",
	}},
	{"Web Designer", []string{
		"web design", "ui/ux", "photoshop", "illustrator", "figma", "adobe",
		"graphic design", "css", "html", "responsive design", "wireframes",
		"prototyping", "user interface", "user experience",
	}},
	{"Business Analyst", []string{
		"business analysis", "requirements", "stakeholder", "process improvement",
		"business intelligence", "analytics", "reporting", "excel", "powerbi",
		"tableau", "project management", "agile", "scrum",
	}},
	{"Marketing Specialist", []string{
		"marketing", "digital marketing", "social media", "seo", "content marketing",
		"advertising", "campaigns", "brand", "promotion", "market research",
		"google analytics", "facebook ads", "email marketing",
	}},
	{"Sales Representative", []string{
		"sales", "business development", "client relations", "crm", "lead generation",
		"negotiation", "revenue", "targets", "customer service", "account management",
		"b2b", "b2c", "sales funnel",
	}},
}

// RoleClassifier predicts a role label from resume text.
type RoleClassifier struct{}

// NewRoleClassifier creates the default keyword-presence role classifier.
func NewRoleClassifier() *RoleClassifier {
	return &RoleClassifier{}
}

// Classify counts how many of each role's keywords appear in the text at
// least once and returns the role with the most distinct hits. Requires at
// least one hit, otherwise DefaultRole.
func (c *RoleClassifier) Classify(resumeText string) string {
	lower := strings.ToLower(resumeText)

	best := DefaultRole
	bestScore := 0
	for _, entry := range roleKeywords {
		score := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = entry.role
			bestScore = score
		}
	}

	return best
}
