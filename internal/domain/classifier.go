// Package domain classifies text blocks into coarse occupational domains by
// keyword density. The keyword-count implementation is a deliberate stand-in
// for a semantic model; callers depend only on the Classifier interface so a
// learned classifier can replace it without touching them.
package domain

import "strings"

// Domain is a coarse occupational category inferred from keyword density.
type Domain string

const (
	Technology Domain = "technology"
	Commerce   Domain = "commerce"
	HR         Domain = "hr"
	Healthcare Domain = "healthcare"
	General    Domain = "general"
)

// Classifier determines the dominant domain of a text block.
type Classifier interface {
	Classify(text string) Domain
}

// minKeywordHits is the minimum occurrence count required before a text is
// considered domain-specific rather than general.
const minKeywordHits = 3

// domainKeywords pairs each specific domain with its keyword list. Slice
// order is the tie-break order: on equal counts the earlier domain wins.
var domainKeywords = []struct {
	domain   Domain
	keywords []string
}{
	{Technology, []string{
		"programming", "software", "developer", "engineer", "coding", "python",
		"javascript", "java", "react", "node.js", "database", "api", "frontend",
		"backend", "fullstack", "web development", "mobile app", "algorithm",
		"data structure", "git", "github", "docker", "aws", "cloud", "devops",
		"machine learning", "ai", "artificial intelligence", "html", "css",
		"framework", "library", "debugging", "testing", "deployment",
	}},
	{Commerce, []string{
		"sales", "marketing", "business", "commerce", "retail", "customer service",
		"accounting", "finance", "economics", "trade", "procurement", "supply chain",
		"inventory", "merchandising", "e-commerce", "business development",
		"market research", "advertising", "promotion", "brand", "revenue",
		"profit", "budget", "financial analysis", "crm", "lead generation",
	}},
	{HR, []string{
		"human resources", "recruitment", "hiring", "talent acquisition",
		"employee relations", "payroll", "benefits", "training", "onboarding",
		"performance management", "hr policies", "compliance", "workforce",
	}},
	{Healthcare, []string{
		"medical", "healthcare", "hospital", "patient", "clinical", "nursing",
		"doctor", "physician", "treatment", "diagnosis", "pharmaceutical",
		"medical device", "health", "medicine", "therapy",
	}},
}

// KeywordClassifier is the default Classifier: it counts case-insensitive
// substring occurrences of each domain's keywords.
type KeywordClassifier struct{}

// NewKeywordClassifier creates the default keyword-count classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Classify returns the domain whose keywords occur most often in text,
// counting every occurrence of every keyword. A domain needs at least
// minKeywordHits occurrences to win; otherwise the text is General. Ties
// break by declaration order (technology, commerce, hr, healthcare), which
// keeps the result stable across runs.
func (c *KeywordClassifier) Classify(text string) Domain {
	lower := strings.ToLower(text)

	best := General
	bestCount := 0
	for _, entry := range domainKeywords {
		count := 0
		for _, kw := range entry.keywords {
			count += strings.Count(lower, kw)
		}
		if count > bestCount {
			best = entry.domain
			bestCount = count
		}
	}

	if bestCount < minKeywordHits {
		return General
	}
	return best
}
