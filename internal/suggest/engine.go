// Package suggest generates rule-based resume improvement advice from a
// resume and the job description it targets. Every rule is a deterministic
// predicate over the two texts, so identical inputs always produce
// identical advice.
package suggest

import (
	"fmt"
	"strings"
	"unicode"
)

// Section groups related suggestion lines under a heading.
type Section struct {
	Heading string   `json:"heading"`
	Lines   []string `json:"lines"`
}

// suggestionSkills is the vocabulary used to spot job-required skills the
// resume never mentions.
var suggestionSkills = []string{
	"Python", "JavaScript", "Java", "React", "Node.js", "Express.js",
	"MongoDB", "MySQL", "PostgreSQL", "AWS", "Docker", "Git", "HTML",
	"CSS", "TypeScript", "Angular", "Vue.js", "Django", "Flask", "REST API",
	"GraphQL", "Kubernetes", "Jenkins", "Azure", "GCP", "Redis", "Postman",
}

// importantKeywords are terms recruiters and screening systems scan for.
var importantKeywords = []string{
	"experience", "development", "software", "application", "system",
	"design", "implementation", "testing", "deployment", "maintenance",
	"collaboration", "agile", "scrum", "problem-solving", "optimization",
	"scalable", "performance", "security", "architecture", "integration",
}

const (
	maxKeywordHits    = 8
	maxShownKeywords  = 6
	maxShownSkills    = 5
	minWordCount      = 200
	maxWordCount      = 800
	minBulletCount    = 5
	minActionVerbs    = 4
	minProjectRefs    = 3
	minLeadershipRefs = 2
)

// Engine produces improvement suggestions. Stateless and safe for
// concurrent use.
type Engine struct{}

// NewEngine creates a suggestion engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Generate runs every rule and returns the six advice sections in fixed
// order. Sections whose rules all pass still appear, possibly with no
// lines, so callers can rely on the layout.
func (e *Engine) Generate(resumeText, jobText string) []Section {
	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobText)

	return []Section{
		contentSection(resumeText, resumeLower),
		skillsSection(resumeText, jobText, resumeLower),
		keywordSection(resumeLower, jobLower),
		formattingSection(resumeText),
		roleSection(jobLower),
		proTipsSection(),
	}
}

// Render flattens sections into a single displayable string.
func Render(sections []Section) string {
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("## ")
		b.WriteString(section.Heading)
		for _, line := range section.Lines {
			b.WriteString("\n- ")
			b.WriteString(line)
		}
	}
	return b.String()
}

func contentSection(resumeText, resumeLower string) Section {
	section := Section{Heading: "Content Improvements"}

	hasDigits := strings.ContainsFunc(resumeText, unicode.IsDigit)
	if !hasDigits || strings.Count(resumeText, "%") < 2 {
		section.Lines = append(section.Lines,
			"Add quantifiable achievements: include specific numbers, percentages, and metrics (e.g. 'Improved performance by 25%', 'Managed team of 5 developers')")
	}

	if countMentions(resumeLower, "project", "built", "developed", "created", "implemented") < minProjectRefs {
		section.Lines = append(section.Lines,
			"Highlight more projects: add 2-3 relevant projects that demonstrate your technical skills")
	}

	if countMentions(resumeLower, "led", "managed", "coordinated", "collaborated", "team") < minLeadershipRefs {
		section.Lines = append(section.Lines,
			"Emphasize teamwork: include examples of collaboration, leadership, or team projects")
	}

	return section
}

func skillsSection(resumeText, jobText, resumeLower string) Section {
	section := Section{Heading: "Skills Enhancement"}

	missing := missingSkills(resumeText, jobText)
	if len(missing) > maxShownSkills {
		missing = missing[:maxShownSkills]
	}
	if len(missing) > 0 {
		section.Lines = append(section.Lines,
			fmt.Sprintf("Learn these in-demand skills: %s", strings.Join(missing, ", ")))
	}

	if countMentions(resumeLower, "certified", "certification", "certificate") == 0 {
		section.Lines = append(section.Lines,
			"Add relevant certifications: consider getting certified in technologies mentioned in the job description")
	}

	return section
}

func keywordSection(resumeLower, jobLower string) Section {
	section := Section{Heading: "Keywords & ATS Optimization"}

	missing := missingKeywords(resumeLower, jobLower)
	if len(missing) > maxShownKeywords {
		missing = missing[:maxShownKeywords]
	}
	if len(missing) > 0 {
		section.Lines = append(section.Lines,
			fmt.Sprintf("Include these job keywords: %s", strings.Join(missing, ", ")))
	}

	if countMentions(resumeLower, "developed", "implemented", "designed", "optimized", "managed", "created") < minActionVerbs {
		section.Lines = append(section.Lines,
			"Use more action verbs: start bullet points with strong verbs like 'Developed', 'Implemented', 'Optimized'")
	}

	return section
}

func formattingSection(resumeText string) Section {
	section := Section{Heading: "Formatting & Structure"}

	wordCount := len(strings.Fields(resumeText))
	switch {
	case wordCount < minWordCount:
		section.Lines = append(section.Lines,
			"Expand content: your resume seems short, add more detail about your experience and projects")
	case wordCount > maxWordCount:
		section.Lines = append(section.Lines,
			"Condense content: keep it concise, aim for 1-2 pages maximum")
	}

	bullets := strings.Count(resumeText, "•") + strings.Count(resumeText, "-") + strings.Count(resumeText, "*")
	if bullets < minBulletCount {
		section.Lines = append(section.Lines,
			"Use bullet points: format achievements and responsibilities as bullet points for better readability")
	}

	return section
}

func roleSection(jobLower string) Section {
	section := Section{Heading: "Specific Recommendations for This Role"}

	if strings.Contains(jobLower, "full stack") || strings.Contains(jobLower, "fullstack") {
		section.Lines = append(section.Lines,
			"Highlight full-stack projects: showcase projects that demonstrate both frontend and backend skills")
	}
	if strings.Contains(jobLower, "senior") || strings.Contains(jobLower, "lead") {
		section.Lines = append(section.Lines,
			"Emphasize leadership: add examples of mentoring, code reviews, or technical decision-making")
	}
	if strings.Contains(jobLower, "startup") || strings.Contains(jobLower, "fast-paced") {
		section.Lines = append(section.Lines,
			"Show adaptability: highlight experience with rapid development, multiple technologies, or wearing multiple hats")
	}
	if strings.Contains(jobLower, "remote") {
		section.Lines = append(section.Lines,
			"Mention remote experience: if you have remote work experience, highlight your self-management and communication skills")
	}

	return section
}

func proTipsSection() Section {
	return Section{
		Heading: "Pro Tips",
		Lines: []string{
			"Tailor for each application: customize your resume for each job by emphasizing relevant skills",
			"Use consistent formatting: ensure dates, fonts, and spacing are uniform throughout",
			"Proofread carefully: check for typos and grammatical errors",
			"Include a summary: add a 2-3 line professional summary at the top",
		},
	}
}

// missingSkills returns the suggestion-vocabulary skills named by the job
// but absent from the resume, in vocabulary order.
func missingSkills(resumeText, jobText string) []string {
	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobText)

	var missing []string
	for _, skill := range suggestionSkills {
		skillLower := strings.ToLower(skill)
		if strings.Contains(jobLower, skillLower) && !strings.Contains(resumeLower, skillLower) {
			missing = append(missing, skill)
		}
	}
	return missing
}

// missingKeywords returns important job keywords the resume never uses,
// title-cased for display and capped at maxKeywordHits before the caller's
// display cap applies.
func missingKeywords(resumeLower, jobLower string) []string {
	var found []string
	for _, keyword := range importantKeywords {
		if strings.Contains(jobLower, keyword) {
			found = append(found, keyword)
		}
	}
	if len(found) > maxKeywordHits {
		found = found[:maxKeywordHits]
	}

	var missing []string
	for _, keyword := range found {
		if !strings.Contains(resumeLower, keyword) {
			missing = append(missing, titleCase(keyword))
		}
	}
	return missing
}

// countMentions sums the per-occurrence counts of every term in text,
// which callers pass already lowercased.
func countMentions(text string, terms ...string) int {
	count := 0
	for _, term := range terms {
		count += strings.Count(text, term)
	}
	return count
}

func titleCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
