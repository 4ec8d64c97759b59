// Package gap reconciles a resume's skill set against the requirements
// implied by a job description, across several skill taxonomies.
package gap

import "strings"

// Report summarizes how a resume's skills compare to a job's requirements.
type Report struct {
	RequiredSkills  []string `json:"job_required_skills"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchPercentage float64  `json:"match_percentage"`
}

const (
	maxRequiredSkills = 10
	maxFallbackSkills = 5
	maxMissingSkills  = 5
)

// taxonomies is the scan order for requirement detection. Within each
// taxonomy the term order fixes the order of the resulting report.
var taxonomies = []struct {
	name   string
	skills []string
}{
	{"tech", []string{
		"Python", "JavaScript", "Java", "TypeScript", "C++", "C#", "PHP", "Ruby",
		"React", "Angular", "Vue.js", "HTML", "CSS", "Bootstrap", "Tailwind",
		"Node.js", "Express.js", "Django", "Flask", "Spring", "Laravel",
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite",
		"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Git", "GitHub",
		"REST API", "GraphQL", "Postman", "Jenkins", "CI/CD",
	}},
	{"business", []string{
		"Sales", "Marketing", "Business Development", "Account Management",
		"Customer Service", "CRM", "Lead Generation", "Negotiation",
		"Market Research", "Business Analysis", "Project Management",
		"Excel", "PowerBI", "Tableau", "Analytics", "Reporting",
		"E-commerce", "Digital Marketing", "SEO", "SEM", "Social Media",
		"Content Marketing", "Email Marketing", "Brand Management",
	}},
	{"finance", []string{
		"Accounting", "Financial Analysis", "Budgeting", "Forecasting",
		"Tax Preparation", "Audit", "Compliance", "Risk Management",
		"Investment Analysis", "Portfolio Management", "Banking",
		"QuickBooks", "SAP", "Oracle", "Financial Modeling",
	}},
	{"hr", []string{
		"Human Resources", "Recruitment", "Talent Acquisition", "Hiring",
		"Employee Relations", "Performance Management", "Training",
		"Onboarding", "Payroll", "Benefits Administration", "HR Policies",
		"Leadership", "Team Management", "Coaching", "Mentoring",
	}},
	{"design", []string{
		"Graphic Design", "UI/UX Design", "Web Design", "Photoshop",
		"Illustrator", "Figma", "Sketch", "InDesign", "After Effects",
		"Branding", "Typography", "Color Theory", "Wireframing", "Prototyping",
	}},
}

// Analyzer computes skill-gap reports. It is stateless and safe for
// concurrent use.
type Analyzer struct{}

// NewAnalyzer creates a gap analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze detects skills the job description requires, partitions them
// into present and missing relative to the resume's skill set, and
// computes the match percentage. Skill detection is case-insensitive
// substring matching, so short terms can match inside longer ones; that
// keeps the detector permissive rather than missing requirements.
func (a *Analyzer) Analyze(resumeSkills []string, jobText string) Report {
	required := detectRequiredSkills(jobText)

	resumeSet := make(map[string]struct{}, len(resumeSkills))
	for _, skill := range resumeSkills {
		resumeSet[strings.ToLower(skill)] = struct{}{}
	}

	var matching, missing []string
	for _, skill := range required {
		if _, ok := resumeSet[strings.ToLower(skill)]; ok {
			matching = append(matching, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	if len(missing) > maxMissingSkills {
		missing = missing[:maxMissingSkills]
	}

	pct := 0.0
	if len(required) > 0 {
		pct = float64(len(matching)) / float64(len(required)) * 100
	}

	return Report{
		RequiredSkills:  required,
		MatchingSkills:  matching,
		MissingSkills:   missing,
		MatchPercentage: pct,
	}
}

// detectRequiredSkills scans every taxonomy against the job text and
// returns the first-seen deduplicated hits, capped at maxRequiredSkills.
// When no taxonomy term matches it falls back to broad requirement labels.
func detectRequiredSkills(jobText string) []string {
	lower := strings.ToLower(jobText)

	var required []string
	seen := make(map[string]struct{})
	for _, taxonomy := range taxonomies {
		for _, skill := range taxonomy.skills {
			if !strings.Contains(lower, strings.ToLower(skill)) {
				continue
			}
			if _, dup := seen[skill]; dup {
				continue
			}
			seen[skill] = struct{}{}
			required = append(required, skill)
		}
	}

	if len(required) > maxRequiredSkills {
		required = required[:maxRequiredSkills]
	}
	if len(required) > 0 {
		return required
	}

	fallback := generalRequirements(lower)
	if len(fallback) > maxFallbackSkills {
		fallback = fallback[:maxFallbackSkills]
	}
	return fallback
}

// generalRequirements labels broad expectations when the job text names
// no concrete skill. The input must already be lowercased.
func generalRequirements(jobLower string) []string {
	var reqs []string

	if strings.Contains(jobLower, "experience") {
		if containsAny(jobLower, "sales", "selling", "revenue") {
			reqs = append(reqs, "Sales Experience")
		}
		if containsAny(jobLower, "marketing", "promotion", "campaign") {
			reqs = append(reqs, "Marketing Experience")
		}
		if containsAny(jobLower, "management", "leadership", "team") {
			reqs = append(reqs, "Management Experience")
		}
		if containsAny(jobLower, "customer", "client", "service") {
			reqs = append(reqs, "Customer Service")
		}
	}
	if containsAny(jobLower, "degree", "bachelor", "master", "education") {
		reqs = append(reqs, "Relevant Degree")
	}
	if containsAny(jobLower, "communication", "presentation", "writing") {
		reqs = append(reqs, "Communication Skills")
	}
	if containsAny(jobLower, "analysis", "analytical", "data", "report") {
		reqs = append(reqs, "Analytical Skills")
	}
	if containsAny(jobLower, "software", "computer", "microsoft", "excel") {
		reqs = append(reqs, "Computer Skills")
	}

	if len(reqs) == 0 {
		return []string{"Domain Knowledge", "Professional Experience"}
	}
	return reqs
}

func containsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
