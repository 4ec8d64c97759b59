package extraction

import "github.com/jonathan/resume-analyzer/internal/textutil"

// ResumeProfile is the structured result of processing one uploaded resume.
// It is constructed once from extractor output and never mutated afterwards.
type ResumeProfile struct {
	RawText string   `json:"raw_text"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Skills  []string `json:"skills"`
}

// BuildProfile sanitizes raw extracted text and runs the contact and skill
// extractors over it.
func BuildProfile(rawText string) ResumeProfile {
	text := textutil.Sanitize(rawText)
	contact := ExtractContact(text)

	return ResumeProfile{
		RawText: text,
		Name:    contact.Name,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Skills:  ExtractSkills(text),
	}
}
