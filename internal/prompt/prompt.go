// Package prompt turns a user profile into the instruction sent to the
// chat-completion endpoint. Every builder is pure and deterministic.
package prompt

import (
	"fmt"
	"strings"

	"resumebuilder/internal/model"
)

const (
	// DefaultResumeObjective replaces a blank objective in resume prompts.
	DefaultResumeObjective = "Seeking a challenging position to utilize my skills and contribute to organizational growth."
	// DefaultCoverLetterObjective replaces a blank objective in cover letter prompts.
	DefaultCoverLetterObjective = "Seeking opportunities to grow professionally"
	// DefaultProjects replaces blank projects.
	DefaultProjects = "N/A"
)

// Build returns the prompt for kind. Unknown kinds fall back to the resume template.
func Build(kind model.DocumentKind, p model.UserProfile) (prompt string) {
	switch kind {
	case model.KindCoverLetter:
		prompt = CoverLetter(p)
	case model.KindPortfolioSummary:
		prompt = Portfolio(p)
	default:
		prompt = Resume(p)
	}
	return prompt
}

// Resume creates an ATS-oriented resume prompt.
func Resume(p model.UserProfile) (prompt string) {
	prompt = fmt.Sprintf(`Create a professional resume for the following candidate:

Name: %s
Email: %s
Phone: %s

Career Objective:
%s

Education:
%s

Skills:
%s

Work Experience:
%s

Projects:
%s

Please format this as a professional resume with clear sections, bullet points, and proper structure. Make it ATS-friendly and impactful.`,
		p.Name,
		p.Email,
		p.Phone,
		orDefault(p.Objective, DefaultResumeObjective),
		p.Education,
		p.Skills,
		p.Experience,
		orDefault(p.Projects, DefaultProjects),
	)
	return prompt
}

// CoverLetter creates a 3-4 paragraph cover letter prompt.
func CoverLetter(p model.UserProfile) (prompt string) {
	prompt = fmt.Sprintf(`Write a professional cover letter for the following candidate:

Name: %s
Email: %s
Phone: %s

Education: %s
Skills: %s
Experience: %s
Projects: %s
Career Objective: %s

Create a compelling cover letter that highlights their strengths, expresses enthusiasm, and explains why they would be a great fit for potential employers. Keep it professional and concise (around 3-4 paragraphs).`,
		p.Name,
		p.Email,
		p.Phone,
		p.Education,
		p.Skills,
		p.Experience,
		orDefault(p.Projects, DefaultProjects),
		orDefault(p.Objective, DefaultCoverLetterObjective),
	)
	return prompt
}

// Portfolio creates a skills and projects forward summary prompt.
func Portfolio(p model.UserProfile) (prompt string) {
	prompt = fmt.Sprintf(`Create a brief portfolio summary for:

Name: %s
Email: %s
Phone: %s
Career Objective: %s
Skills: %s
Projects: %s
Experience: %s
Education: %s

Write a concise portfolio summary that showcases their technical skills, key projects, and professional accomplishments. This should serve as an overview of their capabilities and expertise. Format it professionally with clear sections.`,
		p.Name,
		p.Email,
		p.Phone,
		orDefault(p.Objective, DefaultResumeObjective),
		p.Skills,
		orDefault(p.Projects, DefaultProjects),
		p.Experience,
		p.Education,
	)
	return prompt
}

func orDefault(value, def string) (result string) {
	result = value
	if strings.TrimSpace(value) == "" {
		result = def
	}
	return result
}
