package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumebuilder/internal/model"
)

func testProfile() model.UserProfile {
	return model.UserProfile{
		Name:       "Jane Doe",
		Email:      "j@x.com",
		Phone:      "+1 555",
		Education:  "BSc CS",
		Skills:     "Go, SQL",
		Experience: "2yr backend dev",
	}
}

func TestBuild_Deterministic(t *testing.T) {
	p := testProfile()
	for _, kind := range model.Kinds {
		t.Run(kind.Slug(), func(t *testing.T) {
			assert.Equal(t, Build(kind, p), Build(kind, p))
		})
	}
}

func TestBuild_ContainsRequiredFields(t *testing.T) {
	p := testProfile()

	required := []string{p.Name, p.Email, p.Phone, p.Education, p.Skills, p.Experience}

	for _, kind := range model.Kinds {
		t.Run(kind.Slug(), func(t *testing.T) {
			prompt := Build(kind, p)
			for _, v := range required {
				assert.Contains(t, prompt, v, "%s prompt should contain %q", kind, v)
			}
		})
	}
}

func TestBuild_ContainsOptionalFields(t *testing.T) {
	p := testProfile()
	p.Objective = "Lead platform teams"
	p.Projects = "resume-builder"

	for _, kind := range model.Kinds {
		t.Run(kind.Slug(), func(t *testing.T) {
			prompt := Build(kind, p)
			assert.Contains(t, prompt, p.Objective)
			assert.Contains(t, prompt, p.Projects)
		})
	}
}

func TestResume(t *testing.T) {
	prompt := Resume(testProfile())

	assert.True(t, strings.HasPrefix(prompt, "Create a professional resume"))
	assert.Contains(t, prompt, "ATS-friendly")
	assert.Contains(t, prompt, DefaultResumeObjective)
	assert.Contains(t, prompt, "Projects:\n"+DefaultProjects)
}

func TestResume_UsesProvidedOptionalFields(t *testing.T) {
	p := testProfile()
	p.Objective = "Lead platform teams"
	p.Projects = "resume-builder"

	prompt := Resume(p)

	assert.Contains(t, prompt, "Lead platform teams")
	assert.Contains(t, prompt, "resume-builder")
	assert.NotContains(t, prompt, DefaultResumeObjective)
	assert.NotContains(t, prompt, DefaultProjects)
}

func TestCoverLetter(t *testing.T) {
	prompt := CoverLetter(testProfile())

	assert.Contains(t, prompt, "cover letter")
	assert.Contains(t, prompt, "3-4 paragraphs")
	assert.Contains(t, prompt, "Career Objective: "+DefaultCoverLetterObjective)
	assert.Contains(t, prompt, "Projects: "+DefaultProjects)
}

func TestPortfolio(t *testing.T) {
	p := testProfile()
	p.Projects = "   "

	prompt := Portfolio(p)

	assert.Contains(t, prompt, "portfolio summary")
	assert.Contains(t, prompt, "Projects: "+DefaultProjects)
	assert.Contains(t, prompt, "Email: "+p.Email)
	assert.Contains(t, prompt, "Phone: "+p.Phone)
}

func TestBuild_SelectsTemplate(t *testing.T) {
	p := testProfile()

	assert.Equal(t, Resume(p), Build(model.KindResume, p))
	assert.Equal(t, CoverLetter(p), Build(model.KindCoverLetter, p))
	assert.Equal(t, Portfolio(p), Build(model.KindPortfolioSummary, p))
	assert.Equal(t, Resume(p), Build(model.DocumentKind("unknown"), p))
}
