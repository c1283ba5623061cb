package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ischemas "github.com/jonathan/coverletter-generator/internal/schemas"
)

func TestCompanyProfileSchema(t *testing.T) {
	valid := `{
		"company": "Acme Corp",
		"overview": "Acme builds developer tools.",
		"mission": "Ship faster.",
		"culture": "Remote-first.",
		"recent_news": ["Raised Series B"],
		"products": ["Acme CLI"]
	}`
	require.NoError(t, ischemas.ValidateJSONString(CompanyProfile(), valid))

	assert.Error(t, ischemas.ValidateJSONString(CompanyProfile(), `{"company": "Acme"}`))
	assert.Error(t, ischemas.ValidateJSONString(CompanyProfile(), `{"company": "Acme", "overview": "x", "recent_news": "not an array"}`))
}

func TestSkillAssessmentSchema(t *testing.T) {
	valid := `{
		"requirements": ["Go", "Kubernetes"],
		"missing_skills": ["Kubernetes"],
		"transferable": ["Docker experience"]
	}`
	require.NoError(t, ischemas.ValidateJSONString(SkillAssessment(), valid))

	assert.Error(t, ischemas.ValidateJSONString(SkillAssessment(), `{"requirements": ["Go"]}`))
}

func TestCandidateSkillsSchema(t *testing.T) {
	require.NoError(t, ischemas.ValidateJSONString(CandidateSkills(), `{"candidate_skills": ["Go", "Python"]}`))
	assert.Error(t, ischemas.ValidateJSONString(CandidateSkills(), `{"skills": ["Go"]}`))
}
