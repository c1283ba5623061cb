package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyProfile_Render(t *testing.T) {
	profile := &CompanyProfile{
		Company:    "Acme Corp",
		Overview:   "Acme builds developer tools.",
		Mission:    "Ship software faster.",
		Products:   []string{"Acme CI", "Acme Deploy"},
		RecentNews: []string{"Raised Series B"},
	}

	text := profile.Render()
	assert.Contains(t, text, "Company: Acme Corp")
	assert.Contains(t, text, "Acme builds developer tools")
	assert.Contains(t, text, "Acme CI; Acme Deploy")
	assert.Contains(t, text, "Raised Series B")
	assert.NotContains(t, text, "Culture:")
}

func TestCompanyProfile_Render_Nil(t *testing.T) {
	var profile *CompanyProfile
	assert.Equal(t, "", profile.Render())
}

func TestCompanyProfile_IsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		profile *CompanyProfile
		want    bool
	}{
		{"nil profile", nil, true},
		{"name only", &CompanyProfile{Company: "Acme"}, true},
		{"with overview", &CompanyProfile{Company: "Acme", Overview: "builds tools"}, false},
		{"with news", &CompanyProfile{RecentNews: []string{"launched X"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.IsEmpty())
		})
	}
}

func TestLetterArtifacts_Letter(t *testing.T) {
	artifacts := &LetterArtifacts{DraftLetter: "draft"}
	assert.Equal(t, "draft", artifacts.Letter())

	artifacts.EnhancedLetter = "enhanced"
	assert.Equal(t, "enhanced", artifacts.Letter())

	artifacts.FinalLetter = "final"
	assert.Equal(t, "final", artifacts.Letter())
}

func TestSkillAssessment_HasGaps(t *testing.T) {
	var nilAssessment *SkillAssessment
	assert.False(t, nilAssessment.HasGaps())

	assert.False(t, (&SkillAssessment{CandidateSkills: []string{"Go"}}).HasGaps())
	assert.True(t, (&SkillAssessment{MissingSkills: []string{"Kubernetes"}}).HasGaps())
}
