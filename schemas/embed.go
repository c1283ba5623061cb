// Package schemas embeds the JSON Schemas that LLM responses are validated
// against before being trusted by the pipeline.
package schemas

import (
	"embed"
)

//go:embed *.schema.json
var files embed.FS

// CompanyProfile returns the schema for summarized company research
func CompanyProfile() string { return mustRead("company_profile.schema.json") }

// SkillAssessment returns the schema for the skill gap analysis
func SkillAssessment() string { return mustRead("skill_assessment.schema.json") }

// CandidateSkills returns the schema for extracted candidate skills
func CandidateSkills() string { return mustRead("candidate_skills.schema.json") }

func mustRead(name string) string {
	data, err := files.ReadFile(name)
	if err != nil {
		// Schemas are embedded at build time; a missing one is a packaging bug
		panic("schema not embedded: " + name)
	}
	return string(data)
}
