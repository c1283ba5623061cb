package types

// LetterArtifacts holds the successive text artifacts produced by a single
// pipeline run. All values are transient; nothing is persisted.
type LetterArtifacts struct {
	JobDescription  string           `json:"job_description"`
	PersonalHistory string           `json:"personal_history"`
	CompanyName     string           `json:"company_name,omitempty"`
	CompanyProfile  *CompanyProfile  `json:"company_profile,omitempty"`
	Skills          *SkillAssessment `json:"skills,omitempty"`
	DraftLetter     string           `json:"draft_letter"`
	EnhancedLetter  string           `json:"enhanced_letter"`
	FinalLetter     string           `json:"final_letter"`
}

// Letter returns the best available letter text, preferring later stages
func (a *LetterArtifacts) Letter() string {
	if a.FinalLetter != "" {
		return a.FinalLetter
	}
	if a.EnhancedLetter != "" {
		return a.EnhancedLetter
	}
	return a.DraftLetter
}
