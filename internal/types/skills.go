package types

// SkillAssessment represents the comparison between a candidate's skills
// and the requirements extracted from a job description
type SkillAssessment struct {
	CandidateSkills []string `json:"candidate_skills"`
	Requirements    []string `json:"requirements"`
	MissingSkills   []string `json:"missing_skills"`
	Transferable    []string `json:"transferable,omitempty"`
}

// HasGaps reports whether any job requirements are unmatched by candidate skills
func (a *SkillAssessment) HasGaps() bool {
	return a != nil && len(a.MissingSkills) > 0
}
