package dto

import "career-compass/internal/engine"

// RecommendRequest is the profile payload for the recommendation endpoints.
// Skill lists are comma separated, matching the intake form exports.
type RecommendRequest struct {
	Skills             string `json:"skills"`
	SoftSkills         string `json:"soft_skills"`
	UserType           string `json:"user_type"`
	Pathway            string `json:"pathway"`
	SubjectCombination string `json:"subject_combination"`
	CareerGoals        string `json:"career_goals"`
	TopN               int    `json:"top_n"`
	CoursesPerGap      int    `json:"courses_per_gap"`
}

func (r RecommendRequest) ToInput() engine.UserInput {
	return engine.UserInput{
		Skills:             r.Skills,
		SoftSkills:         r.SoftSkills,
		UserType:           r.UserType,
		Pathway:            r.Pathway,
		SubjectCombination: r.SubjectCombination,
		CareerGoals:        r.CareerGoals,
	}
}
