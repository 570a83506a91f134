package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"career-compass/internal/engine"
)

const recommendCachePattern = "recommend:*"

type pipelineCacheKeyInput struct {
	Skills        string `json:"skills"`
	SoftSkills    string `json:"soft_skills"`
	UserType      string `json:"user_type"`
	Pathway       string `json:"pathway"`
	Subjects      string `json:"subjects"`
	CareerGoals   string `json:"career_goals"`
	TopN          int    `json:"top_n"`
	CoursesPerGap int    `json:"courses_per_gap"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// PipelineCacheKey hashes the normalized request so equivalent profiles hit
// the same cache entry regardless of spacing or case.
func PipelineCacheKey(in engine.UserInput, topN, coursesPerGap int) string {
	k := pipelineCacheKeyInput{
		Skills:        normalizeCacheValue(in.Skills),
		SoftSkills:    normalizeCacheValue(in.SoftSkills),
		UserType:      normalizeCacheValue(in.UserType),
		Pathway:       normalizeCacheValue(in.Pathway),
		Subjects:      normalizeCacheValue(in.SubjectCombination),
		CareerGoals:   normalizeCacheValue(in.CareerGoals),
		TopN:          topN,
		CoursesPerGap: coursesPerGap,
	}

	b, _ := json.Marshal(k)
	sum := sha256.Sum256(b)
	return "recommend:full:" + hex.EncodeToString(sum[:])
}
