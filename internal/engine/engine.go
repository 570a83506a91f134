// Package engine composes the recommendation pipeline: skill parsing,
// career ranking, gap analysis, risk profiling, course matching and
// learning-path assembly over immutable startup-loaded catalogues.
package engine

import (
	"log"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"career-compass/internal/catalog"
	"career-compass/internal/domain/gap"
	"career-compass/internal/domain/path"
	"career-compass/internal/domain/profile"
	"career-compass/internal/domain/ranking"
	"career-compass/internal/domain/risk"
	"career-compass/internal/search"
)

// UserInput is the raw self-reported profile for one request.
type UserInput struct {
	Skills             string
	SoftSkills         string
	UserType           string
	Pathway            string
	SubjectCombination string
	CareerGoals        string
}

// RiskProfile is the presentation-ready risk block for one occupation.
type RiskProfile struct {
	AIRiskScore      float64  `json:"ai_risk_score"`
	AIRiskLabel      string   `json:"ai_risk_label"`
	AIRiskColor      string   `json:"ai_risk_color"`
	FutureProofScore float64  `json:"future_proof_score"`
	RiskExplanation  string   `json:"risk_explanation"`
	MitigationAdvice []string `json:"mitigation_advice"`
}

// CareerInfo is the summary block inside a career detail.
type CareerInfo struct {
	Title        string  `json:"title"`
	CareerFamily string  `json:"career_family"`
	MatchScore   float64 `json:"match_score"`
	DemandLevel  string  `json:"demand_level"`
	MedianWage   float64 `json:"median_wage"`
	MinEducation string  `json:"min_education"`
	Code         string  `json:"onet_code"`
}

// CareerDetail is one fully expanded recommendation.
type CareerDetail struct {
	Rank         int         `json:"rank"`
	CareerInfo   CareerInfo  `json:"career_info"`
	RiskProfile  RiskProfile `json:"risk_profile"`
	GapReport    gap.Report  `json:"gap_report"`
	LearningPath path.Path   `json:"learning_path"`
}

// PipelineResult is the full pipeline output for one request.
type PipelineResult struct {
	CareerDetails   []CareerDetail           `json:"career_details"`
	Recommendations []ranking.Recommendation `json:"recommendations"`
	PipelineMS      float64                  `json:"pipeline_ms"`
	UserType        string                   `json:"user_type"`
}

// Engine is the immutable pipeline context built once during startup.
// Request handling only reads it, so concurrent use needs no locking.
type Engine struct {
	dims        []catalog.Dimension
	occupations *catalog.OccupationSet
	courses     *catalog.CourseSet
	tables      Tables

	normalizer *profile.Normalizer
	vectorizer *profile.Vectorizer
	ranker     *ranking.Ranker
	risk       *risk.Categorizer
	index      *search.Index

	logger *log.Logger
	loaded atomic.Bool
}

func (e *Engine) Ready() bool {
	return e != nil && e.loaded.Load()
}

func (e *Engine) SemanticAvailable() bool {
	return e != nil && e.vectorizer.SemanticAvailable()
}

func (e *Engine) Dimensions() []catalog.Dimension {
	if e == nil {
		return nil
	}
	return e.dims
}

func (e *Engine) Occupations() *catalog.OccupationSet {
	if e == nil {
		return nil
	}
	return e.occupations
}

func (e *Engine) Courses() *catalog.CourseSet {
	if e == nil {
		return nil
	}
	return e.courses
}

func (e *Engine) Risk() *risk.Categorizer {
	if e == nil {
		return nil
	}
	return e.risk
}

// EduLevels returns the ordered course levels applicable to a user type.
func (e *Engine) EduLevels(userType string) []string {
	levels := e.tables.EduCourseLevels[strings.ToLower(strings.TrimSpace(userType))]
	if len(levels) == 0 {
		levels = []string{catalog.LevelFoundation, catalog.LevelIntermediate}
	}
	return levels
}

// ParseUserSkills turns raw input into the per-dimension score map in [0,7].
// Explicit and soft skills are normalized; education-track skills implied by
// the user's pathway or subject combination are appended before vectorizing.
func (e *Engine) ParseUserSkills(in UserInput) map[string]float64 {
	phrases := e.normalizer.SplitList(in.Skills)
	phrases = append(phrases, e.normalizer.SplitList(in.SoftSkills)...)
	phrases = append(phrases, e.normalizer.ExpandTracks(in.UserType, in.Pathway, in.SubjectCombination)...)
	return e.vectorizer.Vectorize(phrases)
}

// Recommend runs the ranking stage only.
func (e *Engine) Recommend(in UserInput, n int) []ranking.Recommendation {
	scores := e.ParseUserSkills(in)
	return e.ranker.Rank(scores, in.UserType, in.CareerGoals, n)
}

// AnalyzeGap computes the weighted gap report for one occupation.
func (e *Engine) AnalyzeGap(scores map[string]float64, occ catalog.Occupation, topNGaps, topNStrong int) gap.Report {
	return gap.Analyze(scores, occ, e.dims, topNGaps, topNStrong)
}

// SearchCourses runs the course matcher directly.
func (e *Engine) SearchCourses(query string, topK int, levelFilter string, minQuality float64) []search.CourseMatch {
	return e.index.Search(query, topK, levelFilter, minQuality)
}

// BuildLearningPath assembles the staged course plan for a gap report.
func (e *Engine) BuildLearningPath(report gap.Report, userType string, coursesPerGap int) path.Path {
	return path.Build(report, userType, coursesPerGap, e.EduLevels(userType), e.index)
}

// FindOccupation resolves a title exactly, then by first-word substring.
func (e *Engine) FindOccupation(title string) (catalog.Occupation, bool) {
	return e.occupations.FindByTitle(title)
}

// RiskProfileFor builds the static risk block for one occupation.
func (e *Engine) RiskProfileFor(occ catalog.Occupation) RiskProfile {
	score := catalog.SafeFloat(occ.AutomationRisk, 0.45)
	label := e.risk.Categorize(score)
	return RiskProfile{
		AIRiskScore:      math.Round(score*1000) / 10,
		AIRiskLabel:      label,
		AIRiskColor:      risk.Color(label),
		FutureProofScore: occ.FutureProofScore,
		RiskExplanation:  risk.Explanation(label),
		MitigationAdvice: risk.Mitigation(label),
	}
}

// RunFullPipeline composes ranking with, per returned occupation, a gap
// report, a risk profile and a learning path.
func (e *Engine) RunFullPipeline(in UserInput, n, coursesPerGap int) PipelineResult {
	t0 := time.Now()

	recommendations := e.Recommend(in, n)
	scores := e.ParseUserSkills(in)

	details := make([]CareerDetail, 0, len(recommendations))
	for _, rec := range recommendations {
		occ, ok := e.FindOccupation(rec.Career)
		if !ok {
			continue
		}

		report := e.AnalyzeGap(scores, occ, defaultTopGaps, defaultTopStrengths)
		details = append(details, CareerDetail{
			Rank: rec.Rank,
			CareerInfo: CareerInfo{
				Title:        rec.Career,
				CareerFamily: rec.CareerFamily,
				MatchScore:   rec.MatchPct,
				DemandLevel:  rec.DemandLevel,
				MedianWage:   rec.MedianWage,
				MinEducation: rec.MinEducation,
				Code:         rec.Code,
			},
			RiskProfile:  e.RiskProfileFor(occ),
			GapReport:    report,
			LearningPath: e.BuildLearningPath(report, in.UserType, coursesPerGap),
		})
	}

	return PipelineResult{
		CareerDetails:   details,
		Recommendations: recommendations,
		PipelineMS:      math.Round(float64(time.Since(t0).Microseconds())/100) / 10,
		UserType:        strings.ToLower(strings.TrimSpace(in.UserType)),
	}
}

const (
	defaultTopGaps      = 8
	defaultTopStrengths = 5
)
