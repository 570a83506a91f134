package usecase

import (
	"context"
	"strings"

	"career-compass/internal/catalog"
	"career-compass/internal/domain/ranking"
	"career-compass/internal/domain/risk"
	"career-compass/internal/engine"
)

const (
	defaultOccupationLimit = 20
	maxOccupationLimit     = 100
)

// OccupationListParams filters the catalogue listing. MaxRisk keeps only
// occupations at or below the named risk category.
type OccupationListParams struct {
	Family  string
	JobZone int
	MaxRisk string
	Limit   int
	Offset  int
}

// OccupationRow is one catalogue listing entry.
type OccupationRow struct {
	Code             string  `json:"onet_code"`
	Title            string  `json:"title"`
	CareerFamily     string  `json:"career_family"`
	JobZone          int     `json:"job_zone"`
	MinEducation     string  `json:"min_education"`
	DemandLevel      string  `json:"demand_level"`
	AIRiskLabel      string  `json:"ai_risk_label"`
	FutureProofScore float64 `json:"future_proof_score"`
	MedianWage       float64 `json:"median_wage"`
}

// OccupationPage is one page of catalogue results.
type OccupationPage struct {
	Items  []OccupationRow `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// OccupationDetail is the full record plus its risk profile and the nonzero
// slice of its skill requirements.
type OccupationDetail struct {
	OccupationRow
	GrowthCategory      string             `json:"growth_category"`
	EmploymentChangePct float64            `json:"employment_change_pct"`
	RiskProfile         engine.RiskProfile `json:"risk_profile"`
	SkillProfile        map[string]float64 `json:"skill_profile"`
}

type OccupationUsecase interface {
	List(ctx context.Context, params OccupationListParams) (OccupationPage, error)
	Get(ctx context.Context, title string) (OccupationDetail, error)
}

type Occupation struct {
	engines *engine.Holder
}

func NewOccupationUsecase(engines *engine.Holder) *Occupation {
	return &Occupation{engines: engines}
}

func (u *Occupation) List(ctx context.Context, params OccupationListParams) (OccupationPage, error) {
	e := u.engines.Get()
	if !e.Ready() {
		return OccupationPage{}, ErrEngineNotReady
	}

	limit := clampInt(params.Limit, defaultOccupationLimit, 1, maxOccupationLimit)
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	family := strings.ToLower(strings.TrimSpace(params.Family))
	maxRisk := -1
	if v := strings.TrimSpace(params.MaxRisk); v != "" {
		maxRisk = risk.Order(v)
	}

	matched := make([]OccupationRow, 0)
	for _, o := range e.Occupations().All() {
		if family != "" && strings.ToLower(o.Family) != family {
			continue
		}
		if params.JobZone > 0 && o.JobZone != params.JobZone {
			continue
		}
		label := e.Risk().Categorize(o.AutomationRisk)
		if maxRisk >= 0 && risk.Order(label) > maxRisk {
			continue
		}
		matched = append(matched, occupationRow(o, label))
	}

	total := len(matched)
	if offset >= total {
		return OccupationPage{Items: []OccupationRow{}, Total: total, Limit: limit, Offset: offset}, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return OccupationPage{
		Items:  matched[offset:end],
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (u *Occupation) Get(ctx context.Context, title string) (OccupationDetail, error) {
	e := u.engines.Get()
	if !e.Ready() {
		return OccupationDetail{}, ErrEngineNotReady
	}
	if strings.TrimSpace(title) == "" {
		return OccupationDetail{}, ErrInvalidInput
	}

	occ, ok := e.FindOccupation(title)
	if !ok {
		return OccupationDetail{}, ErrOccupationNotFound
	}

	skills := make(map[string]float64)
	for i, d := range e.Dimensions() {
		if i < len(occ.Requirements) && occ.Requirements[i] > 0 {
			skills[d.Name] = occ.Requirements[i]
		}
	}

	label := e.Risk().Categorize(occ.AutomationRisk)
	return OccupationDetail{
		OccupationRow:       occupationRow(occ, label),
		GrowthCategory:      occ.GrowthCategory,
		EmploymentChangePct: occ.EmploymentChangePct,
		RiskProfile:         e.RiskProfileFor(occ),
		SkillProfile:        skills,
	}, nil
}

func occupationRow(o catalog.Occupation, riskLabel string) OccupationRow {
	return OccupationRow{
		Code:             o.Code,
		Title:            o.Title,
		CareerFamily:     o.Family,
		JobZone:          o.JobZone,
		MinEducation:     o.MinEducation,
		DemandLevel:      ranking.DeriveDemand(o),
		AIRiskLabel:      riskLabel,
		FutureProofScore: o.FutureProofScore,
		MedianWage:       o.MedianWage,
	}
}
