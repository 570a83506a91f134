package usecase

import (
	"context"
	"sort"
	"strings"

	"career-compass/internal/catalog"
	"career-compass/internal/domain/risk"
	"career-compass/internal/engine"
)

const (
	defaultLeaderboardN = 10
	maxLeaderboardN     = 50
)

// RiskRow is one leaderboard entry.
type RiskRow struct {
	Title            string  `json:"title"`
	CareerFamily     string  `json:"career_family"`
	AIRiskScore      float64 `json:"ai_risk_score"`
	AIRiskLabel      string  `json:"ai_risk_label"`
	FutureProofScore float64 `json:"future_proof_score"`
}

// RiskScore is the full risk profile for one occupation.
type RiskScore struct {
	Title        string             `json:"title"`
	CareerFamily string             `json:"career_family"`
	RiskProfile  engine.RiskProfile `json:"risk_profile"`
}

// Leaderboard lists the safest and riskiest occupations side by side.
type Leaderboard struct {
	Safest   []RiskRow `json:"safest"`
	Riskiest []RiskRow `json:"riskiest"`
}

// LeaderboardParams filters the leaderboard. MaxRisk keeps only occupations
// at or below the named risk category.
type LeaderboardParams struct {
	N       int
	Family  string
	MaxRisk string
}

type RiskUsecase interface {
	Score(ctx context.Context, occupationTitle string) (RiskScore, error)
	Leaderboard(ctx context.Context, params LeaderboardParams) (Leaderboard, error)
	Distribution(ctx context.Context) (map[string]int, error)
}

type Risk struct {
	engines *engine.Holder
}

func NewRiskUsecase(engines *engine.Holder) *Risk {
	return &Risk{engines: engines}
}

func (u *Risk) Score(ctx context.Context, occupationTitle string) (RiskScore, error) {
	e := u.engines.Get()
	if !e.Ready() {
		return RiskScore{}, ErrEngineNotReady
	}
	if occupationTitle == "" {
		return RiskScore{}, ErrInvalidInput
	}

	occ, ok := e.FindOccupation(occupationTitle)
	if !ok {
		return RiskScore{}, ErrOccupationNotFound
	}

	return RiskScore{
		Title:        occ.Title,
		CareerFamily: occ.Family,
		RiskProfile:  e.RiskProfileFor(occ),
	}, nil
}

func (u *Risk) Leaderboard(ctx context.Context, params LeaderboardParams) (Leaderboard, error) {
	e := u.engines.Get()
	if !e.Ready() {
		return Leaderboard{}, ErrEngineNotReady
	}
	n := clampInt(params.N, defaultLeaderboardN, 1, maxLeaderboardN)

	family := strings.ToLower(strings.TrimSpace(params.Family))
	maxRisk := -1
	if v := strings.TrimSpace(params.MaxRisk); v != "" {
		maxRisk = risk.Order(v)
	}

	byRisk := make([]catalog.Occupation, 0, e.Occupations().Len())
	for _, o := range e.Occupations().All() {
		if family != "" && strings.ToLower(o.Family) != family {
			continue
		}
		if maxRisk >= 0 && risk.Order(e.Risk().Categorize(o.AutomationRisk)) > maxRisk {
			continue
		}
		byRisk = append(byRisk, o)
	}
	sort.SliceStable(byRisk, func(i, j int) bool {
		return byRisk[i].AutomationRisk < byRisk[j].AutomationRisk
	})

	safest := make([]RiskRow, 0, n)
	for _, o := range byRisk {
		if len(safest) == n {
			break
		}
		safest = append(safest, u.row(e, o))
	}

	riskiest := make([]RiskRow, 0, n)
	for i := len(byRisk) - 1; i >= 0 && len(riskiest) < n; i-- {
		riskiest = append(riskiest, u.row(e, byRisk[i]))
	}

	return Leaderboard{Safest: safest, Riskiest: riskiest}, nil
}

func (u *Risk) Distribution(ctx context.Context) (map[string]int, error) {
	e := u.engines.Get()
	if !e.Ready() {
		return nil, ErrEngineNotReady
	}

	out := make(map[string]int)
	for _, o := range e.Occupations().All() {
		out[e.Risk().Categorize(o.AutomationRisk)]++
	}
	return out, nil
}

func (u *Risk) row(e *engine.Engine, o catalog.Occupation) RiskRow {
	score := catalog.SafeFloat(o.AutomationRisk, 0.45)
	return RiskRow{
		Title:            o.Title,
		CareerFamily:     o.Family,
		AIRiskScore:      score,
		AIRiskLabel:      e.Risk().Categorize(score),
		FutureProofScore: o.FutureProofScore,
	}
}
