package ranking

import (
	"log"
	"math"
	"sort"
	"strings"

	"career-compass/internal/artifact"
	"career-compass/internal/catalog"
	"career-compass/internal/domain/risk"
)

const (
	// goalBoostBonus is the flat per-keyword family bonus. Deliberately
	// unnormalized against the similarity scale; preserved as tuned.
	goalBoostBonus = 0.05

	// blend weights when the learned re-ranker is available.
	similarityWeight = 0.6
	rerankerWeight   = 0.4

	// match percentages are min-max normalized into [matchFloor, matchCeil].
	matchFloor = 55.0
	matchCeil  = 98.0
	matchFlat  = 70.0
)

var allZones = []int{1, 2, 3, 4, 5}

// Recommendation is one ranked career result.
type Recommendation struct {
	Rank             int     `json:"rank"`
	Career           string  `json:"career"`
	CareerFamily     string  `json:"career_family"`
	MatchPct         float64 `json:"match_score"`
	DemandLevel      string  `json:"demand_level"`
	FutureProofScore float64 `json:"future_proof_score"`
	MedianWage       float64 `json:"median_wage"`
	MinEducation     string  `json:"min_education"`
	AIRisk           string  `json:"ai_risk"`
	Code             string  `json:"onet_code"`
}

type Params struct {
	Occupations *catalog.OccupationSet
	Zones       map[string][]int
	GoalBoosts  map[string][]string
	Risk        *risk.Categorizer
	Reranker    *artifact.Ranker
	Logger      *log.Logger
}

// Ranker scores every occupation against a user skill vector.
type Ranker struct {
	occs       *catalog.OccupationSet
	zones      map[string][]int
	goalBoosts map[string][]string
	risk       *risk.Categorizer
	reranker   *artifact.Ranker
	logger     *log.Logger
}

func New(p Params) *Ranker {
	c := p.Risk
	if c == nil {
		c = risk.Default()
	}
	return &Ranker{
		occs:       p.Occupations,
		zones:      p.Zones,
		goalBoosts: p.GoalBoosts,
		risk:       c,
		reranker:   p.Reranker,
		logger:     p.Logger,
	}
}

// Rank returns the top-N occupations for the user vector. Candidates are
// restricted to the user type's allowed job zones, failing open to the full
// set when the restriction would leave no candidates.
func (r *Ranker) Rank(scores map[string]float64, userType, goalText string, topN int) []Recommendation {
	if r == nil || r.occs == nil || topN < 1 {
		return nil
	}

	candidates := r.filterByZone(userType)
	dims := r.occs.Dimensions()

	userVec := make([]float64, len(dims))
	sum := 0.0
	for i, d := range dims {
		userVec[i] = catalog.SafeFloat(scores[d.Key], 0)
		sum += userVec[i]
	}

	if len(dims) == 0 || sum == 0 {
		return r.rankByFutureProof(candidates, topN)
	}

	finals := make([]float64, len(candidates))
	for i, o := range candidates {
		finals[i] = cosine(userVec, o.Requirements)
	}

	goal := strings.ToLower(strings.TrimSpace(goalText))
	if goal != "" && len(r.goalBoosts) > 0 {
		for i, o := range candidates {
			finals[i] += r.goalBoost(goal, o.Family)
		}
	}

	r.applyRerankerBlend(candidates, finals)

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return finals[order[a]] > finals[order[b]] })
	if len(order) > topN {
		order = order[:topN]
	}

	top := make([]catalog.Occupation, 0, len(order))
	topScores := make([]float64, 0, len(order))
	for _, idx := range order {
		top = append(top, candidates[idx])
		topScores = append(topScores, finals[idx])
	}
	return r.format(top, topScores)
}

func (r *Ranker) filterByZone(userType string) []catalog.Occupation {
	allowed := r.zones[strings.ToLower(strings.TrimSpace(userType))]
	if len(allowed) == 0 {
		allowed = allZones
	}
	all := r.occs.All()
	out := make([]catalog.Occupation, 0, len(all))
	for _, o := range all {
		for _, z := range allowed {
			if o.JobZone == z {
				out = append(out, o)
				break
			}
		}
	}
	if len(out) == 0 {
		return all
	}
	return out
}

func (r *Ranker) goalBoost(goal, family string) float64 {
	bonus := 0.0
	for keyword, families := range r.goalBoosts {
		if !strings.Contains(goal, keyword) {
			continue
		}
		for _, f := range families {
			if f == family {
				bonus += goalBoostBonus
				break
			}
		}
	}
	return bonus
}

// applyRerankerBlend mixes in the learned probability when the artifact is
// available. Any per-occupation failure keeps every score un-blended; a
// degraded ranking is never a request failure.
func (r *Ranker) applyRerankerBlend(candidates []catalog.Occupation, finals []float64) {
	if !r.reranker.Available() {
		return
	}

	probs := make([]float64, len(candidates))
	for i, o := range candidates {
		p, err := r.reranker.Score(o.Requirements)
		if err != nil {
			if r.logger != nil {
				r.logger.Printf("Ranker | reranker blend skipped: %v", err)
			}
			return
		}
		probs[i] = p
	}
	for i := range finals {
		finals[i] = similarityWeight*finals[i] + rerankerWeight*probs[i]
	}
}

func (r *Ranker) rankByFutureProof(candidates []catalog.Occupation, topN int) []Recommendation {
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return candidates[order[a]].FutureProofScore > candidates[order[b]].FutureProofScore
	})
	if len(order) > topN {
		order = order[:topN]
	}
	top := make([]catalog.Occupation, 0, len(order))
	for _, idx := range order {
		top = append(top, candidates[idx])
	}
	return r.format(top, nil)
}

// format produces the outward rows. Scores are min-max normalized across
// the selected group into [55, 98]; a degenerate group maps to a flat 70.
// A nil score slice (future-proof fallback) yields the midpoint rows the
// retrieval-only path has always produced.
func (r *Ranker) format(top []catalog.Occupation, scores []float64) []Recommendation {
	var sMin, sRange float64
	degenerate := false
	switch {
	case len(scores) == 0:
		sMin, sRange = 0.0, 1.0
	default:
		sMin, sRange = math.Inf(1), 0.0
		sMax := math.Inf(-1)
		for _, s := range scores {
			v := catalog.SafeFloat(s, 0)
			sMin = math.Min(sMin, v)
			sMax = math.Max(sMax, v)
		}
		if sMax > sMin {
			sRange = sMax - sMin
		} else {
			degenerate = true
		}
	}

	out := make([]Recommendation, 0, len(top))
	for i, o := range top {
		raw := 0.5
		if i < len(scores) {
			raw = catalog.SafeFloat(scores[i], 0.5)
		}

		var matchPct float64
		switch {
		case degenerate:
			matchPct = matchFlat
		default:
			normalized := (raw - sMin) / sRange
			matchPct = round1(matchFloor + normalized*(matchCeil-matchFloor))
		}

		out = append(out, Recommendation{
			Rank:             i + 1,
			Career:           o.Title,
			CareerFamily:     o.Family,
			MatchPct:         matchPct,
			DemandLevel:      DeriveDemand(o),
			FutureProofScore: o.FutureProofScore,
			MedianWage:       o.MedianWage,
			MinEducation:     o.MinEducation,
			AIRisk:           r.risk.Categorize(o.AutomationRisk),
			Code:             o.Code,
		})
	}
	return out
}

// DeriveDemand resolves the demand label through an ordered list of column
// aliases and substring heuristics. Intentionally approximate.
func DeriveDemand(o catalog.Occupation) string {
	for _, raw := range []string{o.DemandLevel, o.GrowthCategory} {
		v := strings.TrimSpace(raw)
		if v == "" {
			continue
		}
		switch v {
		case "High", "Medium", "Low":
			return v
		}
		vl := strings.ToLower(v)
		switch {
		case strings.Contains(vl, "high"), strings.Contains(vl, "fast"):
			return "High"
		case strings.Contains(vl, "low"), strings.Contains(vl, "slow"),
			strings.Contains(vl, "decline"), strings.Contains(vl, "little"):
			return "Low"
		case strings.Contains(vl, "medium"), strings.Contains(vl, "average"),
			strings.Contains(vl, "moderate"):
			return "Medium"
		}
	}
	return "Medium"
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
