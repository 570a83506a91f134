package gap

import (
	"math"
	"sort"

	"career-compass/internal/catalog"
)

// epsilon floors the total weighted requirement so occupations with an
// all-zero requirement vector do not divide by zero.
const epsilon = 1e-6

// Entry is the per-dimension gap record for one (user, occupation) pair.
type Entry struct {
	Key         string  `json:"col"`
	Dimension   string  `json:"dimension"`
	Required    float64 `json:"required"`
	Current     float64 `json:"current"`
	Gap         float64 `json:"gap"`
	Importance  float64 `json:"importance"`
	WeightedGap float64 `json:"weighted_gap"`
}

// Report summarizes how far a user profile is from an occupation's
// requirements. Ephemeral, computed per request.
type Report struct {
	Occupation   string  `json:"occupation"`
	AlignmentPct float64 `json:"alignment_pct"`
	TopGaps      []Entry `json:"top_gaps"`
	TopStrengths []Entry `json:"top_strengths"`
	TotalDims    int     `json:"total_dims"`
}

// Analyze computes importance-weighted gaps per skill dimension. Importance
// of a dimension is the occupation's requirement on it divided by the sum of
// all its requirements, so importances sum to 1 for any occupation that has
// recorded requirements.
func Analyze(scores map[string]float64, occ catalog.Occupation, dims []catalog.Dimension, topNGaps, topNStrong int) Report {
	required := make([]float64, len(dims))
	total := 0.0
	for i := range dims {
		if i < len(occ.Requirements) {
			required[i] = catalog.SafeFloat(occ.Requirements[i], 0)
		}
		total += required[i]
	}
	if total <= 0 {
		total = 1.0
	}

	entries := make([]Entry, 0, len(dims))
	maxGap := 0.0
	actualGap := 0.0
	for i, d := range dims {
		imp := required[i] / total
		current := catalog.SafeFloat(scores[d.Key], 0)
		g := math.Max(0, required[i]-current)
		weighted := g * imp

		maxGap += required[i] * imp
		actualGap += weighted

		entries = append(entries, Entry{
			Key:         d.Key,
			Dimension:   d.Name,
			Required:    round(required[i], 2),
			Current:     round(current, 2),
			Gap:         round(g, 2),
			Importance:  round(imp, 4),
			WeightedGap: round(weighted, 4),
		})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].WeightedGap > entries[b].WeightedGap
	})

	topGaps := make([]Entry, 0, topNGaps)
	for _, e := range entries {
		if len(topGaps) >= topNGaps {
			break
		}
		if e.Gap > 0 {
			topGaps = append(topGaps, e)
		}
	}

	strengths := make([]Entry, 0)
	for _, e := range entries {
		if e.Current >= e.Required && e.Required > 0 {
			strengths = append(strengths, e)
		}
	}
	sort.SliceStable(strengths, func(a, b int) bool {
		return strengths[a].Current > strengths[b].Current
	})
	if len(strengths) > topNStrong {
		strengths = strengths[:topNStrong]
	}

	alignment := (1 - actualGap/math.Max(maxGap, epsilon)) * 100
	alignment = catalog.SafeFloat(alignment, 0)
	alignment = math.Max(0, math.Min(100, round(alignment, 1)))

	return Report{
		Occupation:   occ.Title,
		AlignmentPct: alignment,
		TopGaps:      topGaps,
		TopStrengths: strengths,
		TotalDims:    len(dims),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
