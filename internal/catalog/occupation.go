package catalog

import (
	"math"
	"strings"
)

// Occupation is one row of the master catalogue. Requirements is aligned
// with the dimension order of the OccupationSet that owns the row.
type Occupation struct {
	Code                string
	Title               string
	Family              string
	JobZone             int
	MinEducation        string
	DemandLevel         string
	GrowthCategory      string
	AutomationRisk      float64
	FutureProofScore    float64
	MedianWage          float64
	EmploymentChangePct float64
	Requirements        []float64
}

// RequirementSum is the denominator for importance weighting.
func (o Occupation) RequirementSum() float64 {
	total := 0.0
	for _, v := range o.Requirements {
		total += SafeFloat(v, 0)
	}
	return total
}

// OccupationSet is the immutable master catalogue snapshot. Built once at
// load time; request handling only reads it.
type OccupationSet struct {
	dims []Dimension
	occs []Occupation
}

func NewOccupationSet(dims []Dimension, occs []Occupation) *OccupationSet {
	cleaned := make([]Occupation, 0, len(occs))
	for _, o := range occs {
		reqs := make([]float64, len(dims))
		for i := range dims {
			if i < len(o.Requirements) {
				reqs[i] = SafeFloat(o.Requirements[i], 0)
			}
		}
		o.Requirements = reqs
		o.AutomationRisk = SafeFloat(o.AutomationRisk, 0.45)
		o.FutureProofScore = SafeFloat(o.FutureProofScore, 50)
		o.MedianWage = SafeFloat(o.MedianWage, 0)
		o.EmploymentChangePct = SafeFloat(o.EmploymentChangePct, 0)
		cleaned = append(cleaned, o)
	}
	return &OccupationSet{dims: dims, occs: cleaned}
}

func (s *OccupationSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.occs)
}

func (s *OccupationSet) Dimensions() []Dimension {
	if s == nil {
		return nil
	}
	return s.dims
}

func (s *OccupationSet) All() []Occupation {
	if s == nil {
		return nil
	}
	return s.occs
}

// FindByTitle resolves an occupation by exact case-insensitive title, then
// falls back to a substring match on the first word of the query. The fuzzy
// step is intentionally approximate; first match in catalogue order wins.
func (s *OccupationSet) FindByTitle(title string) (Occupation, bool) {
	if s == nil {
		return Occupation{}, false
	}
	q := strings.ToLower(strings.TrimSpace(title))
	if q == "" {
		return Occupation{}, false
	}

	for _, o := range s.occs {
		if strings.ToLower(o.Title) == q {
			return o, true
		}
	}

	first := strings.Fields(q)[0]
	for _, o := range s.occs {
		if strings.Contains(strings.ToLower(o.Title), first) {
			return o, true
		}
	}
	return Occupation{}, false
}

// FamilyCounts returns occupation counts per career family.
func (s *OccupationSet) FamilyCounts() map[string]int {
	out := make(map[string]int)
	if s == nil {
		return out
	}
	for _, o := range s.occs {
		if o.Family == "" {
			continue
		}
		out[o.Family]++
	}
	return out
}

// SafeFloat replaces NaN and infinite values with a default so non-finite
// numbers never reach arithmetic or serialized output.
func SafeFloat(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}
