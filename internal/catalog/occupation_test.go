package catalog

import (
	"math"
	"testing"
)

func TestFindByTitle(t *testing.T) {
	dims := DefaultDimensions()
	set := NewOccupationSet(dims, DemoOccupations(dims))

	if _, ok := set.FindByTitle("software developers"); !ok {
		t.Error("exact case-insensitive lookup failed")
	}

	// fuzzy: first word of the query as a substring of any title
	occ, ok := set.FindByTitle("software engineer")
	if !ok || occ.Title != "Software Developers" {
		t.Errorf("fuzzy lookup = %q (%v), want Software Developers", occ.Title, ok)
	}

	if _, ok := set.FindByTitle("astronaut"); ok {
		t.Error("unknown title must not resolve")
	}
	if _, ok := set.FindByTitle("  "); ok {
		t.Error("blank title must not resolve")
	}
}

func TestNewOccupationSetSanitizes(t *testing.T) {
	dims := []Dimension{{Key: "skill_a"}, {Key: "skill_b"}}
	occs := []Occupation{{
		Title:            "Odd Row",
		AutomationRisk:   math.NaN(),
		FutureProofScore: math.Inf(1),
		Requirements:     []float64{math.NaN()},
	}}

	set := NewOccupationSet(dims, occs)
	o := set.All()[0]

	if o.AutomationRisk != 0.45 {
		t.Errorf("automation risk = %v, want default 0.45", o.AutomationRisk)
	}
	if o.FutureProofScore != 50 {
		t.Errorf("future proof = %v, want default 50", o.FutureProofScore)
	}
	if len(o.Requirements) != 2 || o.Requirements[0] != 0 || o.Requirements[1] != 0 {
		t.Errorf("requirements = %v, want zero-padded to dim count", o.Requirements)
	}
}

func TestSafeFloat(t *testing.T) {
	if SafeFloat(math.NaN(), 1.5) != 1.5 {
		t.Error("NaN must map to the default")
	}
	if SafeFloat(math.Inf(-1), 0) != 0 {
		t.Error("-Inf must map to the default")
	}
	if SafeFloat(2.5, 0) != 2.5 {
		t.Error("finite values pass through")
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"skill_critical_thinking", "Critical Thinking"},
		{"skill_programming", "Programming"},
	}
	for _, c := range cases {
		if got := DisplayName(c.in); got != c.want {
			t.Errorf("DisplayName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
