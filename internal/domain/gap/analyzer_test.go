package gap

import (
	"testing"

	"career-compass/internal/catalog"
)

var gapDims = []catalog.Dimension{
	{Key: "skill_programming", Name: "Programming"},
	{Key: "skill_mathematics", Name: "Mathematics"},
	{Key: "skill_writing", Name: "Writing"},
}

func TestAnalyzeExactMatch(t *testing.T) {
	occ := catalog.Occupation{Title: "Software Developers", Requirements: []float64{4, 2, 0}}
	scores := map[string]float64{"skill_programming": 4, "skill_mathematics": 2}

	r := Analyze(scores, occ, gapDims, 8, 5)

	if r.AlignmentPct != 100 {
		t.Errorf("alignment = %v, want 100", r.AlignmentPct)
	}
	if len(r.TopGaps) != 0 {
		t.Errorf("top gaps = %v, want none", r.TopGaps)
	}
	if len(r.TopStrengths) != 2 {
		t.Fatalf("strengths = %d, want 2", len(r.TopStrengths))
	}
	// strengths are sorted by the user's current level
	if r.TopStrengths[0].Key != "skill_programming" {
		t.Errorf("top strength = %q, want skill_programming", r.TopStrengths[0].Key)
	}
}

func TestAnalyzeNoSkills(t *testing.T) {
	occ := catalog.Occupation{Title: "Accountants and Auditors", Requirements: []float64{4, 2, 0}}

	r := Analyze(map[string]float64{}, occ, gapDims, 8, 5)

	if r.AlignmentPct != 0 {
		t.Errorf("alignment = %v, want 0", r.AlignmentPct)
	}
	if len(r.TopGaps) != 2 {
		t.Fatalf("top gaps = %d, want 2", len(r.TopGaps))
	}
	// the heavier requirement carries the larger weighted gap
	if r.TopGaps[0].Key != "skill_programming" {
		t.Errorf("largest gap = %q, want skill_programming", r.TopGaps[0].Key)
	}
	if r.TopGaps[0].Importance != round(4.0/6.0, 4) {
		t.Errorf("importance = %v, want %v", r.TopGaps[0].Importance, round(4.0/6.0, 4))
	}
}

func TestAnalyzeZeroRequirementOccupation(t *testing.T) {
	occ := catalog.Occupation{Title: "Unspecified", Requirements: []float64{0, 0, 0}}

	r := Analyze(map[string]float64{"skill_writing": 3}, occ, gapDims, 8, 5)

	if r.AlignmentPct != 100 {
		t.Errorf("alignment = %v, want 100 for an occupation with no requirements", r.AlignmentPct)
	}
	if len(r.TopGaps) != 0 {
		t.Errorf("top gaps = %v, want none", r.TopGaps)
	}
	if r.TotalDims != 3 {
		t.Errorf("total dims = %d, want 3", r.TotalDims)
	}
}

func TestAnalyzeTopNGapCap(t *testing.T) {
	occ := catalog.Occupation{Title: "Generalist", Requirements: []float64{5, 4, 3}}

	r := Analyze(map[string]float64{}, occ, gapDims, 2, 5)

	if len(r.TopGaps) != 2 {
		t.Fatalf("top gaps = %d, want capped at 2", len(r.TopGaps))
	}
}
