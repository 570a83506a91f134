package engine

import (
	"context"
	"testing"
)

func demoEngine(t *testing.T) *Engine {
	t.Helper()
	return Load(context.Background(), LoadParams{})
}

func TestLoadWithoutSourcesUsesDemoCatalogue(t *testing.T) {
	e := demoEngine(t)

	if !e.Ready() {
		t.Fatal("engine must be ready after load")
	}
	if e.SemanticAvailable() {
		t.Error("semantic mode must be off without an encoder")
	}
	if e.Occupations().Len() == 0 || e.Courses().Len() == 0 {
		t.Fatal("demo catalogue must not be empty")
	}
	if len(e.Dimensions()) == 0 {
		t.Fatal("dimension set must not be empty")
	}
}

func TestParseUserSkills(t *testing.T) {
	e := demoEngine(t)

	scores := e.ParseUserSkills(UserInput{Skills: "programming, maths"})
	if len(scores) != len(e.Dimensions()) {
		t.Fatalf("score entries = %d, want one per dimension", len(scores))
	}
	if scores["skill_programming"] == 0 {
		t.Error("programming input must raise the programming dimension")
	}
	// "maths" canonicalizes to mathematics through the synonym table
	if scores["skill_mathematics"] == 0 {
		t.Error("maths input must raise the mathematics dimension")
	}
}

func TestRecommendRespectsJobZones(t *testing.T) {
	e := demoEngine(t)

	recs := e.Recommend(UserInput{Skills: "customer service", UserType: "cbc"}, 10)
	if len(recs) == 0 {
		t.Fatal("want recommendations")
	}
	for _, r := range recs {
		occ, ok := e.FindOccupation(r.Career)
		if !ok {
			t.Fatalf("recommended unknown occupation %q", r.Career)
		}
		if occ.JobZone > 2 {
			t.Errorf("%q has job zone %d, cbc users are capped at 2", r.Career, occ.JobZone)
		}
	}
}

func TestRunFullPipeline(t *testing.T) {
	e := demoEngine(t)

	in := UserInput{
		Skills:      "programming, mathematics, critical thinking",
		SoftSkills:  "communication",
		UserType:    "graduate",
		CareerGoals: "I want to work in technology",
	}
	result := e.RunFullPipeline(in, 5, 2)

	if len(result.Recommendations) == 0 {
		t.Fatal("want recommendations")
	}
	if len(result.CareerDetails) != len(result.Recommendations) {
		t.Errorf("details = %d, recommendations = %d, want equal",
			len(result.CareerDetails), len(result.Recommendations))
	}
	if result.UserType != "graduate" {
		t.Errorf("user type = %q, want graduate", result.UserType)
	}
	if result.PipelineMS < 0 {
		t.Errorf("pipeline ms = %v, want >= 0", result.PipelineMS)
	}

	for _, d := range result.CareerDetails {
		if d.CareerInfo.MatchScore < 55 || d.CareerInfo.MatchScore > 98 {
			t.Errorf("%q match score = %v, want in [55,98]", d.CareerInfo.Title, d.CareerInfo.MatchScore)
		}
		if d.RiskProfile.AIRiskLabel == "" {
			t.Errorf("%q missing risk label", d.CareerInfo.Title)
		}
		if len(d.LearningPath.Stages) == 0 || len(d.LearningPath.Stages) > 3 {
			t.Errorf("%q has %d path stages, want 1..3", d.CareerInfo.Title, len(d.LearningPath.Stages))
		}
		if d.GapReport.AlignmentPct < 0 || d.GapReport.AlignmentPct > 100 {
			t.Errorf("%q alignment = %v, want in [0,100]", d.CareerInfo.Title, d.GapReport.AlignmentPct)
		}
	}
}

func TestRiskProfileFor(t *testing.T) {
	e := demoEngine(t)

	occ, ok := e.FindOccupation("Fast Food Workers")
	if !ok {
		t.Fatal("demo occupation missing")
	}

	p := e.RiskProfileFor(occ)
	if p.AIRiskLabel != "Very High" {
		t.Errorf("risk label = %q, want Very High", p.AIRiskLabel)
	}
	if p.AIRiskScore != 92 {
		t.Errorf("risk score = %v, want 92", p.AIRiskScore)
	}
	if p.AIRiskColor == "" || p.RiskExplanation == "" || len(p.MitigationAdvice) == 0 {
		t.Error("presentation fields must be populated")
	}
}

func TestEduLevels(t *testing.T) {
	e := demoEngine(t)

	if got := e.EduLevels("cbc"); len(got) != 1 || got[0] != "Foundation" {
		t.Errorf("cbc levels = %v, want [Foundation]", got)
	}
	if got := e.EduLevels("unknown"); len(got) != 2 {
		t.Errorf("unknown user type levels = %v, want the default pair", got)
	}
}

func TestHolderSwap(t *testing.T) {
	var h Holder
	if h.Get() != nil {
		t.Fatal("empty holder must return nil")
	}

	e := demoEngine(t)
	h.Set(e)
	if h.Get() != e {
		t.Fatal("holder must return the stored engine")
	}
}
