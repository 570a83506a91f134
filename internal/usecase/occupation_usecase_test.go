package usecase

import (
	"context"
	"testing"

	"career-compass/internal/engine"
)

func TestOccupationList(t *testing.T) {
	holder := readyHolder(t)
	u := NewOccupationUsecase(holder)

	page, err := u.List(context.Background(), OccupationListParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != holder.Get().Occupations().Len() {
		t.Errorf("total = %d, want the full catalogue", page.Total)
	}
	if len(page.Items) == 0 {
		t.Fatal("want items")
	}
	if page.Limit != defaultOccupationLimit {
		t.Errorf("limit = %d, want default %d", page.Limit, defaultOccupationLimit)
	}
}

func TestOccupationListFilters(t *testing.T) {
	u := NewOccupationUsecase(readyHolder(t))

	page, err := u.List(context.Background(), OccupationListParams{Family: "technology"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total == 0 {
		t.Fatal("want technology occupations")
	}
	for _, row := range page.Items {
		if row.CareerFamily != "Technology" {
			t.Errorf("family filter leaked %q", row.CareerFamily)
		}
	}

	page, err = u.List(context.Background(), OccupationListParams{MaxRisk: "Low"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, row := range page.Items {
		if row.AIRiskLabel != "Low" {
			t.Errorf("max risk Low leaked %q", row.AIRiskLabel)
		}
	}

	page, err = u.List(context.Background(), OccupationListParams{JobZone: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, row := range page.Items {
		if row.JobZone != 4 {
			t.Errorf("job zone filter leaked %d", row.JobZone)
		}
	}
}

func TestOccupationListPaging(t *testing.T) {
	holder := readyHolder(t)
	u := NewOccupationUsecase(holder)
	total := holder.Get().Occupations().Len()

	first, err := u.List(context.Background(), OccupationListParams{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Items) != 2 {
		t.Fatalf("page size = %d, want 2", len(first.Items))
	}

	second, err := u.List(context.Background(), OccupationListParams{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Items[0].Code == first.Items[0].Code {
		t.Error("offset page must not repeat the first page")
	}

	past, err := u.List(context.Background(), OccupationListParams{Offset: total + 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(past.Items) != 0 || past.Total != total {
		t.Errorf("past-the-end page = %d items total %d, want empty with full total", len(past.Items), past.Total)
	}
}

func TestOccupationGet(t *testing.T) {
	u := NewOccupationUsecase(readyHolder(t))

	detail, err := u.Get(context.Background(), "software developers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Title != "Software Developers" {
		t.Errorf("title = %q", detail.Title)
	}
	if detail.RiskProfile.AIRiskLabel == "" {
		t.Error("detail must embed the risk profile")
	}
	if len(detail.SkillProfile) == 0 {
		t.Error("detail must list the nonzero skill requirements")
	}
	for name, level := range detail.SkillProfile {
		if level <= 0 {
			t.Errorf("skill profile entry %q = %v, want > 0", name, level)
		}
	}

	if _, err := u.Get(context.Background(), ""); err != ErrInvalidInput {
		t.Errorf("empty title: err = %v, want ErrInvalidInput", err)
	}
	if _, err := u.Get(context.Background(), "zzz unknown"); err != ErrOccupationNotFound {
		t.Errorf("unknown title: err = %v, want ErrOccupationNotFound", err)
	}

	cold := NewOccupationUsecase(&engine.Holder{})
	if _, err := cold.Get(context.Background(), "software developers"); err != ErrEngineNotReady {
		t.Errorf("cold holder: err = %v, want ErrEngineNotReady", err)
	}
}
