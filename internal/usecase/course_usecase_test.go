package usecase

import (
	"context"
	"testing"

	"career-compass/internal/engine"
)

func TestCourseSearch(t *testing.T) {
	u := NewCourseUsecase(readyHolder(t))

	matches, err := u.Search(context.Background(), "programming", 5, "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("want matches for a catalogue term")
	}
	if len(matches) > 5 {
		t.Errorf("got %d matches, want at most 5", len(matches))
	}
}

func TestCourseSearchValidation(t *testing.T) {
	u := NewCourseUsecase(readyHolder(t))

	if _, err := u.Search(context.Background(), "   ", 5, "", 0); err != ErrInvalidInput {
		t.Errorf("blank query: err = %v, want ErrInvalidInput", err)
	}

	cold := NewCourseUsecase(&engine.Holder{})
	if _, err := cold.Search(context.Background(), "programming", 5, "", 0); err != ErrEngineNotReady {
		t.Errorf("cold holder: err = %v, want ErrEngineNotReady", err)
	}
}

func TestCoursePlatforms(t *testing.T) {
	u := NewCourseUsecase(readyHolder(t))

	platforms, err := u.Platforms(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total := 0
	for _, n := range platforms {
		total += n
	}
	if total == 0 {
		t.Fatal("platform counts must cover the catalogue")
	}
}

func TestCourseLevels(t *testing.T) {
	u := NewCourseUsecase(readyHolder(t))

	levels, err := u.Levels(context.Background(), "cbc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(levels) != 1 || levels[0] != "Foundation" {
		t.Errorf("cbc levels = %v, want [Foundation]", levels)
	}
}
