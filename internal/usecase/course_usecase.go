package usecase

import (
	"context"
	"strings"

	"career-compass/internal/engine"
	"career-compass/internal/search"
)

const (
	defaultCourseTopK = 10
	maxCourseTopK     = 50
)

type CourseUsecase interface {
	Search(ctx context.Context, query string, topK int, levelFilter string, minQuality float64) ([]search.CourseMatch, error)
	Platforms(ctx context.Context) (map[string]int, error)
	Levels(ctx context.Context, userType string) ([]string, error)
}

type Course struct {
	engines *engine.Holder
}

func NewCourseUsecase(engines *engine.Holder) *Course {
	return &Course{engines: engines}
}

func (u *Course) Search(ctx context.Context, query string, topK int, levelFilter string, minQuality float64) ([]search.CourseMatch, error) {
	e := u.engines.Get()
	if !e.Ready() {
		return nil, ErrEngineNotReady
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrInvalidInput
	}
	return e.SearchCourses(query, clampInt(topK, defaultCourseTopK, 1, maxCourseTopK), levelFilter, minQuality), nil
}

func (u *Course) Platforms(ctx context.Context) (map[string]int, error) {
	e := u.engines.Get()
	if !e.Ready() {
		return nil, ErrEngineNotReady
	}
	return e.Courses().PlatformCounts(), nil
}

func (u *Course) Levels(ctx context.Context, userType string) ([]string, error) {
	e := u.engines.Get()
	if !e.Ready() {
		return nil, ErrEngineNotReady
	}
	return e.EduLevels(userType), nil
}
