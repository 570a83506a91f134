package usecase

import (
	"context"

	"career-compass/internal/catalog"
	"career-compass/internal/domain/gap"
	"career-compass/internal/domain/path"
	"career-compass/internal/engine"
)

const (
	defaultGapTopN      = 8
	defaultStrengthTopN = 5
)

// GapResult pairs the weighted gap report with an optional learning path.
type GapResult struct {
	Report gap.Report `json:"gap_report"`
	Path   *path.Path `json:"learning_path,omitempty"`
}

type GapUsecase interface {
	Analyze(ctx context.Context, in engine.UserInput, occupationTitle string, includePath bool) (GapResult, error)
	Dimensions(ctx context.Context) ([]catalog.Dimension, error)
}

type Gap struct {
	engines *engine.Holder
}

func NewGapUsecase(engines *engine.Holder) *Gap {
	return &Gap{engines: engines}
}

func (u *Gap) Analyze(ctx context.Context, in engine.UserInput, occupationTitle string, includePath bool) (GapResult, error) {
	e := u.engines.Get()
	if !e.Ready() {
		return GapResult{}, ErrEngineNotReady
	}
	if occupationTitle == "" {
		return GapResult{}, ErrInvalidInput
	}

	occ, ok := e.FindOccupation(occupationTitle)
	if !ok {
		return GapResult{}, ErrOccupationNotFound
	}

	scores := e.ParseUserSkills(in)
	report := e.AnalyzeGap(scores, occ, defaultGapTopN, defaultStrengthTopN)

	out := GapResult{Report: report}
	if includePath {
		p := e.BuildLearningPath(report, in.UserType, defaultCoursesPerGap)
		out.Path = &p
	}
	return out, nil
}

func (u *Gap) Dimensions(ctx context.Context) ([]catalog.Dimension, error) {
	e := u.engines.Get()
	if !e.Ready() {
		return nil, ErrEngineNotReady
	}
	return e.Dimensions(), nil
}
