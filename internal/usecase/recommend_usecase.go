package usecase

import (
	"context"
	"log"
	"time"

	"career-compass/internal/domain/ranking"
	"career-compass/internal/engine"
)

const (
	defaultTopN          = 5
	maxTopN              = 20
	defaultCoursesPerGap = 2
	maxCoursesPerGap     = 5
)

type RecommendUsecase interface {
	FullPipeline(ctx context.Context, in engine.UserInput, topN, coursesPerGap int) (engine.PipelineResult, error)
	Quick(ctx context.Context, in engine.UserInput, topN int) ([]ranking.Recommendation, error)
	Families(ctx context.Context) (map[string]int, error)
}

type Recommend struct {
	engines *engine.Holder
	cache   SearchCache
	ttl     time.Duration
	logger  *log.Logger
}

func NewRecommendUsecase(engines *engine.Holder, cache SearchCache, ttl time.Duration, logger *log.Logger) *Recommend {
	return &Recommend{engines: engines, cache: cache, ttl: ttl, logger: logger}
}

// FullPipeline runs ranking, gap analysis, risk profiling and learning-path
// assembly for one profile. Results are cached per normalized input; a cache
// failure is only logged.
func (u *Recommend) FullPipeline(ctx context.Context, in engine.UserInput, topN, coursesPerGap int) (engine.PipelineResult, error) {
	e := u.engines.Get()
	if !e.Ready() {
		return engine.PipelineResult{}, ErrEngineNotReady
	}

	topN = clampInt(topN, defaultTopN, 1, maxTopN)
	coursesPerGap = clampInt(coursesPerGap, defaultCoursesPerGap, 1, maxCoursesPerGap)

	key := PipelineCacheKey(in, topN, coursesPerGap)
	if u.cache != nil {
		var cached engine.PipelineResult
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil && u.logger != nil {
			u.logger.Printf("[Recommend] cache read failed key=%s err=%v", key, err)
		}
		if hit {
			return cached, nil
		}
	}

	result := e.RunFullPipeline(in, topN, coursesPerGap)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, result, u.ttl); err != nil && u.logger != nil {
			u.logger.Printf("[Recommend] cache write failed key=%s err=%v", key, err)
		}
	}

	return result, nil
}

// Quick runs the ranking stage only, skipping gap reports and paths.
func (u *Recommend) Quick(ctx context.Context, in engine.UserInput, topN int) ([]ranking.Recommendation, error) {
	e := u.engines.Get()
	if !e.Ready() {
		return nil, ErrEngineNotReady
	}
	return e.Recommend(in, clampInt(topN, defaultTopN, 1, maxTopN)), nil
}

func (u *Recommend) Families(ctx context.Context) (map[string]int, error) {
	e := u.engines.Get()
	if !e.Ready() {
		return nil, ErrEngineNotReady
	}
	return e.Occupations().FamilyCounts(), nil
}

func clampInt(v, def, lo, hi int) int {
	if v == 0 {
		v = def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
