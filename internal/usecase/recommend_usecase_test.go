package usecase

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"
	"time"

	"career-compass/internal/engine"
)

// fakeCache is an in-memory SearchCache for usecase tests.
type fakeCache struct {
	store    map[string][]byte
	getErr   error
	setErr   error
	patterns []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if f.getErr != nil {
		return false, f.getErr
	}
	raw, ok := f.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = raw
	return nil
}

func (f *fakeCache) DeleteByPattern(ctx context.Context, pattern string) error {
	f.patterns = append(f.patterns, pattern)
	f.store = make(map[string][]byte)
	return nil
}

func testLogger() *log.Logger {
	return log.New(os.Stderr, "", 0)
}

func readyHolder(t *testing.T) *engine.Holder {
	t.Helper()
	h := &engine.Holder{}
	h.Set(engine.Load(context.Background(), engine.LoadParams{}))
	return h
}

func TestFullPipelineEngineNotReady(t *testing.T) {
	u := NewRecommendUsecase(&engine.Holder{}, nil, time.Minute, testLogger())

	if _, err := u.FullPipeline(context.Background(), engine.UserInput{}, 5, 2); err != ErrEngineNotReady {
		t.Fatalf("err = %v, want ErrEngineNotReady", err)
	}
	if _, err := u.Quick(context.Background(), engine.UserInput{}, 5); err != ErrEngineNotReady {
		t.Fatalf("quick err = %v, want ErrEngineNotReady", err)
	}
	if _, err := u.Families(context.Background()); err != ErrEngineNotReady {
		t.Fatalf("families err = %v, want ErrEngineNotReady", err)
	}
}

func TestFullPipelineCachesResult(t *testing.T) {
	cache := newFakeCache()
	u := NewRecommendUsecase(readyHolder(t), cache, time.Minute, testLogger())

	in := engine.UserInput{Skills: "programming, mathematics", UserType: "graduate"}
	result, err := u.FullPipeline(context.Background(), in, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("want recommendations")
	}

	// zero params clamp to the defaults before keying
	key := PipelineCacheKey(in, 5, 2)
	if _, ok := cache.store[key]; !ok {
		t.Error("result must be written under the normalized cache key")
	}
}

func TestFullPipelineReturnsCachedResult(t *testing.T) {
	cache := newFakeCache()
	in := engine.UserInput{Skills: "programming", UserType: "graduate"}

	sentinel := engine.PipelineResult{UserType: "from-cache"}
	raw, _ := json.Marshal(sentinel)
	cache.store[PipelineCacheKey(in, 5, 2)] = raw

	u := NewRecommendUsecase(readyHolder(t), cache, time.Minute, testLogger())
	result, err := u.FullPipeline(context.Background(), in, 5, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UserType != "from-cache" {
		t.Errorf("user type = %q, want the cached sentinel", result.UserType)
	}
}

func TestFullPipelineCacheKeyNormalization(t *testing.T) {
	a := PipelineCacheKey(engine.UserInput{Skills: "  Programming,   Maths ", UserType: "Graduate"}, 5, 2)
	b := PipelineCacheKey(engine.UserInput{Skills: "programming, maths", UserType: "graduate"}, 5, 2)
	if a != b {
		t.Error("spacing and case must not change the cache key")
	}

	c := PipelineCacheKey(engine.UserInput{Skills: "programming, maths", UserType: "graduate"}, 10, 2)
	if a == c {
		t.Error("different top_n must produce a different key")
	}
}

func TestFullPipelineSurvivesCacheErrors(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = context.DeadlineExceeded
	cache.setErr = context.DeadlineExceeded

	u := NewRecommendUsecase(readyHolder(t), cache, time.Minute, testLogger())
	result, err := u.FullPipeline(context.Background(), engine.UserInput{Skills: "programming"}, 3, 1)
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if len(result.Recommendations) == 0 {
		t.Error("want recommendations despite the broken cache")
	}
}

func TestQuickClampsTopN(t *testing.T) {
	u := NewRecommendUsecase(readyHolder(t), nil, time.Minute, testLogger())

	recs, err := u.Quick(context.Background(), engine.UserInput{Skills: "programming"}, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) > maxTopN {
		t.Errorf("got %d recommendations, want at most %d", len(recs), maxTopN)
	}
}

func TestClampInt(t *testing.T) {
	cases := []struct {
		v, def, lo, hi, want int
	}{
		{0, 5, 1, 20, 5},
		{-3, 5, 1, 20, 1},
		{50, 5, 1, 20, 20},
		{7, 5, 1, 20, 7},
	}
	for _, c := range cases {
		if got := clampInt(c.v, c.def, c.lo, c.hi); got != c.want {
			t.Errorf("clampInt(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}
