package profile

import (
	"errors"
	"testing"

	"career-compass/internal/artifact"
	"career-compass/internal/catalog"
)

func testDims() []catalog.Dimension {
	return []catalog.Dimension{
		{Key: "skill_programming", Name: "Programming", Description: "writing computer programs programming code software"},
		{Key: "skill_mathematics", Name: "Mathematics", Description: "mathematics arithmetic algebra statistics"},
	}
}

type fakeEncoder struct {
	vecs [][]float64
	err  error
}

func (f fakeEncoder) Encode(phrases []string) ([][]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vecs, nil
}

func TestVectorizeEmptyInputReturnsZeros(t *testing.T) {
	v := NewVectorizer(testDims(), nil, nil)

	scores := v.Vectorize(nil)
	if len(scores) != 2 {
		t.Fatalf("want one entry per dimension, got %d", len(scores))
	}
	for k, s := range scores {
		if s != 0 {
			t.Errorf("scores[%q] = %v, want 0", k, s)
		}
	}
}

func TestVectorizeKeywordHit(t *testing.T) {
	v := NewVectorizer(testDims(), nil, nil)

	scores := v.Vectorize([]string{"programming"})
	if scores["skill_programming"] != 2.5 {
		t.Errorf("programming score = %v, want 2.5", scores["skill_programming"])
	}
	if scores["skill_mathematics"] != 0 {
		t.Errorf("mathematics score = %v, want 0", scores["skill_mathematics"])
	}
}

func TestVectorizeKeywordClampsAtMax(t *testing.T) {
	v := NewVectorizer(testDims(), nil, nil)

	scores := v.Vectorize([]string{"programming", "programming", "programming"})
	if scores["skill_programming"] != 7.0 {
		t.Errorf("programming score = %v, want clamp at 7.0", scores["skill_programming"])
	}
}

func TestVectorizeSemanticTopMatch(t *testing.T) {
	dims := testDims()
	sem := &artifact.Semantic{
		Encoder:    fakeEncoder{vecs: [][]float64{{1, 0}}},
		DimVectors: [][]float64{{1, 0}, {0, 1}},
	}
	v := NewVectorizer(dims, sem, nil)

	if !v.SemanticAvailable() {
		t.Fatal("semantic mode should be available")
	}

	scores := v.Vectorize([]string{"programming"})
	// perfect similarity on the top dimension: 1.0 * 1.0 * 7.0, clamped
	if scores["skill_programming"] != 7.0 {
		t.Errorf("programming score = %v, want 7.0", scores["skill_programming"])
	}
	if scores["skill_mathematics"] != 0 {
		t.Errorf("mathematics score = %v, want 0 (orthogonal)", scores["skill_mathematics"])
	}
}

func TestVectorizeSemanticFailureFallsBackToKeyword(t *testing.T) {
	dims := testDims()
	sem := &artifact.Semantic{
		Encoder:    fakeEncoder{err: errors.New("encoder down")},
		DimVectors: [][]float64{{1, 0}, {0, 1}},
	}
	v := NewVectorizer(dims, sem, nil)

	scores := v.Vectorize([]string{"mathematics"})
	if scores["skill_mathematics"] != 2.5 {
		t.Errorf("mathematics score = %v, want keyword fallback 2.5", scores["skill_mathematics"])
	}
}

func TestSemanticUnavailableOnDimMismatch(t *testing.T) {
	sem := &artifact.Semantic{
		Encoder:    fakeEncoder{},
		DimVectors: [][]float64{{1, 0}},
	}
	v := NewVectorizer(testDims(), sem, nil)

	if v.SemanticAvailable() {
		t.Fatal("semantic mode must be off when vector count differs from dims")
	}
}
