package profile

import (
	"log"
	"math"
	"sort"
	"strings"

	"career-compass/internal/artifact"
	"career-compass/internal/catalog"
)

const (
	maxDimensionScore = 7.0
	keywordHitScore   = 2.5
	topMatchesPerPhrase = 3
)

// rank weights for a phrase's best / second / third dimension match.
var rankWeights = [topMatchesPerPhrase]float64{1.0, 0.6, 0.3}

// Vectorizer turns normalized skill phrases into a score per skill
// dimension in [0,7]. Semantic mode uses the encoder and reference
// dimension embeddings; without them it falls back to keyword-substring
// matching against the dimension descriptions.
type Vectorizer struct {
	dims     []catalog.Dimension
	semantic *artifact.Semantic
	logger   *log.Logger
}

func NewVectorizer(dims []catalog.Dimension, semantic *artifact.Semantic, logger *log.Logger) *Vectorizer {
	return &Vectorizer{dims: dims, semantic: semantic, logger: logger}
}

func (v *Vectorizer) SemanticAvailable() bool {
	return v.semantic.Available() && len(v.semantic.DimVectors) == len(v.dims)
}

// Vectorize is pure given the loaded reference data: the same phrases always
// produce the same scores.
func (v *Vectorizer) Vectorize(phrases []string) map[string]float64 {
	scores := make(map[string]float64, len(v.dims))
	for _, d := range v.dims {
		scores[d.Key] = 0.0
	}
	if len(v.dims) == 0 || len(phrases) == 0 {
		return scores
	}

	if v.SemanticAvailable() {
		if ok := v.vectorizeSemantic(phrases, scores); ok {
			return scores
		}
		// encoder failure degrades to the keyword path, never the request
		if v.logger != nil {
			v.logger.Printf("Vectorizer | semantic encode failed, using keyword fallback")
		}
	}

	v.vectorizeKeyword(phrases, scores)
	return scores
}

func (v *Vectorizer) vectorizeSemantic(phrases []string, scores map[string]float64) bool {
	vecs, err := v.semantic.Encoder.Encode(phrases)
	if err != nil || len(vecs) != len(phrases) {
		return false
	}

	for _, vec := range vecs {
		type dimSim struct {
			idx int
			sim float64
		}
		sims := make([]dimSim, 0, len(v.dims))
		for i := range v.dims {
			sims = append(sims, dimSim{idx: i, sim: cosine(vec, v.semantic.DimVectors[i])})
		}
		sort.SliceStable(sims, func(a, b int) bool { return sims[a].sim > sims[b].sim })

		for rank := 0; rank < topMatchesPerPhrase && rank < len(sims); rank++ {
			key := v.dims[sims[rank].idx].Key
			add := sims[rank].sim * rankWeights[rank] * maxDimensionScore
			scores[key] = math.Min(maxDimensionScore, scores[key]+add)
		}
	}
	return true
}

func (v *Vectorizer) vectorizeKeyword(phrases []string, scores map[string]float64) {
	for _, phrase := range phrases {
		words := strings.Fields(phrase)
		for _, d := range v.dims {
			if !descriptionMatches(d.Description, phrase, words) {
				continue
			}
			scores[d.Key] = math.Min(maxDimensionScore, scores[d.Key]+keywordHitScore)
		}
	}
}

func descriptionMatches(desc, phrase string, words []string) bool {
	if phrase != "" && strings.Contains(desc, phrase) {
		return true
	}
	for _, w := range words {
		if strings.Contains(desc, w) {
			return true
		}
	}
	return false
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
