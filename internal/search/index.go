// Package search implements the sparse text-similarity retrieval over the
// course catalogue. The index is built once from the loaded courses and is
// read-only afterwards.
package search

import (
	"math"
	"sort"
	"strings"
)

// relevanceFloor excludes courses whose masked similarity is effectively
// noise, even when top-k is not yet filled.
const relevanceFloor = 0.01

// titleWeight repeats the course title in the document text so title hits
// dominate skills-covered and subject hits.
const titleWeight = 3

// Document is one searchable course row. Index positions stay aligned with
// the catalogue the index was built from.
type Document struct {
	Title         string
	Platform      string
	Subject       string
	SkillsCovered string
	Level         string
	QualityScore  float64
	DurationHours float64
	IsFree        bool
	URL           string
}

// CourseMatch is one search hit with its similarity expressed as a
// percentage and the originating skill-gap label.
type CourseMatch struct {
	CourseTitle   string  `json:"course_title"`
	Platform      string  `json:"platform"`
	Level         string  `json:"level"`
	Subject       string  `json:"subject"`
	SkillsCovered string  `json:"skills_covered"`
	QualityScore  float64 `json:"quality_score"`
	DurationHours float64 `json:"duration_hours"`
	IsFree        bool    `json:"is_free"`
	URL           string  `json:"url"`
	SkillMatchPct float64 `json:"skill_match_pct"`
	SkillGap      string  `json:"skill_gap"`
}

// Index is a TF-IDF index over course documents with cosine scoring.
type Index struct {
	docs    []Document
	vocab   map[string]int
	idf     []float64
	vectors []map[int]float64
}

func NewIndex(docs []Document) *Index {
	ix := &Index{docs: docs, vocab: make(map[string]int)}

	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, d := range docs {
		parts := make([]string, 0, titleWeight+2)
		for w := 0; w < titleWeight; w++ {
			parts = append(parts, d.Title)
		}
		parts = append(parts, d.SkillsCovered, d.Subject)
		tokens := tokenize(strings.Join(parts, " "))
		tokenized[i] = tokens

		seen := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			if seen[t] {
				continue
			}
			seen[t] = true
			df[t]++
		}
	}

	for term := range df {
		ix.vocab[term] = len(ix.vocab)
	}
	ix.idf = make([]float64, len(ix.vocab))
	n := float64(len(docs))
	for term, id := range ix.vocab {
		// smoothed idf, never zero
		ix.idf[id] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	ix.vectors = make([]map[int]float64, len(docs))
	for i, tokens := range tokenized {
		ix.vectors[i] = ix.vectorize(tokens)
	}
	return ix
}

func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.docs)
}

// Search ranks courses against the query by masked cosine similarity.
// Eligibility (quality floor, optional level filter) multiplies the
// similarity instead of filtering rows, preserving index alignment.
func (ix *Index) Search(query string, topK int, levelFilter string, minQuality float64) []CourseMatch {
	if ix == nil || len(ix.docs) == 0 || topK <= 0 {
		return nil
	}

	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(query)), "_", " ")
	qv := ix.vectorize(tokenize(normalized))
	if len(qv) == 0 {
		return nil
	}

	masked := make([]float64, len(ix.docs))
	for i := range ix.docs {
		if ix.docs[i].QualityScore < minQuality {
			continue
		}
		if levelFilter != "" && ix.docs[i].Level != levelFilter {
			continue
		}
		masked[i] = sparseDot(qv, ix.vectors[i])
	}

	order := make([]int, len(masked))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return masked[order[a]] > masked[order[b]] })

	out := make([]CourseMatch, 0, topK)
	for _, i := range order {
		if len(out) >= topK || masked[i] <= relevanceFloor {
			break
		}
		d := ix.docs[i]
		covered := d.SkillsCovered
		if len(covered) > 120 {
			covered = covered[:120]
		}
		out = append(out, CourseMatch{
			CourseTitle:   d.Title,
			Platform:      d.Platform,
			Level:         d.Level,
			Subject:       d.Subject,
			SkillsCovered: covered,
			QualityScore:  math.Round(d.QualityScore*100) / 100,
			DurationHours: d.DurationHours,
			IsFree:        d.IsFree,
			URL:           d.URL,
			SkillMatchPct: math.Round(masked[i]*1000) / 10,
			SkillGap:      GapLabel(query),
		})
	}
	return out
}

// GapLabel turns a dimension key or raw query into its display label.
func GapLabel(query string) string {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(query)), "skill_")
	s = strings.ReplaceAll(s, "_", " ")
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// vectorize builds the l2-normalized sublinear TF-IDF vector for tokens,
// ignoring out-of-vocabulary terms.
func (ix *Index) vectorize(tokens []string) map[int]float64 {
	tf := make(map[int]float64)
	for _, t := range tokens {
		if id, ok := ix.vocab[t]; ok {
			tf[id]++
		}
	}
	if len(tf) == 0 {
		return tf
	}

	var norm float64
	for id, count := range tf {
		w := (1 + math.Log(count)) * ix.idf[id]
		tf[id] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for id := range tf {
		tf[id] /= norm
	}
	return tf
}

func sparseDot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for id, w := range a {
		dot += w * b[id]
	}
	return dot
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}
