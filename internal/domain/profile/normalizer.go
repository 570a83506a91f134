package profile

import "strings"

// Normalizer canonicalizes free-text skill phrases through a synonym table
// and expands education-track input (CBC pathways, 8-4-4 subject
// combinations) into implied skill phrases.
type Normalizer struct {
	synonyms     map[string]string
	cbcPathways  map[string][]string
	kcseSubjects map[string][]string
}

func NewNormalizer(synonyms map[string]string, cbcPathways, kcseSubjects map[string][]string) *Normalizer {
	if synonyms == nil {
		synonyms = map[string]string{}
	}
	if cbcPathways == nil {
		cbcPathways = map[string][]string{}
	}
	if kcseSubjects == nil {
		kcseSubjects = map[string][]string{}
	}
	return &Normalizer{synonyms: synonyms, cbcPathways: cbcPathways, kcseSubjects: kcseSubjects}
}

// Normalize lower-cases and trims the phrase, then resolves it through the
// synonym table. An unmapped phrase is its own canonical form.
func (n *Normalizer) Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := n.synonyms[s]; ok {
		return canonical
	}
	return s
}

// SplitList normalizes a comma-separated list, dropping empty entries.
func (n *Normalizer) SplitList(csv string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(csv, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		out = append(out, n.Normalize(part))
	}
	return out
}

// ExpandTracks returns the implied skill phrases for the user's education
// track: CBC users declare a pathway, 8-4-4 users a subject combination.
func (n *Normalizer) ExpandTracks(userType, pathway, subjectCombination string) []string {
	out := make([]string, 0)
	switch strings.ToLower(strings.TrimSpace(userType)) {
	case "cbc":
		for _, s := range n.cbcPathways[strings.TrimSpace(pathway)] {
			out = append(out, n.Normalize(s))
		}
	case "8-4-4":
		for _, subj := range strings.Split(subjectCombination, ",") {
			for _, s := range n.kcseSubjects[strings.TrimSpace(subj)] {
				out = append(out, n.Normalize(s))
			}
		}
	}
	return out
}
