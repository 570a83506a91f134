package risk

import "math"

const (
	LabelLow      = "Low"
	LabelMedium   = "Medium"
	LabelHigh     = "High"
	LabelVeryHigh = "Very High"
)

// Band is one half-open interval [Low, High) of the unit risk scale.
type Band struct {
	Label string
	Low   float64
	High  float64
}

// Categorizer partitions automation-risk scores into ordered labels.
type Categorizer struct {
	bands []Band
}

func New(bands []Band) *Categorizer {
	if len(bands) == 0 {
		return Default()
	}
	return &Categorizer{bands: bands}
}

func Default() *Categorizer {
	return &Categorizer{bands: []Band{
		{Label: LabelLow, Low: 0.00, High: 0.35},
		{Label: LabelMedium, Low: 0.35, High: 0.55},
		{Label: LabelHigh, Low: 0.55, High: 0.72},
		{Label: LabelVeryHigh, Low: 0.72, High: 1.00},
	}}
}

func (c *Categorizer) Bands() []Band {
	return c.bands
}

// Categorize clamps the score into [0,1] and returns the first band whose
// half-open interval contains it; anything at or above the last lower bound
// (NaN included) maps to the highest category.
func (c *Categorizer) Categorize(score float64) string {
	last := c.bands[len(c.bands)-1]
	if math.IsNaN(score) {
		return last.Label
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	for _, b := range c.bands[:len(c.bands)-1] {
		if score >= b.Low && score < b.High {
			return b.Label
		}
	}
	return last.Label
}

// Colors, explanations and mitigation advice are static presentation data
// keyed by label.

const fallbackColor = "#95a5a6"

var colors = map[string]string{
	LabelLow:      "#27ae60",
	LabelMedium:   "#f39c12",
	LabelHigh:     "#e67e22",
	LabelVeryHigh: "#e74c3c",
}

var explanations = map[string]string{
	LabelLow: "This career has LOW AI replacement risk. It relies on human judgment, " +
		"creativity, and social intelligence — areas where AI remains weak.",
	LabelMedium: "This career has MEDIUM AI replacement risk. Some tasks may be automated " +
		"but the role requires human oversight, creativity, and interpersonal skills.",
	LabelHigh: "This career has HIGH AI replacement risk. Many routine tasks are likely to be " +
		"automated. Upskilling towards creativity, leadership, and complex problem-solving " +
		"is strongly recommended.",
	LabelVeryHigh: "This career has VERY HIGH AI replacement risk. Plan a skills transition " +
		"towards a lower-risk role or develop AI oversight competencies.",
}

var mitigation = map[string][]string{
	LabelLow: {
		"Continue building deep expertise — your role is future-proof.",
		"Embrace AI tools to amplify your productivity.",
		"Stay current with AI developments in your sector.",
	},
	LabelMedium: {
		"Identify automatable tasks and upskill away from them.",
		"Develop leadership and creative problem-solving skills.",
		"Become a skilled human-AI collaborator.",
	},
	LabelHigh: {
		"Urgently develop management or creative skills.",
		"Consider adjacent roles with lower AI risk.",
		"Pursue certifications in higher-complexity areas.",
	},
	LabelVeryHigh: {
		"Plan a skills transition into a lower-risk career.",
		"Build AI oversight and auditing competencies.",
		"Consult a career counsellor for a reskilling roadmap.",
	},
}

func Color(label string) string {
	if c, ok := colors[label]; ok {
		return c
	}
	return fallbackColor
}

func Explanation(label string) string {
	return explanations[label]
}

func Mitigation(label string) []string {
	return mitigation[label]
}

// Order maps labels to their severity rank for max-category filtering.
func Order(label string) int {
	switch label {
	case LabelLow:
		return 0
	case LabelMedium:
		return 1
	case LabelHigh:
		return 2
	case LabelVeryHigh:
		return 3
	default:
		return 3
	}
}
