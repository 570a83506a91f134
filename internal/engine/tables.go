package engine

import "career-compass/internal/domain/risk"

// Tables holds the static configuration data the pipeline consults:
// synonym canonicalization, education-track skill expansion, job-zone
// restrictions, goal keyword boosts, risk bands and course-level ladders.
// Defaults ship in the binary; a deployment can override any table with a
// JSON artifact of the same shape.
type Tables struct {
	SkillSynonyms     map[string]string
	CBCPathwaySkills  map[string][]string
	KCSESubjectSkills map[string][]string
	UserTypeJobZones  map[string][]int
	GoalBoosts        map[string][]string
	EduCourseLevels   map[string][]string
	RiskBands         []risk.Band
}

func DefaultTables() Tables {
	return Tables{
		SkillSynonyms: map[string]string{
			"coding":           "programming",
			"coder":            "programming",
			"software":         "programming",
			"dev":              "programming",
			"ml":               "machine learning",
			"ai":               "machine learning",
			"js":               "javascript",
			"maths":            "mathematics",
			"math":             "mathematics",
			"stats":            "statistics",
			"comms":            "communication",
			"public speaking":  "speaking",
			"presenting":       "speaking",
			"people skills":    "social perceptiveness",
			"teamwork":         "coordination",
			"team player":      "coordination",
			"leadership":       "management of personnel resources",
			"managing people":  "management of personnel resources",
			"budgeting":        "management of financial resources",
			"accounts":         "accounting",
			"customer care":    "service orientation",
			"customer service": "service orientation",
			"problem solving":  "complex problem solving",
			"debugging":        "troubleshooting",
			"fixing things":    "repairing",
			"teaching":         "instructing",
			"mentoring":        "instructing",
			"writing reports":  "writing",
			"research":         "science",
		},
		CBCPathwaySkills: map[string][]string{
			"STEM":                  {"mathematics", "science", "critical thinking", "programming", "problem solving"},
			"Social Sciences":       {"speaking", "writing", "social perceptiveness", "critical thinking"},
			"Arts & Sports Science": {"coordination", "speaking", "service orientation", "active learning"},
		},
		KCSESubjectSkills: map[string][]string{
			"Mathematics":      {"mathematics", "problem solving", "critical thinking"},
			"Physics":          {"science", "mathematics", "systems analysis"},
			"Chemistry":        {"science", "quality control analysis"},
			"Biology":          {"science", "monitoring"},
			"Computer Studies": {"programming", "troubleshooting", "systems analysis"},
			"Business Studies": {"budgeting", "negotiation", "monitoring"},
			"Agriculture":      {"science", "operations monitoring", "equipment maintenance"},
			"History":          {"reading comprehension", "writing", "critical thinking"},
			"Geography":        {"science", "reading comprehension", "operations analysis"},
			"English":          {"writing", "speaking", "reading comprehension"},
			"Kiswahili":        {"speaking", "writing", "active listening"},
			"Art & Design":     {"technology design", "operations analysis", "active learning"},
		},
		UserTypeJobZones: map[string][]int{
			"cbc":          {1, 2},
			"8-4-4":        {1, 2, 3},
			"tvet":         {2, 3},
			"diploma":      {2, 3, 4},
			"graduate":     {3, 4, 5},
			"postgraduate": {4, 5},
			"professional": {3, 4, 5},
		},
		GoalBoosts: map[string][]string{
			"technology":  {"Technology"},
			"software":    {"Technology"},
			"data":        {"Technology"},
			"engineer":    {"Technology", "Trades"},
			"health":      {"Healthcare"},
			"medicine":    {"Healthcare"},
			"nursing":     {"Healthcare"},
			"teach":       {"Education"},
			"business":    {"Business", "Sales"},
			"finance":     {"Business"},
			"design":      {"Arts & Design"},
			"creative":    {"Arts & Design"},
			"farming":     {"Agriculture"},
			"agriculture": {"Agriculture"},
			"hospitality": {"Hospitality"},
		},
		EduCourseLevels: map[string][]string{
			"cbc":          {"Foundation"},
			"8-4-4":        {"Foundation", "Intermediate"},
			"tvet":         {"Foundation", "Intermediate"},
			"diploma":      {"Foundation", "Intermediate"},
			"graduate":     {"Intermediate", "Advanced"},
			"postgraduate": {"Advanced"},
			"professional": {"Intermediate", "Advanced"},
		},
		RiskBands: risk.Default().Bands(),
	}
}
