package catalog

// Built-in demo catalogue so the service starts and answers requests when
// the store is empty or unreachable.

func alignRequirements(dims []Dimension, byKey map[string]float64) []float64 {
	out := make([]float64, len(dims))
	for i, d := range dims {
		out[i] = byKey[d.Key]
	}
	return out
}

func DemoOccupations(dims []Dimension) []Occupation {
	rows := []struct {
		occ  Occupation
		reqs map[string]float64
	}{
		{
			occ: Occupation{
				Code: "15-1252.00", Title: "Software Developers", Family: "Technology",
				JobZone: 4, MinEducation: "Bachelors", DemandLevel: "High",
				AutomationRisk: 0.22, FutureProofScore: 82, MedianWage: 120730,
				EmploymentChangePct: 25.0,
			},
			reqs: map[string]float64{
				"skill_programming":                6.5,
				"skill_complex_problem_solving":    6.0,
				"skill_critical_thinking":          5.5,
				"skill_systems_analysis":           5.5,
				"skill_troubleshooting":            5.0,
				"skill_active_learning":            5.0,
				"skill_mathematics":                4.5,
				"skill_reading_comprehension":      4.5,
				"skill_judgment_and_decision_making": 4.0,
			},
		},
		{
			occ: Occupation{
				Code: "15-1211.00", Title: "Computer Systems Analysts", Family: "Technology",
				JobZone: 4, MinEducation: "Bachelors", DemandLevel: "Medium",
				AutomationRisk: 0.38, FutureProofScore: 70, MedianWage: 99270,
				EmploymentChangePct: 9.0,
			},
			reqs: map[string]float64{
				"skill_systems_analysis":        6.0,
				"skill_systems_evaluation":      5.5,
				"skill_critical_thinking":       5.5,
				"skill_operations_analysis":     5.0,
				"skill_reading_comprehension":   5.0,
				"skill_complex_problem_solving": 4.5,
				"skill_programming":             3.5,
				"skill_active_listening":        4.0,
			},
		},
		{
			occ: Occupation{
				Code: "29-1141.00", Title: "Registered Nurses", Family: "Healthcare",
				JobZone: 4, MinEducation: "Bachelors", DemandLevel: "High",
				AutomationRisk: 0.12, FutureProofScore: 88, MedianWage: 81220,
				EmploymentChangePct: 6.0,
			},
			reqs: map[string]float64{
				"skill_service_orientation":    6.0,
				"skill_social_perceptiveness":  5.5,
				"skill_active_listening":       5.5,
				"skill_monitoring":             5.5,
				"skill_coordination":           5.0,
				"skill_critical_thinking":      5.0,
				"skill_speaking":               4.5,
				"skill_science":                4.5,
				"skill_judgment_and_decision_making": 4.5,
			},
		},
		{
			occ: Occupation{
				Code: "25-2021.00", Title: "Primary School Teachers", Family: "Education",
				JobZone: 4, MinEducation: "Bachelors", DemandLevel: "Medium",
				AutomationRisk: 0.15, FutureProofScore: 80, MedianWage: 61620,
				EmploymentChangePct: 1.0,
			},
			reqs: map[string]float64{
				"skill_instructing":          6.5,
				"skill_learning_strategies":  6.0,
				"skill_speaking":             5.5,
				"skill_social_perceptiveness": 5.0,
				"skill_active_listening":     5.0,
				"skill_monitoring":           4.5,
				"skill_writing":              4.5,
				"skill_time_management":      4.0,
			},
		},
		{
			occ: Occupation{
				Code: "13-2011.00", Title: "Accountants and Auditors", Family: "Business",
				JobZone: 4, MinEducation: "Bachelors", DemandLevel: "Medium",
				AutomationRisk: 0.68, FutureProofScore: 48, MedianWage: 78000,
				EmploymentChangePct: 4.0,
			},
			reqs: map[string]float64{
				"skill_mathematics":                     6.0,
				"skill_management_of_financial_resources": 5.5,
				"skill_critical_thinking":               5.0,
				"skill_reading_comprehension":           5.0,
				"skill_monitoring":                      4.5,
				"skill_writing":                         4.0,
				"skill_judgment_and_decision_making":    4.5,
			},
		},
		{
			occ: Occupation{
				Code: "41-2031.00", Title: "Retail Salespersons", Family: "Sales",
				JobZone: 2, MinEducation: "Secondary", DemandLevel: "Low",
				AutomationRisk: 0.85, FutureProofScore: 25, MedianWage: 30600,
				EmploymentChangePct: -2.0,
			},
			reqs: map[string]float64{
				"skill_persuasion":           5.5,
				"skill_service_orientation":  5.5,
				"skill_speaking":             5.0,
				"skill_active_listening":     4.5,
				"skill_social_perceptiveness": 4.5,
				"skill_negotiation":          4.0,
			},
		},
		{
			occ: Occupation{
				Code: "49-9071.00", Title: "Maintenance and Repair Workers", Family: "Trades",
				JobZone: 3, MinEducation: "Certificate", DemandLevel: "Medium",
				AutomationRisk: 0.42, FutureProofScore: 62, MedianWage: 44980,
				EmploymentChangePct: 5.0,
			},
			reqs: map[string]float64{
				"skill_repairing":             6.0,
				"skill_equipment_maintenance": 6.0,
				"skill_troubleshooting":       5.5,
				"skill_equipment_selection":   5.0,
				"skill_installation":          4.5,
				"skill_operations_monitoring": 4.5,
				"skill_operation_and_control": 4.0,
			},
		},
		{
			occ: Occupation{
				Code: "27-1024.00", Title: "Graphic Designers", Family: "Arts & Design",
				JobZone: 4, MinEducation: "Bachelors", DemandLevel: "Medium",
				AutomationRisk: 0.55, FutureProofScore: 55, MedianWage: 57990,
				EmploymentChangePct: 3.0,
			},
			reqs: map[string]float64{
				"skill_technology_design":     6.0,
				"skill_operations_analysis":   5.0,
				"skill_critical_thinking":     4.5,
				"skill_active_learning":       4.5,
				"skill_time_management":       4.0,
				"skill_speaking":              3.5,
			},
		},
		{
			occ: Occupation{
				Code: "11-9199.00", Title: "Project Managers", Family: "Business",
				JobZone: 4, MinEducation: "Bachelors", DemandLevel: "High",
				AutomationRisk: 0.28, FutureProofScore: 74, MedianWage: 94500,
				EmploymentChangePct: 7.0,
			},
			reqs: map[string]float64{
				"skill_management_of_personnel_resources": 6.0,
				"skill_coordination":                      6.0,
				"skill_time_management":                   5.5,
				"skill_judgment_and_decision_making":      5.5,
				"skill_negotiation":                       5.0,
				"skill_monitoring":                        5.0,
				"skill_speaking":                          5.0,
				"skill_management_of_financial_resources": 4.5,
			},
		},
		{
			occ: Occupation{
				Code: "35-3023.00", Title: "Fast Food Workers", Family: "Hospitality",
				JobZone: 1, MinEducation: "None", DemandLevel: "Low",
				AutomationRisk: 0.92, FutureProofScore: 15, MedianWage: 27930,
				EmploymentChangePct: -5.0,
			},
			reqs: map[string]float64{
				"skill_service_orientation": 4.5,
				"skill_active_listening":    3.5,
				"skill_coordination":        3.5,
				"skill_speaking":            3.0,
			},
		},
		{
			occ: Occupation{
				Code: "45-2091.00", Title: "Agricultural Technicians", Family: "Agriculture",
				JobZone: 2, MinEducation: "Certificate", DemandLevel: "Medium",
				AutomationRisk: 0.48, FutureProofScore: 58, MedianWage: 41970,
				EmploymentChangePct: 2.0,
			},
			reqs: map[string]float64{
				"skill_science":               5.5,
				"skill_operations_monitoring": 5.0,
				"skill_quality_control_analysis": 4.5,
				"skill_monitoring":            4.5,
				"skill_equipment_maintenance": 4.0,
				"skill_mathematics":           3.5,
			},
		},
		{
			occ: Occupation{
				Code: "15-2051.00", Title: "Data Scientists", Family: "Technology",
				JobZone: 5, MinEducation: "Masters", DemandLevel: "High",
				AutomationRisk: 0.18, FutureProofScore: 86, MedianWage: 103500,
				EmploymentChangePct: 35.0,
			},
			reqs: map[string]float64{
				"skill_mathematics":             6.5,
				"skill_programming":             6.0,
				"skill_critical_thinking":       6.0,
				"skill_science":                 5.5,
				"skill_complex_problem_solving": 5.5,
				"skill_systems_analysis":        5.0,
				"skill_active_learning":         5.0,
				"skill_writing":                 4.0,
			},
		},
	}

	out := make([]Occupation, 0, len(rows))
	for _, r := range rows {
		o := r.occ
		o.Requirements = alignRequirements(dims, r.reqs)
		out = append(out, o)
	}
	return out
}

func DemoCourses() []Course {
	return []Course{
		{
			Title: "Python for Data Science", Platform: "Coursera", Subject: "programming",
			SkillsCovered: "python programming data analysis pandas numpy",
			Level: LevelFoundation, QualityScore: 0.9, DurationHours: 30, URL: "https://coursera.org/python-for-data-science",
		},
		{
			Title: "Machine Learning Specialisation", Platform: "Coursera", Subject: "machine learning",
			SkillsCovered: "machine learning deep learning neural networks regression",
			Level: LevelIntermediate, QualityScore: 0.95, DurationHours: 60, URL: "https://coursera.org/machine-learning",
		},
		{
			Title: "Critical Thinking for Professionals", Platform: "edX", Subject: "thinking skills",
			SkillsCovered: "critical thinking logic reasoning argument analysis",
			Level: LevelFoundation, QualityScore: 0.8, DurationHours: 15, IsFree: true, URL: "https://edx.org/critical-thinking",
		},
		{
			Title: "Introduction to Programming with Python", Platform: "edX", Subject: "programming",
			SkillsCovered: "programming python coding software basics",
			Level: LevelFoundation, QualityScore: 0.85, DurationHours: 40, IsFree: true, URL: "https://edx.org/intro-programming",
		},
		{
			Title: "Advanced Systems Design", Platform: "Udemy", Subject: "systems analysis",
			SkillsCovered: "systems analysis architecture design scalability",
			Level: LevelAdvanced, QualityScore: 0.75, DurationHours: 25, URL: "https://udemy.com/advanced-systems-design",
		},
		{
			Title: "Mathematics for Machine Learning", Platform: "Coursera", Subject: "mathematics",
			SkillsCovered: "mathematics linear algebra calculus statistics",
			Level: LevelIntermediate, QualityScore: 0.88, DurationHours: 45, URL: "https://coursera.org/maths-for-ml",
		},
		{
			Title: "Effective Business Writing", Platform: "edX", Subject: "writing",
			SkillsCovered: "writing business communication reports editing",
			Level: LevelFoundation, QualityScore: 0.7, DurationHours: 12, IsFree: true, URL: "https://edx.org/business-writing",
		},
		{
			Title: "Public Speaking Masterclass", Platform: "Udemy", Subject: "communication",
			SkillsCovered: "speaking presentation public speaking confidence",
			Level: LevelFoundation, QualityScore: 0.72, DurationHours: 10, URL: "https://udemy.com/public-speaking",
		},
		{
			Title: "Leadership and People Management", Platform: "Coursera", Subject: "management",
			SkillsCovered: "leadership management personnel motivation teams",
			Level: LevelIntermediate, QualityScore: 0.82, DurationHours: 20, URL: "https://coursera.org/leadership",
		},
		{
			Title: "Financial Accounting Fundamentals", Platform: "Coursera", Subject: "finance",
			SkillsCovered: "accounting budgeting financial resources bookkeeping",
			Level: LevelFoundation, QualityScore: 0.86, DurationHours: 28, URL: "https://coursera.org/financial-accounting",
		},
		{
			Title: "Customer Service Excellence", Platform: "Udemy", Subject: "customer service",
			SkillsCovered: "service orientation customer care communication empathy",
			Level: LevelFoundation, QualityScore: 0.65, DurationHours: 8, URL: "https://udemy.com/customer-service",
		},
		{
			Title: "Negotiation and Persuasion Skills", Platform: "edX", Subject: "business skills",
			SkillsCovered: "negotiation persuasion influence conflict resolution",
			Level: LevelIntermediate, QualityScore: 0.78, DurationHours: 14, URL: "https://edx.org/negotiation",
		},
		{
			Title: "Equipment Troubleshooting Basics", Platform: "Udemy", Subject: "maintenance",
			SkillsCovered: "troubleshooting repairing equipment maintenance diagnostics",
			Level: LevelFoundation, QualityScore: 0.6, DurationHours: 18, URL: "https://udemy.com/troubleshooting",
		},
		{
			Title: "Data Analysis with Spreadsheets", Platform: "Coursera", Subject: "data analysis",
			SkillsCovered: "data analysis spreadsheets statistics visualisation",
			Level: LevelFoundation, QualityScore: 0.8, DurationHours: 22, IsFree: true, URL: "https://coursera.org/spreadsheets",
		},
		{
			Title: "Advanced Machine Learning Engineering", Platform: "edX", Subject: "machine learning",
			SkillsCovered: "machine learning mlops deployment engineering",
			Level: LevelAdvanced, QualityScore: 0.9, DurationHours: 55, URL: "https://edx.org/advanced-ml",
		},
	}
}
