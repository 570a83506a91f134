package catalog

import "strings"

// Dimension is one skill axis shared by every occupation requirement vector
// and every user profile. The slice order fixed at load time is the contract
// that makes cosine similarity between vectors valid.
type Dimension struct {
	Key         string
	Name        string
	Description string
}

func DisplayName(key string) string {
	s := strings.TrimPrefix(key, "skill_")
	s = strings.ReplaceAll(s, "_", " ")
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// DefaultDimensions mirrors the 35 O*NET basic and cross-functional skills.
func DefaultDimensions() []Dimension {
	defs := []struct {
		key  string
		desc string
	}{
		{"skill_reading_comprehension", "understanding written sentences and paragraphs in work related documents reading comprehension"},
		{"skill_active_listening", "giving full attention to what other people are saying listening communication"},
		{"skill_writing", "communicating effectively in writing reports documentation writing"},
		{"skill_speaking", "talking to others to convey information effectively speaking presentation public speaking communication"},
		{"skill_mathematics", "using mathematics to solve problems arithmetic algebra statistics mathematics maths"},
		{"skill_science", "using scientific rules and methods to solve problems science research laboratory"},
		{"skill_critical_thinking", "using logic and reasoning to identify strengths and weaknesses of solutions critical thinking analysis"},
		{"skill_active_learning", "understanding the implications of new information for problem solving learning curiosity"},
		{"skill_learning_strategies", "selecting and using training methods appropriate for teaching or learning new things"},
		{"skill_monitoring", "monitoring and assessing performance of yourself other individuals or organisations"},
		{"skill_social_perceptiveness", "being aware of others reactions and understanding why they react as they do empathy"},
		{"skill_coordination", "adjusting actions in relation to others actions teamwork collaboration"},
		{"skill_persuasion", "persuading others to change their minds or behaviour influence sales"},
		{"skill_negotiation", "bringing others together and trying to reconcile differences negotiation"},
		{"skill_instructing", "teaching others how to do something instructing training mentoring teaching"},
		{"skill_service_orientation", "actively looking for ways to help people customer service care"},
		{"skill_complex_problem_solving", "identifying complex problems and reviewing related information to develop and evaluate options problem solving"},
		{"skill_operations_analysis", "analysing needs and product requirements to create a design requirements analysis"},
		{"skill_technology_design", "generating or adapting equipment and technology to serve user needs design engineering"},
		{"skill_equipment_selection", "determining the kind of tools and equipment needed to do a job"},
		{"skill_installation", "installing equipment machines wiring or programs to meet specifications"},
		{"skill_programming", "writing computer programs for various purposes programming coding software development python java javascript"},
		{"skill_operations_monitoring", "watching gauges dials or other indicators to make sure a machine is working properly"},
		{"skill_operation_and_control", "controlling operations of equipment or systems machine operation"},
		{"skill_equipment_maintenance", "performing routine maintenance on equipment and determining when maintenance is needed"},
		{"skill_troubleshooting", "determining causes of operating errors and deciding what to do about it debugging troubleshooting"},
		{"skill_repairing", "repairing machines or systems using the needed tools repair mechanics"},
		{"skill_quality_control_analysis", "conducting tests and inspections of products services or processes to evaluate quality testing"},
		{"skill_judgment_and_decision_making", "considering the relative costs and benefits of potential actions to choose the most appropriate one decision making judgement"},
		{"skill_systems_analysis", "determining how a system should work and how changes will affect outcomes systems analysis architecture"},
		{"skill_systems_evaluation", "identifying measures of system performance and the actions needed to improve performance evaluation"},
		{"skill_time_management", "managing ones own time and the time of others planning organisation time management"},
		{"skill_management_of_financial_resources", "determining how money will be spent to get the work done accounting budgeting finance"},
		{"skill_management_of_material_resources", "obtaining and overseeing the appropriate use of equipment facilities and materials logistics procurement"},
		{"skill_management_of_personnel_resources", "motivating developing and directing people as they work leadership management people"},
	}

	dims := make([]Dimension, 0, len(defs))
	for _, d := range defs {
		dims = append(dims, Dimension{
			Key:         d.key,
			Name:        DisplayName(d.key),
			Description: d.desc,
		})
	}
	return dims
}
