package catalog

// Course is one row of the unified course catalogue.
type Course struct {
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

const (
	LevelFoundation   = "Foundation"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// CourseSet is the immutable course catalogue snapshot.
type CourseSet struct {
	courses []Course
}

func NewCourseSet(courses []Course) *CourseSet {
	cleaned := make([]Course, 0, len(courses))
	for _, c := range courses {
		c.QualityScore = SafeFloat(c.QualityScore, 0)
		c.DurationHours = SafeFloat(c.DurationHours, 0)
		cleaned = append(cleaned, c)
	}
	return &CourseSet{courses: cleaned}
}

func (s *CourseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.courses)
}

func (s *CourseSet) All() []Course {
	if s == nil {
		return nil
	}
	return s.courses
}

// PlatformCounts returns course counts per platform.
func (s *CourseSet) PlatformCounts() map[string]int {
	out := make(map[string]int)
	if s == nil {
		return out
	}
	for _, c := range s.courses {
		if c.Platform == "" {
			continue
		}
		out[c.Platform]++
	}
	return out
}
