package path

import (
	"fmt"
	"math"
	"strings"

	"career-compass/internal/domain/gap"
	"career-compass/internal/search"
)

const (
	maxStages        = 3
	maxGapsPerStage  = 4
	defaultHours     = 20.0
	defaultMinQuality = 0.3
)

var defaultLevels = []string{"Foundation", "Intermediate"}

// Searcher is the course retrieval the builder draws from.
type Searcher interface {
	Search(query string, topK int, levelFilter string, minQuality float64) []search.CourseMatch
}

// Stage is one level of the learning path with its deduplicated courses.
type Stage struct {
	Stage    int                  `json:"stage"`
	Level    string               `json:"level"`
	Title    string               `json:"title"`
	Courses  []search.CourseMatch `json:"courses"`
	HoursEst float64              `json:"hours_est"`
}

// Path is the full multi-stage learning plan for one gap report.
type Path struct {
	Stages     []Stage `json:"stages"`
	TotalHours float64 `json:"total_hours"`
	UserType   string  `json:"user_type"`
}

// Build assembles one stage per applicable course level for the user type
// (capped at three) and distributes the top gaps round-robin across stages
// by index modulo stage count.
func Build(report gap.Report, userType string, coursesPerGap int, levels []string, courses Searcher) Path {
	if len(levels) == 0 {
		levels = defaultLevels
	}
	if len(levels) > maxStages {
		levels = levels[:maxStages]
	}
	if coursesPerGap < 1 {
		coursesPerGap = 1
	}

	stages := make([]Stage, 0, len(levels))
	totalHours := 0.0

	for stageIdx, level := range levels {
		stageGaps := make([]gap.Entry, 0, maxGapsPerStage)
		for i, g := range report.TopGaps {
			if i%len(levels) != stageIdx {
				continue
			}
			if len(stageGaps) >= maxGapsPerStage {
				break
			}
			stageGaps = append(stageGaps, g)
		}

		found := make([]search.CourseMatch, 0, len(stageGaps)*coursesPerGap)
		for _, g := range stageGaps {
			matches := courses.Search(g.Key, coursesPerGap, level, defaultMinQuality)
			if len(matches) == 0 {
				// a gap is better covered off-level than not at all
				matches = courses.Search(g.Key, coursesPerGap, "", defaultMinQuality)
			}
			found = append(found, matches...)
		}

		unique := dedupeByTitle(found)
		hours := 0.0
		for _, c := range unique {
			if c.DurationHours > 0 {
				hours += c.DurationHours
			} else {
				hours += defaultHours
			}
		}
		totalHours += hours

		stages = append(stages, Stage{
			Stage:    stageIdx + 1,
			Level:    level,
			Title:    fmt.Sprintf("Stage %d: %s", stageIdx+1, level),
			Courses:  unique,
			HoursEst: math.Round(hours),
		})
	}

	return Path{
		Stages:     stages,
		TotalHours: math.Round(totalHours),
		UserType:   strings.ToLower(strings.TrimSpace(userType)),
	}
}

func dedupeByTitle(courses []search.CourseMatch) []search.CourseMatch {
	seen := make(map[string]bool, len(courses))
	out := make([]search.CourseMatch, 0, len(courses))
	for _, c := range courses {
		if seen[c.CourseTitle] {
			continue
		}
		seen[c.CourseTitle] = true
		out = append(out, c)
	}
	return out
}
