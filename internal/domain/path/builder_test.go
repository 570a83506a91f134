package path

import (
	"fmt"
	"testing"

	"career-compass/internal/domain/gap"
	"career-compass/internal/search"
)

// fakeSearcher returns one course per query, optionally only for a level.
type fakeSearcher struct {
	onlyLevel string
	duration  float64
	fixed     string
}

func (f fakeSearcher) Search(query string, topK int, levelFilter string, minQuality float64) []search.CourseMatch {
	if f.onlyLevel != "" && levelFilter != "" && levelFilter != f.onlyLevel {
		return nil
	}
	title := f.fixed
	if title == "" {
		title = fmt.Sprintf("Course for %s", query)
	}
	return []search.CourseMatch{{
		CourseTitle:   title,
		Level:         levelFilter,
		DurationHours: f.duration,
	}}
}

func gapEntries(n int) []gap.Entry {
	out := make([]gap.Entry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, gap.Entry{Key: fmt.Sprintf("skill_%d", i)})
	}
	return out
}

func TestBuildRoundRobinAssignment(t *testing.T) {
	report := gap.Report{TopGaps: gapEntries(6)}
	levels := []string{"Foundation", "Intermediate", "Advanced"}

	p := Build(report, "graduate", 1, levels, fakeSearcher{duration: 10})

	if len(p.Stages) != 3 {
		t.Fatalf("stages = %d, want 3", len(p.Stages))
	}
	// gaps distribute by index modulo stage count: {0,3} {1,4} {2,5}
	wantTitles := [][]string{
		{"Course for skill_0", "Course for skill_3"},
		{"Course for skill_1", "Course for skill_4"},
		{"Course for skill_2", "Course for skill_5"},
	}
	for si, stage := range p.Stages {
		if stage.Stage != si+1 {
			t.Errorf("stage %d numbered %d", si, stage.Stage)
		}
		if len(stage.Courses) != 2 {
			t.Fatalf("stage %d courses = %d, want 2", si+1, len(stage.Courses))
		}
		for ci, c := range stage.Courses {
			if c.CourseTitle != wantTitles[si][ci] {
				t.Errorf("stage %d course %d = %q, want %q", si+1, ci, c.CourseTitle, wantTitles[si][ci])
			}
		}
	}
}

func TestBuildCapsStagesAtThree(t *testing.T) {
	report := gap.Report{TopGaps: gapEntries(4)}
	levels := []string{"Foundation", "Intermediate", "Advanced", "Expert"}

	p := Build(report, "graduate", 1, levels, fakeSearcher{})
	if len(p.Stages) != 3 {
		t.Fatalf("stages = %d, want cap at 3", len(p.Stages))
	}
}

func TestBuildCapsGapsPerStage(t *testing.T) {
	report := gap.Report{TopGaps: gapEntries(12)}

	p := Build(report, "graduate", 1, []string{"Foundation"}, fakeSearcher{})
	if len(p.Stages[0].Courses) != 4 {
		t.Fatalf("stage courses = %d, want 4 gaps per stage", len(p.Stages[0].Courses))
	}
}

func TestBuildDedupesByTitle(t *testing.T) {
	report := gap.Report{TopGaps: gapEntries(3)}

	p := Build(report, "graduate", 2, []string{"Foundation"}, fakeSearcher{fixed: "Same Course"})
	if len(p.Stages[0].Courses) != 1 {
		t.Fatalf("stage courses = %d, want 1 after dedupe", len(p.Stages[0].Courses))
	}
}

func TestBuildDefaultDuration(t *testing.T) {
	report := gap.Report{TopGaps: gapEntries(1)}

	p := Build(report, "graduate", 1, []string{"Foundation"}, fakeSearcher{duration: 0})
	if p.Stages[0].HoursEst != 20 {
		t.Errorf("hours = %v, want default 20", p.Stages[0].HoursEst)
	}
	if p.TotalHours != 20 {
		t.Errorf("total hours = %v, want 20", p.TotalHours)
	}
}

func TestBuildRetriesWithoutLevelFilter(t *testing.T) {
	report := gap.Report{TopGaps: gapEntries(1)}

	// the searcher only answers Advanced queries, so the Foundation stage
	// must fall back to an unfiltered search
	p := Build(report, "graduate", 1, []string{"Foundation"}, fakeSearcher{onlyLevel: "Advanced"})
	if len(p.Stages[0].Courses) != 1 {
		t.Fatalf("stage courses = %d, want 1 from the unfiltered retry", len(p.Stages[0].Courses))
	}
}

func TestBuildNormalizesUserType(t *testing.T) {
	p := Build(gap.Report{}, "  Graduate ", 1, nil, fakeSearcher{})
	if p.UserType != "graduate" {
		t.Errorf("user type = %q, want graduate", p.UserType)
	}
	if len(p.Stages) != 2 {
		t.Errorf("default stages = %d, want 2", len(p.Stages))
	}
}
