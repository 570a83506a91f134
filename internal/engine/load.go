package engine

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"

	"career-compass/internal/artifact"
	"career-compass/internal/catalog"
	"career-compass/internal/domain/profile"
	"career-compass/internal/domain/ranking"
	"career-compass/internal/domain/risk"
	"career-compass/internal/search"
)

// OccupationSource supplies the master catalogue rows at load time.
type OccupationSource interface {
	ListDimensions(ctx context.Context) ([]catalog.Dimension, error)
	ListOccupations(ctx context.Context, dims []catalog.Dimension) ([]catalog.Occupation, error)
}

// CourseSource supplies the course catalogue rows at load time.
type CourseSource interface {
	ListCourses(ctx context.Context) ([]catalog.Course, error)
}

// LoadParams configures the single startup load. Both sources and the
// encoder are optional: a missing or failing source degrades to the demo
// catalogue, a missing encoder selects keyword vectorization.
type LoadParams struct {
	Occupations  OccupationSource
	Courses      CourseSource
	ArtifactsDir string
	Encoder      artifact.Encoder
	Logger       *log.Logger
}

// Load builds a ready engine. It never fails outright over missing data;
// every input has a documented fallback so the process always starts.
func Load(ctx context.Context, p LoadParams) *Engine {
	logger := p.Logger

	dims := loadDimensions(ctx, p.Occupations, logger)
	occs := loadOccupations(ctx, p.Occupations, dims, logger)
	courses := loadCourses(ctx, p.Courses, logger)
	tables := loadTables(p.ArtifactsDir, logger)

	semantic := loadSemantic(p.ArtifactsDir, p.Encoder, len(dims), logger)
	reranker := loadReranker(p.ArtifactsDir, len(dims), logger)

	occSet := catalog.NewOccupationSet(dims, occs)
	courseSet := catalog.NewCourseSet(courses)
	categorizer := risk.New(tables.RiskBands)

	e := &Engine{
		dims:        dims,
		occupations: occSet,
		courses:     courseSet,
		tables:      tables,
		normalizer:  profile.NewNormalizer(tables.SkillSynonyms, tables.CBCPathwaySkills, tables.KCSESubjectSkills),
		vectorizer:  profile.NewVectorizer(dims, semantic, logger),
		risk:        categorizer,
		index:       search.NewIndex(courseDocuments(courseSet)),
		logger:      logger,
	}
	e.ranker = ranking.New(ranking.Params{
		Occupations: occSet,
		Zones:       tables.UserTypeJobZones,
		GoalBoosts:  tables.GoalBoosts,
		Risk:        categorizer,
		Reranker:    reranker,
		Logger:      logger,
	})
	e.loaded.Store(true)

	if logger != nil {
		logger.Printf("Engine loaded | occupations=%d courses=%d dims=%d semantic=%t reranker=%t",
			occSet.Len(), courseSet.Len(), len(dims), semantic.Available(), reranker.Available())
	}
	return e
}

func loadDimensions(ctx context.Context, src OccupationSource, logger *log.Logger) []catalog.Dimension {
	if src != nil {
		dims, err := src.ListDimensions(ctx)
		if err == nil && len(dims) > 0 {
			return dims
		}
		if err != nil && logger != nil {
			logger.Printf("Engine load | dimension source failed, using defaults: %v", err)
		}
	}
	return catalog.DefaultDimensions()
}

func loadOccupations(ctx context.Context, src OccupationSource, dims []catalog.Dimension, logger *log.Logger) []catalog.Occupation {
	if src != nil {
		occs, err := src.ListOccupations(ctx, dims)
		if err == nil && len(occs) > 0 {
			return occs
		}
		if err != nil && logger != nil {
			logger.Printf("Engine load | occupation source failed, using demo catalogue: %v", err)
		}
	}
	return catalog.DemoOccupations(dims)
}

func loadCourses(ctx context.Context, src CourseSource, logger *log.Logger) []catalog.Course {
	if src != nil {
		courses, err := src.ListCourses(ctx)
		if err == nil && len(courses) > 0 {
			return courses
		}
		if err != nil && logger != nil {
			logger.Printf("Engine load | course source failed, using demo catalogue: %v", err)
		}
	}
	return catalog.DemoCourses()
}

// table artifact file names; each overrides one default table when present.
const (
	synonymsFile  = "skill_synonym_map.json"
	cbcFile       = "cbc_pathway_skills.json"
	kcseFile      = "kcse_subject_skills.json"
	zonesFile     = "user_type_job_zones.json"
	boostsFile    = "career_goal_boosts.json"
	eduLevelsFile = "education_course_levels.json"
)

func loadTables(dir string, logger *log.Logger) Tables {
	t := DefaultTables()
	if dir == "" {
		return t
	}
	readTable(dir, synonymsFile, &t.SkillSynonyms, logger)
	readTable(dir, cbcFile, &t.CBCPathwaySkills, logger)
	readTable(dir, kcseFile, &t.KCSESubjectSkills, logger)
	readTable(dir, zonesFile, &t.UserTypeJobZones, logger)
	readTable(dir, boostsFile, &t.GoalBoosts, logger)
	readTable(dir, eduLevelsFile, &t.EduCourseLevels, logger)
	return t
}

func readTable[T any](dir, name string, out *T, logger *log.Logger) {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		if logger != nil {
			logger.Printf("Engine load | bad table artifact %s, keeping default: %v", name, err)
		}
		return
	}
	*out = v
}

func loadSemantic(dir string, enc artifact.Encoder, dimCount int, logger *log.Logger) *artifact.Semantic {
	if enc == nil {
		return nil
	}
	vecs, err := artifact.LoadDimVectors(dir)
	if err != nil {
		if logger != nil {
			logger.Printf("Engine load | dim vectors unusable, semantic mode off: %v", err)
		}
		return nil
	}
	if len(vecs) != dimCount {
		if len(vecs) > 0 && logger != nil {
			logger.Printf("Engine load | dim vectors count=%d does not match dims=%d, semantic mode off", len(vecs), dimCount)
		}
		return nil
	}
	return &artifact.Semantic{Encoder: enc, DimVectors: vecs}
}

func loadReranker(dir string, dimCount int, logger *log.Logger) *artifact.Ranker {
	r, err := artifact.LoadRanker(dir)
	if err != nil {
		if logger != nil {
			logger.Printf("Engine load | reranker unusable, blending off: %v", err)
		}
		return nil
	}
	if r != nil && len(r.Model.Coef) != dimCount {
		if logger != nil {
			logger.Printf("Engine load | reranker features=%d do not match dims=%d, blending off", len(r.Model.Coef), dimCount)
		}
		return nil
	}
	return r
}

func courseDocuments(set *catalog.CourseSet) []search.Document {
	courses := set.All()
	docs := make([]search.Document, 0, len(courses))
	for _, c := range courses {
		docs = append(docs, search.Document{
			Title:         c.Title,
			Platform:      c.Platform,
			Subject:       c.Subject,
			SkillsCovered: c.SkillsCovered,
			Level:         c.Level,
			QualityScore:  c.QualityScore,
			DurationHours: c.DurationHours,
			IsFree:        c.IsFree,
			URL:           c.URL,
		})
	}
	return docs
}

// Holder publishes the current engine snapshot. Admin reload builds a fresh
// engine and swaps it in; readers always see a complete snapshot or nil.
type Holder struct {
	cur atomic.Pointer[Engine]
}

func (h *Holder) Get() *Engine {
	if h == nil {
		return nil
	}
	return h.cur.Load()
}

func (h *Holder) Set(e *Engine) {
	if h == nil {
		return
	}
	h.cur.Store(e)
}
