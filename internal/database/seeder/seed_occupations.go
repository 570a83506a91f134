package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/catalog"
	"career-compass/internal/database"
)

// OccupationsSeeder inserts the bundled occupation catalogue with its
// per-dimension requirement levels. Existing rows are left untouched so a
// curated production catalogue survives reseeding.
type OccupationsSeeder struct{}

func (OccupationsSeeder) Name() string { return "occupations" }

func (OccupationsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "occupations",
		"id", "code", "title", "career_family", "job_zone", "min_education",
		"demand_level", "growth_category", "automation_risk", "future_proof_score",
		"median_wage", "employment_change_pct"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "occupation_skills", "occupation_id", "dimension_id", "required_level"); err != nil {
		return err
	}

	dims := catalog.DefaultDimensions()

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, o := range catalog.DemoOccupations(dims) {
		affected, err := tx.Exec(
			ctx,
			`INSERT INTO occupations
			 (id, code, title, career_family, job_zone, min_education, demand_level,
			  growth_category, automation_risk, future_proof_score, median_wage, employment_change_pct)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			 ON CONFLICT (code) DO NOTHING`,
			o.Code, o.Title, o.Family, o.JobZone, o.MinEducation, o.DemandLevel,
			o.GrowthCategory, o.AutomationRisk, o.FutureProofScore, o.MedianWage, o.EmploymentChangePct,
		)
		if err != nil {
			return err
		}
		if affected == 0 {
			continue
		}

		for i, d := range dims {
			if i >= len(o.Requirements) || o.Requirements[i] == 0 {
				continue
			}
			_, err := tx.Exec(
				ctx,
				`INSERT INTO occupation_skills (occupation_id, dimension_id, required_level)
				 SELECT o.id, s.id, $3 FROM occupations o, skill_dimensions s
				 WHERE o.code = $1 AND s.key = $2
				 ON CONFLICT (occupation_id, dimension_id) DO NOTHING`,
				o.Code,
				d.Key,
				o.Requirements[i],
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
