package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/catalog"
	"career-compass/internal/database"
)

type CoursesSeeder struct{}

func (CoursesSeeder) Name() string { return "courses" }

func (CoursesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "courses",
		"id", "title", "platform", "subject", "skills_covered", "level",
		"quality_score", "duration_hours", "is_free", "url"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, c := range catalog.DemoCourses() {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO courses
			 (id, title, platform, subject, skills_covered, level, quality_score, duration_hours, is_free, url)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (title) DO NOTHING`,
			c.Title, c.Platform, c.Subject, c.SkillsCovered, c.Level,
			c.QualityScore, c.DurationHours, c.IsFree, c.URL,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
