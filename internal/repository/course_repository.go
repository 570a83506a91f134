package repository

import (
	"context"

	"career-compass/internal/catalog"
	"career-compass/internal/database"
)

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

func (r *PostgresCourseRepository) ListCourses(ctx context.Context) ([]catalog.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT title, platform, subject, skills_covered, level, quality_score, duration_hours, is_free, url
		FROM courses ORDER BY title ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Course, 0)
	for rows.Next() {
		var c catalog.Course
		if err := rows.Scan(
			&c.Title, &c.Platform, &c.Subject, &c.SkillsCovered, &c.Level,
			&c.QualityScore, &c.DurationHours, &c.IsFree, &c.URL,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
