package repository

import (
	"context"

	"career-compass/internal/catalog"
	"career-compass/internal/database"
)

// PostgresOccupationRepository reads the master catalogue tables. The engine
// consumes the result as an immutable snapshot; nothing here runs on the
// request path.
type PostgresOccupationRepository struct {
	db database.DB
}

func NewPostgresOccupationRepository(db database.DB) *PostgresOccupationRepository {
	return &PostgresOccupationRepository{db: db}
}

func (r *PostgresOccupationRepository) ListDimensions(ctx context.Context) ([]catalog.Dimension, error) {
	rows, err := r.db.Query(ctx, `SELECT key, name, description FROM skill_dimensions ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Dimension, 0)
	for rows.Next() {
		var d catalog.Dimension
		if err := rows.Scan(&d.Key, &d.Name, &d.Description); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresOccupationRepository) ListOccupations(ctx context.Context, dims []catalog.Dimension) ([]catalog.Occupation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT code, title, career_family, job_zone, min_education, demand_level,
		       growth_category, automation_risk, future_proof_score, median_wage, employment_change_pct
		FROM occupations ORDER BY title ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[string]int, len(dims))
	for i, d := range dims {
		index[d.Key] = i
	}

	byCode := make(map[string]int)
	out := make([]catalog.Occupation, 0)
	for rows.Next() {
		var o catalog.Occupation
		if err := rows.Scan(
			&o.Code, &o.Title, &o.Family, &o.JobZone, &o.MinEducation, &o.DemandLevel,
			&o.GrowthCategory, &o.AutomationRisk, &o.FutureProofScore, &o.MedianWage, &o.EmploymentChangePct,
		); err != nil {
			return nil, err
		}
		o.Requirements = make([]float64, len(dims))
		byCode[o.Code] = len(out)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return out, nil
	}

	reqRows, err := r.db.Query(ctx, `
		SELECT o.code, s.key, os.required_level
		FROM occupation_skills os
		JOIN occupations o ON o.id = os.occupation_id
		JOIN skill_dimensions s ON s.id = os.dimension_id`)
	if err != nil {
		return nil, err
	}
	defer reqRows.Close()

	for reqRows.Next() {
		var code, key string
		var level float64
		if err := reqRows.Scan(&code, &key, &level); err != nil {
			return nil, err
		}
		oi, ok := byCode[code]
		if !ok {
			continue
		}
		di, ok := index[key]
		if !ok {
			continue
		}
		out[oi].Requirements[di] = level
	}
	if err := reqRows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
