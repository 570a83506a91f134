package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/catalog"
	"career-compass/internal/database"
)

// DimensionsSeeder inserts the canonical skill dimension set. Positions fix
// the vector order every occupation requirement row aligns to.
type DimensionsSeeder struct{}

func (DimensionsSeeder) Name() string { return "skill_dimensions" }

func (DimensionsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skill_dimensions", "id", "key", "name", "description", "position"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for i, d := range catalog.DefaultDimensions() {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skill_dimensions (id, key, name, description, position)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4)
			 ON CONFLICT (key) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description, position = EXCLUDED.position`,
			d.Key,
			d.Name,
			d.Description,
			i,
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
