package app

import (
	"context"
	"log"
	"os"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/database/migration"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/database/seeder"
	"career-compass/internal/engine"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/repository"
	"career-compass/internal/ws"
)

// Container owns every long-lived dependency. The database is optional: if
// it cannot be reached the engine loads the bundled demo catalogue and the
// service still starts.
type Container struct {
	Config  config.Config
	DB      database.DB
	Cache   *cache.Redis
	Hub     *ws.Hub
	Engines *engine.Holder
	Logger  *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Engines: &engine.Holder{},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.connectDatabase(ctx)
	c.Cache = cache.NewRedis(logger)

	c.Hub = ws.NewHub(logger)
	go c.Hub.Run()

	e := c.LoadEngine(ctx)
	c.Engines.Set(e)
	ws.NewNotifier(c.Hub).Broadcast("engine.ready", map[string]any{
		"occupations": e.Occupations().Len(),
		"courses":     e.Courses().Len(),
	})

	return c, nil
}

func (c *Container) connectDatabase(ctx context.Context) {
	db, err := dbpostgres.Connect(ctx, c.Config.Database)
	if err != nil {
		c.Logger.Printf("App | database unavailable, using bundled catalogue: %v", err)
		return
	}

	if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
		c.Logger.Printf("App | migrations failed, using bundled catalogue: %v", err)
		_ = db.Close()
		return
	}
	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
		c.Logger.Printf("App | seeding failed: %v", err)
	}

	c.DB = db
}

// LoadEngine builds a fresh engine snapshot from the catalogue sources.
// Admin reload reuses this to swap in updated data without a restart.
func (c *Container) LoadEngine(ctx context.Context) *engine.Engine {
	params := engine.LoadParams{
		ArtifactsDir: c.Config.Engine.ArtifactsDir,
		Logger:       c.Logger,
	}
	if c.DB != nil {
		params.Occupations = repository.NewPostgresOccupationRepository(c.DB)
		params.Courses = repository.NewPostgresCourseRepository(c.DB)
	}
	return engine.Load(ctx, params)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
