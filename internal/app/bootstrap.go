package app

import (
	"fmt"
	"log"
	"strings"

	"career-compass/internal/config"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	v1 "career-compass/internal/delivery/http/routes/v1"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c.Logger)

	deps := v1.Deps{
		Cfg:      c.Config,
		Engines:  c.Engines,
		Cache:    c.Cache,
		Reload:   c.LoadEngine,
		Notifier: ws.NewNotifier(c.Hub),
		Logger:   c.Logger,
	}

	health := handler.NewHealthHandler(c.Engines, c.DB, c.Cache)
	events := ws.NewHandler(c.Hub, c.Logger)

	routes.NewRegistry(health, events, deps).Register(f)

	return &App{Fiber: f}
}

// Bootstrap builds the container and HTTP app. The engine load happens
// inside NewContainer, so by the time Listen is called /ready already
// answers truthfully.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
