package handler

import (
	"context"

	"career-compass/internal/engine"
	"career-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger covers the optional backing services health reports on.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	engines *engine.Holder
	db      Pinger
	cache   Pinger
}

type healthResponse struct {
	Status            string `json:"status"`
	EngineReady       bool   `json:"engine_ready"`
	SemanticAvailable bool   `json:"semantic_available"`
	Occupations       int    `json:"occupations"`
	Courses           int    `json:"courses"`
	Database          string `json:"database"`
	Cache             string `json:"cache"`
}

func NewHealthHandler(engines *engine.Holder, db, cache Pinger) *HealthHandler {
	return &HealthHandler{engines: engines, db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
	r.Get("/health/ready", h.Ready)
}

// Health reports component status. Database and cache are informational;
// the engine alone decides overall status.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	e := h.engines.Get()

	res := healthResponse{
		Status:   "ok",
		Database: pingStatus(c.Context(), h.db),
		Cache:    pingStatus(c.Context(), h.cache),
	}
	if e.Ready() {
		res.EngineReady = true
		res.SemanticAvailable = e.SemanticAvailable()
		res.Occupations = e.Occupations().Len()
		res.Courses = e.Courses().Len()
	} else {
		res.Status = "degraded"
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

// Ready gates load balancer traffic on the engine snapshot being loaded.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	if !h.engines.Get().Ready() {
		return response.Error(c, fiber.StatusServiceUnavailable, "Engine not ready", nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func pingStatus(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "unavailable"
	}
	return "ok"
}
