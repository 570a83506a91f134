package handler

import (
	"strconv"
	"strings"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CourseHandler struct {
	uc usecase.CourseUsecase
}

func NewCourseHandler(uc usecase.CourseUsecase) *CourseHandler {
	return &CourseHandler{uc: uc}
}

func (h *CourseHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/courses")
	grp.Get("/search", h.Search)
	grp.Post("/search", h.SearchPost)
	grp.Get("/platforms", h.Platforms)
	grp.Get("/levels", h.Levels)
}

func (h *CourseHandler) Search(c fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	topK := queryInt(c, "top_k", 0)
	level := strings.TrimSpace(c.Query("level"))
	minQuality := queryFloat(c, "min_quality", 0)

	matches, err := h.uc.Search(c.Context(), query, topK, level, minQuality)
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, matches)
}

// SearchPost is the body-parameter form of Search.
func (h *CourseHandler) SearchPost(c fiber.Ctx) error {
	var req dto.CourseSearchRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	matches, err := h.uc.Search(c.Context(), strings.TrimSpace(req.Query), req.TopK, req.Level, req.MinQuality)
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, matches)
}

func (h *CourseHandler) Platforms(c fiber.Ctx) error {
	platforms, err := h.uc.Platforms(c.Context())
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, platforms)
}

func (h *CourseHandler) Levels(c fiber.Ctx) error {
	levels, err := h.uc.Levels(c.Context(), c.Query("user_type"))
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, levels)
}

func queryInt(c fiber.Ctx, key string, def int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func queryFloat(c fiber.Ctx, key string, def float64) float64 {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}
