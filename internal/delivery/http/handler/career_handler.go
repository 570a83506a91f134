package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerHandler struct {
	uc usecase.RecommendUsecase
}

func NewCareerHandler(uc usecase.RecommendUsecase) *CareerHandler {
	return &CareerHandler{uc: uc}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/careers")
	grp.Post("/recommend", h.Recommend)
	grp.Post("/quick", h.Quick)
	grp.Get("/families", h.Families)
}

// Recommend runs the full pipeline: ranked careers with gap reports, risk
// profiles and learning paths.
func (h *CareerHandler) Recommend(c fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	result, err := h.uc.FullPipeline(c.Context(), req.ToInput(), req.TopN, req.CoursesPerGap)
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

// Quick runs ranking only.
func (h *CareerHandler) Quick(c fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	recs, err := h.uc.Quick(c.Context(), req.ToInput(), req.TopN)
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, recs)
}

func (h *CareerHandler) Families(c fiber.Ctx) error {
	families, err := h.uc.Families(c.Context())
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, families)
}
