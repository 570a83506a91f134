package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.GapUsecase
}

type dimensionResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewSkillHandler(uc usecase.GapUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Post("/gap", h.Gap)
	grp.Get("/dimensions", h.Dimensions)
}

// Gap scores the profile against one named occupation, optionally with a
// learning path for the top gaps.
func (h *SkillHandler) Gap(c fiber.Ctx) error {
	var req dto.GapRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	result, err := h.uc.Analyze(c.Context(), req.ToInput(), req.Occupation, req.IncludePath)
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func (h *SkillHandler) Dimensions(c fiber.Ctx) error {
	dims, err := h.uc.Dimensions(c.Context())
	if err != nil {
		return usecaseError(c, err)
	}

	res := make([]dimensionResponse, 0, len(dims))
	for _, d := range dims {
		res = append(res, dimensionResponse{Key: d.Key, Name: d.Name, Description: d.Description})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
