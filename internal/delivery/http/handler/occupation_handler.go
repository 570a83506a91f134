package handler

import (
	"strings"

	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type OccupationHandler struct {
	uc usecase.OccupationUsecase
}

func NewOccupationHandler(uc usecase.OccupationUsecase) *OccupationHandler {
	return &OccupationHandler{uc: uc}
}

func (h *OccupationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/occupations")
	grp.Get("/", h.List)
	grp.Get("/:title", h.Get)
}

func (h *OccupationHandler) List(c fiber.Ctx) error {
	params := usecase.OccupationListParams{
		Family:  c.Query("family"),
		JobZone: queryInt(c, "job_zone", 0),
		MaxRisk: c.Query("max_risk"),
		Limit:   queryInt(c, "limit", 0),
		Offset:  queryInt(c, "offset", 0),
	}

	page, err := h.uc.List(c.Context(), params)
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, page)
}

// Get resolves one occupation by title, tolerating approximate spellings.
func (h *OccupationHandler) Get(c fiber.Ctx) error {
	detail, err := h.uc.Get(c.Context(), strings.TrimSpace(c.Params("title")))
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, detail)
}
