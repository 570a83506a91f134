package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RiskHandler struct {
	uc usecase.RiskUsecase
}

func NewRiskHandler(uc usecase.RiskUsecase) *RiskHandler {
	return &RiskHandler{uc: uc}
}

func (h *RiskHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/risk")
	grp.Get("/score", h.Score)
	grp.Post("/score", h.ScorePost)
	grp.Get("/leaderboard", h.Leaderboard)
	grp.Get("/distribution", h.Distribution)
}

func (h *RiskHandler) Score(c fiber.Ctx) error {
	score, err := h.uc.Score(c.Context(), c.Query("occupation"))
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, score)
}

// ScorePost is the body-parameter form of Score.
func (h *RiskHandler) ScorePost(c fiber.Ctx) error {
	var req dto.RiskScoreRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	score, err := h.uc.Score(c.Context(), req.Occupation)
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, score)
}

func (h *RiskHandler) Leaderboard(c fiber.Ctx) error {
	params := usecase.LeaderboardParams{
		N:       queryInt(c, "n", 0),
		Family:  c.Query("family"),
		MaxRisk: c.Query("max_risk"),
	}

	board, err := h.uc.Leaderboard(c.Context(), params)
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, board)
}

func (h *RiskHandler) Distribution(c fiber.Ctx) error {
	dist, err := h.uc.Distribution(c.Context())
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dist)
}
