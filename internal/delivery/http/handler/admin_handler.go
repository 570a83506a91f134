package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	uc usecase.AdminUsecase
}

func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// RegisterPublicRoutes mounts login outside the auth guard.
func (h *AdminHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/admin/login", h.Login)
}

// RegisterProtectedRoutes mounts the guarded admin operations.
func (h *AdminHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/admin/reload", h.Reload)
}

func (h *AdminHandler) Login(c fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	token, err := h.uc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AdminLoginResponse{Token: token})
}

// Reload rebuilds the engine from the catalogue sources and swaps it in.
func (h *AdminHandler) Reload(c fiber.Ctx) error {
	result, err := h.uc.Reload(c.Context())
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Catalogue reloaded", result)
}
