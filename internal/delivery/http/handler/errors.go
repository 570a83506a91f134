package handler

import (
	"errors"

	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// usecaseError maps the usecase sentinel errors onto the response envelope.
func usecaseError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	case errors.Is(err, usecase.ErrOccupationNotFound):
		return response.Error(c, fiber.StatusNotFound, "Occupation not found", nil)
	case errors.Is(err, usecase.ErrUnauthorized):
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	case errors.Is(err, usecase.ErrEngineNotReady):
		return response.Error(c, fiber.StatusServiceUnavailable, "Engine not ready", nil)
	default:
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
}
