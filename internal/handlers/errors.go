package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/autoassist/auto-assist-api/internal/dto"
	"github.com/autoassist/auto-assist-api/internal/services"
	"github.com/autoassist/auto-assist-api/internal/storage"
)

// fail maps a service error onto the status taxonomy and writes the flat
// error envelope. Store failures are never retried and never expose details.
func fail(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError

	switch {
	case errors.As(err, &ve),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrNoImage),
		errors.Is(err, storage.ErrUnsupportedType),
		errors.Is(err, storage.ErrTooLarge):
		return respondError(c, fiber.StatusBadRequest, err.Error())

	case errors.Is(err, services.ErrInvalidCredentials):
		return respondError(c, fiber.StatusUnauthorized, err.Error())

	case errors.Is(err, services.ErrForbidden):
		return respondError(c, fiber.StatusForbidden, err.Error())

	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrVehicleNotFound),
		errors.Is(err, services.ErrReminderNotFound),
		errors.Is(err, services.ErrNoUsers),
		errors.Is(err, services.ErrNoVehicles),
		errors.Is(err, services.ErrNoReminders),
		errors.Is(err, services.ErrNoCatalogData):
		return respondError(c, fiber.StatusNotFound, err.Error())

	default:
		slog.Error("unhandled service error", "route", c.Path(), "error", err.Error())
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Message: message})
}

func unauthorized(c *fiber.Ctx) error {
	return respondError(c, fiber.StatusUnauthorized, "unauthorized")
}

func badRequest(c *fiber.Ctx, message string) error {
	return respondError(c, fiber.StatusBadRequest, message)
}
