package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func (handler *Handler) apiErrorKey(c *fiber.Ctx, status int, key string) error {
	return apiError(c, status, handler.i18n.Translate(currentLanguage(c), key))
}

// respondServiceError maps service failures onto HTTP statuses. Anything
// outside the known taxonomy is logged and reported as a 500.
func (handler *Handler) respondServiceError(c *fiber.Ctx, name string, err error) error {
	var validationErr *services.ValidationError
	var authErr *services.AuthError

	switch {
	case errors.As(err, &validationErr):
		status := fiber.StatusBadRequest
		if validationErr.Conflict {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(fiber.Map{
			"error": handler.i18n.Translate(currentLanguage(c), validationErr.Key),
			"field": validationErr.Field,
		})
	case errors.As(err, &authErr):
		return handler.apiErrorKey(c, fiber.StatusUnauthorized, authErr.Key)
	case errors.Is(err, services.ErrConfirmationRequired):
		return handler.apiErrorKey(c, fiber.StatusConflict, "confirmation.required")
	case errors.Is(err, services.ErrForbidden):
		return handler.apiErrorKey(c, fiber.StatusForbidden, "auth.forbidden")
	case errors.Is(err, services.ErrLoginRequired):
		return handler.apiErrorKey(c, fiber.StatusUnauthorized, "auth.login_required")
	default:
		handler.logger.Error().Err(err).Str("handler", name).Str("path", c.Path()).Msg("request failed")
		return handler.apiErrorKey(c, fiber.StatusInternalServerError, "server.internal")
	}
}

// viewer returns the user placed in the locals by AuthRequired.
func viewer(c *fiber.Ctx) models.User {
	user, ok := currentUser(c)
	if !ok {
		return models.User{}
	}
	return *user
}
