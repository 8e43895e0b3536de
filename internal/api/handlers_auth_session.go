package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/services"
)

func (handler *Handler) SignUp(c *fiber.Ctx) error {
	var input services.SignUpInput
	if err := c.BodyParser(&input); err != nil {
		return handler.apiErrorKey(c, fiber.StatusBadRequest, "request.invalid_body")
	}

	user, err := handler.authService.SignUp(c.UserContext(), handler.holder(c), input, handler.now())
	if err != nil {
		return handler.respondServiceError(c, "SignUp", err)
	}
	return c.Status(fiber.StatusCreated).JSON(sessionResponse(user))
}

func (handler *Handler) LogIn(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return handler.apiErrorKey(c, fiber.StatusBadRequest, "request.invalid_body")
	}

	user, err := handler.authService.LogIn(c.UserContext(), handler.holder(c), input.Email, input.Password)
	if err != nil {
		return handler.respondServiceError(c, "LogIn", err)
	}
	return c.JSON(sessionResponse(user))
}

func (handler *Handler) LogOut(c *fiber.Ctx) error {
	if err := handler.authService.LogOut(c.UserContext(), handler.holder(c)); err != nil {
		return handler.respondServiceError(c, "LogOut", err)
	}
	return c.JSON(fiber.Map{"ok": true, "redirect": "/login"})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok, err := handler.authService.CurrentUser(c.UserContext(), handler.holder(c))
	if err != nil {
		return handler.respondServiceError(c, "Me", err)
	}
	if !ok {
		return handler.apiErrorKey(c, fiber.StatusUnauthorized, "auth.login_required")
	}
	return c.JSON(fiber.Map{"user": user})
}

func sessionResponse(user models.User) fiber.Map {
	return fiber.Map{
		"user":     user,
		"role":     user.Role,
		"redirect": services.RedirectPath(user.Role),
	}
}
