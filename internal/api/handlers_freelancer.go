package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/venturehub/internal/services"
)

func (handler *Handler) SaveFreelancerProfile(c *fiber.Ctx) error {
	var input services.FreelancerProfileInput
	if err := c.BodyParser(&input); err != nil {
		return handler.apiErrorKey(c, fiber.StatusBadRequest, "request.invalid_body")
	}
	profile, err := handler.freelancerService.SaveProfile(c.UserContext(), viewer(c), input)
	if err != nil {
		return handler.respondServiceError(c, "SaveFreelancerProfile", err)
	}
	return c.JSON(profile)
}

func (handler *Handler) ApplyToStartup(c *fiber.Ctx) error {
	application, err := handler.freelancerService.Apply(c.UserContext(), viewer(c), c.Params("id"), handler.now())
	if err != nil {
		return handler.respondServiceError(c, "ApplyToStartup", err)
	}
	return c.Status(fiber.StatusCreated).JSON(application)
}
