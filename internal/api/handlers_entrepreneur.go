package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/venturehub/internal/services"
)

func (handler *Handler) SaveEntrepreneurProfile(c *fiber.Ctx) error {
	var input services.EntrepreneurProfileInput
	if err := c.BodyParser(&input); err != nil {
		return handler.apiErrorKey(c, fiber.StatusBadRequest, "request.invalid_body")
	}
	profile, err := handler.entrepreneurService.SaveProfile(c.UserContext(), viewer(c), input)
	if err != nil {
		return handler.respondServiceError(c, "SaveEntrepreneurProfile", err)
	}
	return c.JSON(profile)
}

func (handler *Handler) AddMilestone(c *fiber.Ctx) error {
	var input services.MilestoneInput
	if err := c.BodyParser(&input); err != nil {
		return handler.apiErrorKey(c, fiber.StatusBadRequest, "request.invalid_body")
	}
	milestone, err := handler.entrepreneurService.AddMilestone(c.UserContext(), viewer(c), input)
	if err != nil {
		return handler.respondServiceError(c, "AddMilestone", err)
	}
	return c.Status(fiber.StatusCreated).JSON(milestone)
}

func (handler *Handler) DeleteMilestone(c *fiber.Ctx) error {
	if err := handler.entrepreneurService.DeleteMilestone(c.UserContext(), viewer(c), c.Params("id")); err != nil {
		return handler.respondServiceError(c, "DeleteMilestone", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) AddTeamMember(c *fiber.Ctx) error {
	var input services.TeamMemberInput
	if err := c.BodyParser(&input); err != nil {
		return handler.apiErrorKey(c, fiber.StatusBadRequest, "request.invalid_body")
	}
	member, err := handler.entrepreneurService.AddTeamMember(c.UserContext(), viewer(c), input)
	if err != nil {
		return handler.respondServiceError(c, "AddTeamMember", err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

func (handler *Handler) RemoveTeamMember(c *fiber.Ctx) error {
	err := handler.entrepreneurService.RemoveTeamMember(c.UserContext(), viewer(c), c.Params("id"), c.QueryBool("confirm"))
	if err != nil {
		return handler.respondServiceError(c, "RemoveTeamMember", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) UpdateEntrepreneurSettings(c *fiber.Ctx) error {
	var input services.SettingsInput
	if err := c.BodyParser(&input); err != nil {
		return handler.apiErrorKey(c, fiber.StatusBadRequest, "request.invalid_body")
	}
	if err := handler.entrepreneurService.UpdateSettings(c.UserContext(), handler.holder(c), viewer(c), input); err != nil {
		return handler.respondServiceError(c, "UpdateEntrepreneurSettings", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteEntrepreneurAccount(c *fiber.Ctx) error {
	err := handler.entrepreneurService.DeleteAccount(c.UserContext(), handler.holder(c), viewer(c), c.QueryBool("confirm"))
	if err != nil {
		return handler.respondServiceError(c, "DeleteEntrepreneurAccount", err)
	}
	return c.JSON(fiber.Map{"ok": true, "redirect": "/login"})
}

func (handler *Handler) ReceivedApplications(c *fiber.Ctx) error {
	applications, err := handler.entrepreneurService.Applications(c.UserContext(), viewer(c))
	if err != nil {
		return handler.respondServiceError(c, "ReceivedApplications", err)
	}
	return c.JSON(fiber.Map{"applications": applications})
}

func (handler *Handler) DecideApplication(c *fiber.Ctx) error {
	var input decisionInput
	if err := c.BodyParser(&input); err != nil {
		return handler.apiErrorKey(c, fiber.StatusBadRequest, "request.invalid_body")
	}
	if err := handler.entrepreneurService.DecideApplication(c.UserContext(), viewer(c), c.Params("id"), input.Status); err != nil {
		return handler.respondServiceError(c, "DecideApplication", err)
	}
	return c.JSON(fiber.Map{"ok": true, "status": input.Status})
}
