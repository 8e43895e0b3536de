package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/venturehub/internal/services"
)

func (handler *Handler) ApproveStartup(c *fiber.Ctx) error {
	if err := handler.adminService.Approve(c.UserContext(), viewer(c), c.Params("id"), handler.now()); err != nil {
		return handler.respondServiceError(c, "ApproveStartup", err)
	}
	return c.JSON(fiber.Map{"ok": true, "status": "approved"})
}

func (handler *Handler) RejectStartup(c *fiber.Ctx) error {
	err := handler.adminService.Reject(c.UserContext(), viewer(c), c.Params("id"), c.QueryBool("confirm"), handler.now())
	if err != nil {
		return handler.respondServiceError(c, "RejectStartup", err)
	}
	return c.JSON(fiber.Map{"ok": true, "status": "rejected"})
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	err := handler.adminService.DeleteUser(c.UserContext(), viewer(c), c.Params("id"), c.QueryBool("confirm"), handler.now())
	if err != nil {
		return handler.respondServiceError(c, "DeleteUser", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) RecentActivity(c *fiber.Ctx) error {
	logs, err := handler.adminService.RecentActivity(c.UserContext())
	if err != nil {
		return handler.respondServiceError(c, "RecentActivity", err)
	}
	return c.JSON(fiber.Map{"logs": logs})
}

func (handler *Handler) CreatePitchEvent(c *fiber.Ctx) error {
	var input services.PitchEventInput
	if err := c.BodyParser(&input); err != nil {
		return handler.apiErrorKey(c, fiber.StatusBadRequest, "request.invalid_body")
	}
	event, err := handler.adminService.CreateEvent(c.UserContext(), viewer(c), input, handler.now())
	if err != nil {
		return handler.respondServiceError(c, "CreatePitchEvent", err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}
