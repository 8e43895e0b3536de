package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListEvents(c *fiber.Ctx) error {
	events, err := handler.pitchService.Events(c.UserContext(), viewer(c))
	if err != nil {
		return handler.respondServiceError(c, "ListEvents", err)
	}
	return c.JSON(fiber.Map{"events": events})
}

func (handler *Handler) RegisterForEvent(c *fiber.Ctx) error {
	registration, err := handler.pitchService.Register(c.UserContext(), viewer(c), c.Params("id"), handler.now())
	if err != nil {
		return handler.respondServiceError(c, "RegisterForEvent", err)
	}
	return c.Status(fiber.StatusCreated).JSON(registration)
}

func (handler *Handler) EventCalendar(c *fiber.Ctx) error {
	month, ok := handler.requestedMonth(c)
	if !ok {
		return handler.apiErrorKey(c, fiber.StatusBadRequest, "request.invalid_month")
	}
	calendar, err := handler.pitchService.Calendar(c.UserContext(), viewer(c), month, handler.now())
	if err != nil {
		return handler.respondServiceError(c, "EventCalendar", err)
	}
	return c.JSON(calendar)
}
