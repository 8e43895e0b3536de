package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListContacts(c *fiber.Ctx) error {
	contacts, err := handler.chatService.Contacts(c.UserContext(), viewer(c), handler.now())
	if err != nil {
		return handler.respondServiceError(c, "ListContacts", err)
	}
	return c.JSON(fiber.Map{"contacts": contacts})
}

// OpenThread marks the contact's messages read before returning them.
func (handler *Handler) OpenThread(c *fiber.Ctx) error {
	thread, err := handler.chatService.OpenThread(c.UserContext(), viewer(c), c.Params("contactId"))
	if err != nil {
		return handler.respondServiceError(c, "OpenThread", err)
	}
	return c.JSON(thread)
}

func (handler *Handler) SendMessage(c *fiber.Ctx) error {
	var input messageInput
	if err := c.BodyParser(&input); err != nil {
		return handler.apiErrorKey(c, fiber.StatusBadRequest, "request.invalid_body")
	}
	message, err := handler.chatService.Send(c.UserContext(), viewer(c), c.Params("contactId"), input.Text, handler.now())
	if err != nil {
		return handler.respondServiceError(c, "SendMessage", err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}
