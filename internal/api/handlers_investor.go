package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/venturehub/internal/services"
)

func (handler *Handler) BrowseStartups(c *fiber.Ctx) error {
	var filter services.StartupFilter
	if err := c.QueryParser(&filter); err != nil {
		return handler.apiErrorKey(c, fiber.StatusBadRequest, "request.invalid_body")
	}
	startups, err := handler.investorService.Browse(c.UserContext(), viewer(c), filter)
	if err != nil {
		return handler.respondServiceError(c, "BrowseStartups", err)
	}
	return c.JSON(fiber.Map{"startups": startups})
}

func (handler *Handler) StartupDetails(c *fiber.Ctx) error {
	details, err := handler.investorService.Details(c.UserContext(), c.Params("id"))
	if err != nil {
		return handler.respondServiceError(c, "StartupDetails", err)
	}
	return c.JSON(details)
}

func (handler *Handler) ExpressInterest(c *fiber.Ctx) error {
	feedback, err := handler.investorService.ExpressInterest(c.UserContext(), viewer(c), c.Params("id"), handler.now())
	if err != nil {
		return handler.respondServiceError(c, "ExpressInterest", err)
	}
	return c.Status(fiber.StatusCreated).JSON(feedback)
}

func (handler *Handler) RecordFunding(c *fiber.Ctx) error {
	var input fundingInput
	if err := c.BodyParser(&input); err != nil {
		return handler.apiErrorKey(c, fiber.StatusBadRequest, "request.invalid_body")
	}
	record, err := handler.investorService.RecordFunding(c.UserContext(), viewer(c), c.Params("id"), input.Amount, handler.now())
	if err != nil {
		return handler.respondServiceError(c, "RecordFunding", err)
	}
	return c.JSON(fiber.Map{"funding": record, "amountLabel": services.FormatCurrency(record.Amount)})
}
