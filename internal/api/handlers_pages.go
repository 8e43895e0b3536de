package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/venturehub/internal/services"
)

// Page handlers return the view model of each dashboard as JSON. Rendering
// is left to the client.

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if user, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect(services.RedirectPath(user.Role), fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{"page": "login", "language": currentLanguage(c)})
}

func (handler *Handler) ShowEntrepreneurDashboard(c *fiber.Ctx) error {
	view, err := handler.entrepreneurService.Dashboard(c.UserContext(), viewer(c))
	if err != nil {
		return handler.respondServiceError(c, "ShowEntrepreneurDashboard", err)
	}
	return c.JSON(view)
}

func (handler *Handler) ShowInvestorDashboard(c *fiber.Ctx) error {
	var filter services.StartupFilter
	if err := c.QueryParser(&filter); err != nil {
		return handler.apiErrorKey(c, fiber.StatusBadRequest, "request.invalid_body")
	}
	view, err := handler.investorService.Dashboard(c.UserContext(), viewer(c), filter)
	if err != nil {
		return handler.respondServiceError(c, "ShowInvestorDashboard", err)
	}
	return c.JSON(view)
}

func (handler *Handler) ShowFreelancerDashboard(c *fiber.Ctx) error {
	view, err := handler.freelancerService.Dashboard(c.UserContext(), viewer(c))
	if err != nil {
		return handler.respondServiceError(c, "ShowFreelancerDashboard", err)
	}
	return c.JSON(view)
}

func (handler *Handler) ShowAdminDashboard(c *fiber.Ctx) error {
	view, err := handler.adminService.Dashboard(c.UserContext(), viewer(c))
	if err != nil {
		return handler.respondServiceError(c, "ShowAdminDashboard", err)
	}
	return c.JSON(view)
}

func (handler *Handler) ShowChat(c *fiber.Ctx) error {
	user := viewer(c)
	contacts, err := handler.chatService.Contacts(c.UserContext(), user, handler.now())
	if err != nil {
		return handler.respondServiceError(c, "ShowChat", err)
	}
	unread, err := handler.chatService.UnreadTotal(c.UserContext(), user)
	if err != nil {
		return handler.respondServiceError(c, "ShowChat", err)
	}
	return c.JSON(fiber.Map{"contacts": contacts, "unreadTotal": unread})
}

func (handler *Handler) ShowAnalytics(c *fiber.Ctx) error {
	view, err := handler.analyticsService.For(c.UserContext(), viewer(c), handler.now())
	if err != nil {
		return handler.respondServiceError(c, "ShowAnalytics", err)
	}
	if !view.Available {
		return c.JSON(fiber.Map{
			"role":      view.Role,
			"available": false,
			"message":   handler.i18n.Translate(currentLanguage(c), view.MessageKey),
		})
	}
	return c.JSON(view)
}

func (handler *Handler) ShowEvents(c *fiber.Ctx) error {
	month, ok := handler.requestedMonth(c)
	if !ok {
		return handler.apiErrorKey(c, fiber.StatusBadRequest, "request.invalid_month")
	}
	user := viewer(c)
	events, err := handler.pitchService.Events(c.UserContext(), user)
	if err != nil {
		return handler.respondServiceError(c, "ShowEvents", err)
	}
	calendar, err := handler.pitchService.Calendar(c.UserContext(), user, month, handler.now())
	if err != nil {
		return handler.respondServiceError(c, "ShowEvents", err)
	}
	return c.JSON(fiber.Map{"events": events, "calendar": calendar})
}

// requestedMonth reads ?month=YYYY-MM, defaulting to the current month.
func (handler *Handler) requestedMonth(c *fiber.Ctx) (time.Time, bool) {
	raw := c.Query("month")
	if raw == "" {
		return handler.now(), true
	}
	month, err := time.ParseInLocation("2006-01", raw, handler.now().Location())
	if err != nil {
		return time.Time{}, false
	}
	return month, true
}
