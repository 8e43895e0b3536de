package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/venturehub/internal/models"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/login", handler.ShowLoginPage)
	app.Get("/entrepreneur", handler.AuthRequired, handler.RoleRequired(models.RoleEntrepreneur), handler.ShowEntrepreneurDashboard)
	app.Get("/investor", handler.AuthRequired, handler.RoleRequired(models.RoleInvestor), handler.ShowInvestorDashboard)
	app.Get("/freelancer", handler.AuthRequired, handler.RoleRequired(models.RoleFreelancer), handler.ShowFreelancerDashboard)
	app.Get("/admin", handler.AuthRequired, handler.RoleRequired(models.RoleAdmin), handler.ShowAdminDashboard)
	app.Get("/chat", handler.AuthRequired, handler.ShowChat)
	app.Get("/analytics", handler.AuthRequired, handler.ShowAnalytics)
	app.Get("/events", handler.AuthRequired, handler.ShowEvents)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", handler.SignUp)
	auth.Post("/login", handler.LogIn)
	auth.Post("/logout", handler.AuthRequired, handler.LogOut)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	entrepreneur := api.Group("/entrepreneur", handler.AuthRequired, handler.RoleRequired(models.RoleEntrepreneur))
	entrepreneur.Put("/profile", handler.SaveEntrepreneurProfile)
	entrepreneur.Post("/milestones", handler.AddMilestone)
	entrepreneur.Delete("/milestones/:id", handler.DeleteMilestone)
	entrepreneur.Post("/team", handler.AddTeamMember)
	entrepreneur.Delete("/team/:id", handler.RemoveTeamMember)
	entrepreneur.Post("/settings", handler.UpdateEntrepreneurSettings)
	entrepreneur.Delete("/account", handler.DeleteEntrepreneurAccount)
	entrepreneur.Get("/applications", handler.ReceivedApplications)
	entrepreneur.Post("/applications/:id/decision", handler.DecideApplication)

	investor := api.Group("/investor", handler.AuthRequired, handler.RoleRequired(models.RoleInvestor))
	investor.Get("/startups", handler.BrowseStartups)
	investor.Get("/startups/:id", handler.StartupDetails)
	investor.Post("/startups/:id/interest", handler.ExpressInterest)
	investor.Post("/startups/:id/funding", handler.RecordFunding)

	freelancer := api.Group("/freelancer", handler.AuthRequired, handler.RoleRequired(models.RoleFreelancer))
	freelancer.Put("/profile", handler.SaveFreelancerProfile)
	freelancer.Post("/startups/:id/apply", handler.ApplyToStartup)

	chat := api.Group("/chat", handler.AuthRequired)
	chat.Get("/contacts", handler.ListContacts)
	chat.Get("/threads/:contactId", handler.OpenThread)
	chat.Post("/threads/:contactId/messages", handler.SendMessage)

	admin := api.Group("/admin", handler.AuthRequired, handler.RoleRequired(models.RoleAdmin))
	admin.Post("/startups/:id/approve", handler.ApproveStartup)
	admin.Post("/startups/:id/reject", handler.RejectStartup)
	admin.Delete("/users/:id", handler.DeleteUser)
	admin.Get("/activity", handler.RecentActivity)
	admin.Post("/events", handler.CreatePitchEvent)

	events := api.Group("/events", handler.AuthRequired)
	events.Get("", handler.ListEvents)
	events.Get("/calendar", handler.EventCalendar)
	events.Post("/:id/register", handler.RegisterForEvent)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
