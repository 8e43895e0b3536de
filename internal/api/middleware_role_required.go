package api

import (
	"github.com/gofiber/fiber/v2"
)

// RoleRequired is the page guard for one role. Pages redirect to the login
// entry point whatever failed; the API answers 401 or 403.
func (handler *Handler) RoleRequired(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := currentUser(c)
		if !ok {
			if isAPIPath(c.Path()) {
				return handler.apiErrorKey(c, fiber.StatusUnauthorized, "auth.login_required")
			}
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		if user.Role != role {
			if isAPIPath(c.Path()) {
				return handler.apiErrorKey(c, fiber.StatusForbidden, "auth.forbidden")
			}
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
