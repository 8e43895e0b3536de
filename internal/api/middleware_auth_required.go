package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		if isAPIPath(c.Path()) {
			return handler.apiErrorKey(c, fiber.StatusUnauthorized, "auth.login_required")
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}
