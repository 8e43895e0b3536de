package api

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/session"
)

// cookieHolder is the per-request session: the snapshot lives in the signed
// auth cookie and is mirrored into the request locals.
type cookieHolder struct {
	handler *Handler
	c       *fiber.Ctx
}

var _ session.Holder = cookieHolder{}

func (handler *Handler) holder(c *fiber.Ctx) cookieHolder {
	return cookieHolder{handler: handler, c: c}
}

func (holder cookieHolder) Load(context.Context) (models.User, bool, error) {
	if user, ok := currentUser(holder.c); ok {
		return *user, true, nil
	}
	user, err := holder.handler.authenticateRequest(holder.c)
	if err != nil {
		return models.User{}, false, nil
	}
	return *user, true, nil
}

func (holder cookieHolder) Save(_ context.Context, user models.User) error {
	if err := holder.handler.setAuthCookie(holder.c, user); err != nil {
		return err
	}
	snapshot := user.Snapshot()
	holder.c.Locals(contextUserKey, &snapshot)
	return nil
}

func (holder cookieHolder) Clear(context.Context) error {
	holder.handler.clearAuthCookie(holder.c)
	holder.c.Locals(contextUserKey, nil)
	return nil
}
