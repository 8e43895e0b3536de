// Package session carries the authenticated user between operations.
//
// A Holder is the explicit replacement for a process-wide "current user":
// every operation that depends on who is logged in receives one. The
// snapshot it returns is taken at login and is not re-read from the users
// collection; code that changes the current user's own record must Save a
// fresh snapshot.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/terraincognita07/venturehub/internal/models"
)

var (
	ErrLoginRequired = errors.New("login required")
	ErrWrongRole     = fmt.Errorf("%w: role mismatch", ErrLoginRequired)
)

type Holder interface {
	Load(ctx context.Context) (models.User, bool, error)
	Save(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}

// Current returns the logged-in user or ErrLoginRequired.
func Current(ctx context.Context, holder Holder) (models.User, error) {
	user, ok, err := holder.Load(ctx)
	if err != nil {
		return models.User{}, err
	}
	if !ok || user.ID == "" {
		return models.User{}, ErrLoginRequired
	}
	return user, nil
}

// Require is the page guard: it passes only when a user is logged in and,
// when role is not empty, holds exactly that role.
func Require(ctx context.Context, holder Holder, role string) (models.User, error) {
	user, err := Current(ctx, holder)
	if err != nil {
		return models.User{}, err
	}
	if role != "" && user.Role != role {
		return models.User{}, ErrWrongRole
	}
	return user, nil
}
