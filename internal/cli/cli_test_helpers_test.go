package cli

import (
	"context"
	"testing"
	"time"

	"github.com/terraincognita07/venturehub/internal/services"
	"github.com/terraincognita07/venturehub/internal/store"
)

func newTestStore(t *testing.T) (*store.Store, *services.AuthService) {
	t.Helper()
	st := store.New(store.NewMemoryBackend())
	return st, services.NewAuthService(st, store.NewRepositories(st))
}

func seedAdmin(t *testing.T, auth *services.AuthService, email string) {
	t.Helper()
	if _, err := auth.CreateAdmin(context.Background(), "Root", email, "initial-pass", time.Now()); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
}
