package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/store"
)

func TestRequireChecksPresenceAndRole(t *testing.T) {
	ctx := context.Background()
	holder := NewMemoryHolder()

	if _, err := Require(ctx, holder, models.RoleInvestor); !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected ErrLoginRequired without a user, got %v", err)
	}

	if err := holder.Save(ctx, models.User{ID: "u1", Role: models.RoleEntrepreneur, Password: "secret"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	_, err := Require(ctx, holder, models.RoleInvestor)
	if !errors.Is(err, ErrWrongRole) || !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected wrong role to be a login redirect, got %v", err)
	}

	user, err := Require(ctx, holder, models.RoleEntrepreneur)
	if err != nil {
		t.Fatalf("expected matching role to pass, got %v", err)
	}
	if user.Password != "" {
		t.Fatalf("expected snapshot without password")
	}
	if _, err := Require(ctx, holder, ""); err != nil {
		t.Fatalf("expected any role to pass with empty role, got %v", err)
	}
}

func TestStoreHolderPersistsSnapshotUnderCurrentUserKey(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	holder := NewStoreHolder(store.New(backend))

	if err := holder.Save(ctx, models.User{ID: "u1", Name: "Ada", Password: "hash", Role: models.RoleFreelancer}); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, ok, err := backend.Get(ctx, store.CurrentUser)
	if err != nil || !ok {
		t.Fatalf("expected currentUser key, ok=%v err=%v", ok, err)
	}
	if raw == "" || strings.Contains(raw, `"password"`) {
		t.Fatalf("unexpected stored snapshot %s", raw)
	}

	user, ok, err := holder.Load(ctx)
	if err != nil || !ok || user.ID != "u1" {
		t.Fatalf("expected to load u1, got %+v ok=%v err=%v", user, ok, err)
	}

	if err := holder.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := holder.Load(ctx); ok {
		t.Fatalf("expected no user after clear")
	}
}

func TestStoreHolderTreatsCorruptSnapshotAsLoggedOut(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	if err := backend.Set(ctx, store.CurrentUser, "{broken"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := Current(ctx, NewStoreHolder(store.New(backend))); !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected ErrLoginRequired, got %v", err)
	}
}
