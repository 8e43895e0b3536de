package services

import (
	"context"
	"testing"
	"time"

	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	passwordHashCost = bcrypt.MinCost
}

var testNow = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

func newTestRepositories(t *testing.T) (*store.Store, *store.Repositories, *store.MemoryBackend) {
	t.Helper()
	backend := store.NewMemoryBackend()
	st := store.New(backend)
	return st, store.NewRepositories(st), backend
}

func mustAppendUser(t *testing.T, repos *store.Repositories, user models.User) models.User {
	t.Helper()
	if err := repos.Users.Append(context.Background(), user); err != nil {
		t.Fatalf("append user %s: %v", user.ID, err)
	}
	return user
}

func mustAppendProfile(t *testing.T, repos *store.Repositories, profile models.EntrepreneurProfile) {
	t.Helper()
	if err := repos.EntrepreneurProfiles.Append(context.Background(), profile); err != nil {
		t.Fatalf("append profile %s: %v", profile.UserID, err)
	}
}

func entrepreneur(id string, name string) models.User {
	return models.User{ID: id, Name: name, Email: id + "@example.com", Role: models.RoleEntrepreneur}
}

func investor(id string, name string) models.User {
	return models.User{ID: id, Name: name, Email: id + "@example.com", Role: models.RoleInvestor}
}

func freelancer(id string, name string) models.User {
	return models.User{ID: id, Name: name, Email: id + "@example.com", Role: models.RoleFreelancer}
}

func admin(id string) models.User {
	return models.User{ID: id, Name: "Admin", Email: id + "@example.com", Role: models.RoleAdmin}
}
