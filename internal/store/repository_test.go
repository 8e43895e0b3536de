package store

import (
	"context"
	"testing"

	"github.com/terraincognita07/venturehub/internal/models"
)

func newTestRepositories(t *testing.T) (*Repositories, *MemoryBackend) {
	t.Helper()
	backend := NewMemoryBackend()
	return NewRepositories(New(backend)), backend
}

func TestListForFiltersByOwnerFieldExactly(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestRepositories(t)

	for _, milestone := range []models.Milestone{
		{ID: "m1", UserID: "u1", Date: "2024-01-01", Description: "seed"},
		{ID: "m2", UserID: "u2", Date: "2024-02-01", Description: "mvp"},
		{ID: "m3", UserID: "U1", Date: "2024-03-01", Description: "case differs"},
		{ID: "m4", UserID: "u1", Date: "2024-04-01", Description: "launch"},
	} {
		if err := repos.Milestones.Append(ctx, milestone); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	owned, err := repos.Milestones.ListFor(ctx, "u1")
	if err != nil {
		t.Fatalf("list for: %v", err)
	}
	if len(owned) != 2 || owned[0].ID != "m1" || owned[1].ID != "m4" {
		t.Fatalf("expected m1 and m4 in stored order, got %+v", owned)
	}
}

func TestListForWithoutOwnerFieldReturnsEverything(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestRepositories(t)

	for _, event := range []models.PitchEvent{{ID: "e1"}, {ID: "e2"}} {
		if err := repos.PitchEvents.Append(ctx, event); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	events, err := repos.PitchEvents.ListFor(ctx, "anyone")
	if err != nil {
		t.Fatalf("list for: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected both events, got %d", len(events))
	}
}

func TestUpsertReplacesFirstMatchOrAppends(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestRepositories(t)
	byUser := func(userID string) func(models.EntrepreneurProfile) bool {
		return func(profile models.EntrepreneurProfile) bool { return profile.UserID == userID }
	}

	replaced, err := repos.EntrepreneurProfiles.Upsert(ctx, models.EntrepreneurProfile{UserID: "u1", StartupName: "First"}, byUser("u1"))
	if err != nil || replaced {
		t.Fatalf("expected append on first upsert, replaced=%v err=%v", replaced, err)
	}
	replaced, err = repos.EntrepreneurProfiles.Upsert(ctx, models.EntrepreneurProfile{UserID: "u1", StartupName: "Second", Domain: "fintech"}, byUser("u1"))
	if err != nil || !replaced {
		t.Fatalf("expected replace on second upsert, replaced=%v err=%v", replaced, err)
	}

	profiles, err := repos.EntrepreneurProfiles.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected exactly one profile per user, got %d", len(profiles))
	}
	if profiles[0].StartupName != "Second" || profiles[0].Domain != "fintech" {
		t.Fatalf("expected whole record replaced, got %+v", profiles[0])
	}
}

func TestRemoveWhereKeepsOtherAndUndecodableRecords(t *testing.T) {
	ctx := context.Background()
	repos, backend := newTestRepositories(t)

	if err := backend.Set(ctx, TeamMembers, `[{"id":"t1","userId":"u1"},{"id":7},{"id":"t2","userId":"u1"},{"id":"t3","userId":"u2"}]`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	removed, err := repos.TeamMembers.RemoveWhere(ctx, func(member models.TeamMember) bool {
		return member.UserID == "u1"
	})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}

	raw, _, err := backend.Get(ctx, TeamMembers)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if raw != `[{"id":7},{"id":"t3","userId":"u2"}]` {
		t.Fatalf("unexpected remaining payload %s", raw)
	}
}

func TestSetWhereUpdatesOnlyMatchingRecords(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestRepositories(t)

	for _, message := range []models.Message{
		{ID: "m1", FromID: "a", ToID: "b", Text: "hi"},
		{ID: "m2", FromID: "b", ToID: "a", Text: "hello"},
		{ID: "m3", FromID: "c", ToID: "b", Text: "other"},
	} {
		if err := repos.Messages.Append(ctx, message); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	changed, err := repos.Messages.SetWhere(ctx, func(message models.Message) bool {
		return message.ToID == "b" && message.FromID == "a"
	}, "read", true)
	if err != nil {
		t.Fatalf("set where: %v", err)
	}
	if changed != 1 {
		t.Fatalf("expected one message changed, got %d", changed)
	}

	messages, err := repos.Messages.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	for _, message := range messages {
		if message.Read != (message.ID == "m1") {
			t.Fatalf("unexpected read flag on %s: %v", message.ID, message.Read)
		}
	}
}

func TestFindByMissingRecordReportsNotFound(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestRepositories(t)

	_, ok, err := repos.Users.FindBy(ctx, "id", "ghost")
	if err != nil {
		t.Fatalf("find by: %v", err)
	}
	if ok {
		t.Fatalf("expected missing user to be reported as not found")
	}
}
