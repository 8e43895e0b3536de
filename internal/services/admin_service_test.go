package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/terraincognita07/venturehub/internal/models"
)

func TestApprovalLifecycleKeepsOneRecordAndLogsEachAction(t *testing.T) {
	ctx := context.Background()
	_, repos, _ := newTestRepositories(t)
	service := NewAdminService(repos)
	viewer := admin("root")
	mustAppendProfile(t, repos, models.EntrepreneurProfile{UserID: "u1", StartupName: "Alpha"})

	if err := service.Approve(ctx, viewer, "u1", testNow); err != nil {
		t.Fatalf("approve: %v", err)
	}
	approvals, _ := repos.Approvals.All(ctx)
	logs, _ := repos.ActivityLogs.All(ctx)
	if len(approvals) != 1 || approvals[0].StartupID != "u1" || !approvals[0].Approved {
		t.Fatalf("expected one approved record, got %+v", approvals)
	}
	if len(logs) != 1 || logs[0].Action != "Approved startup for user u1" {
		t.Fatalf("expected one approval log, got %+v", logs)
	}

	if err := service.Reject(ctx, viewer, "u1", true, testNow.Add(time.Minute)); err != nil {
		t.Fatalf("reject: %v", err)
	}
	approvals, _ = repos.Approvals.All(ctx)
	logs, _ = repos.ActivityLogs.All(ctx)
	if len(approvals) != 1 || approvals[0].Approved {
		t.Fatalf("expected same record flipped to false, got %+v", approvals)
	}
	if !approvals[0].Date.Equal(testNow) {
		t.Fatalf("expected original approval date kept, got %v", approvals[0].Date)
	}
	if len(logs) != 2 || logs[1].Action != "Rejected startup for user u1" {
		t.Fatalf("expected two log entries, got %+v", logs)
	}

	view, err := service.Dashboard(ctx, viewer)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(view.Approvals) != 1 || view.Approvals[0].Status != ApprovalRejected {
		t.Fatalf("unexpected approval rows %+v", view.Approvals)
	}
}

func TestDeclinedDestructiveAdminActionsWriteNothing(t *testing.T) {
	ctx := context.Background()
	_, repos, backend := newTestRepositories(t)
	service := NewAdminService(repos)
	viewer := admin("root")
	mustAppendUser(t, repos, entrepreneur("u1", "Eve"))

	before, _ := backend.Keys(ctx)
	if err := service.Reject(ctx, viewer, "u1", false, testNow); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if err := service.DeleteUser(ctx, viewer, "u1", false, testNow); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	after, _ := backend.Keys(ctx)
	if len(before) != len(after) {
		t.Fatalf("expected no new collections, before=%v after=%v", before, after)
	}
	if users, _ := repos.Users.All(ctx); len(users) != 1 {
		t.Fatalf("expected user kept")
	}

	if err := service.DeleteUser(ctx, viewer, "u1", true, testNow); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	logs, _ := repos.ActivityLogs.All(ctx)
	if len(logs) != 1 || logs[0].Action != "Deleted user u1" {
		t.Fatalf("expected delete log, got %+v", logs)
	}
}

func TestAdminActionsRequireAdminRole(t *testing.T) {
	ctx := context.Background()
	_, repos, _ := newTestRepositories(t)
	service := NewAdminService(repos)
	intruder := entrepreneur("e1", "Eve")

	if _, err := service.Dashboard(ctx, intruder); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := service.Approve(ctx, intruder, "e1", testNow); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on approve, got %v", err)
	}
	if approvals, _ := repos.Approvals.All(ctx); len(approvals) != 0 {
		t.Fatalf("expected no approval written")
	}
}

func TestRecentActivityIsNewestFirstAndCapped(t *testing.T) {
	ctx := context.Background()
	_, repos, _ := newTestRepositories(t)
	service := NewAdminService(repos)

	for index := 0; index < 25; index++ {
		entry := models.ActivityLog{Action: fmt.Sprintf("action %d", index), Timestamp: testNow.Add(time.Duration(index) * time.Minute)}
		if err := repos.ActivityLogs.Append(ctx, entry); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	logs, err := service.RecentActivity(ctx)
	if err != nil {
		t.Fatalf("recent activity: %v", err)
	}
	if len(logs) != activityLogLimit {
		t.Fatalf("expected %d logs, got %d", activityLogLimit, len(logs))
	}
	if logs[0].Action != "action 24" || logs[len(logs)-1].Action != "action 5" {
		t.Fatalf("unexpected ordering: first=%q last=%q", logs[0].Action, logs[len(logs)-1].Action)
	}
}

func TestCreateEventValidatesInput(t *testing.T) {
	ctx := context.Background()
	_, repos, _ := newTestRepositories(t)
	service := NewAdminService(repos)
	viewer := admin("root")

	if _, err := service.CreateEvent(ctx, viewer, PitchEventInput{Date: "2025-04-01"}, testNow); !errors.Is(err, ErrEventIncomplete) {
		t.Fatalf("expected ErrEventIncomplete, got %v", err)
	}
	if _, err := service.CreateEvent(ctx, viewer, PitchEventInput{Title: "Demo Day", Date: "April 1"}, testNow); !errors.Is(err, ErrEventDate) {
		t.Fatalf("expected ErrEventDate, got %v", err)
	}
	event, err := service.CreateEvent(ctx, viewer, PitchEventInput{Title: "Demo Day", Date: "2025-04-01", Location: "Hall A"}, testNow)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if event.ID == "" || event.Location != "Hall A" {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestCountRoles(t *testing.T) {
	counts := CountRoles([]models.User{
		entrepreneur("e1", "Eve"),
		entrepreneur("e2", "Sam"),
		investor("i1", "Ivan"),
		freelancer("f1", "Finn"),
		admin("root"),
	})
	want := RoleCounts{TotalUsers: 5, Entrepreneurs: 2, Investors: 1, Freelancers: 1, Admins: 1}
	if counts != want {
		t.Fatalf("CountRoles = %+v, want %+v", counts, want)
	}
}
