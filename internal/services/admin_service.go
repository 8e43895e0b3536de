package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/store"
)

// activityLogLimit caps how many log entries the admin dashboard shows.
const activityLogLimit = 20

type AdminService struct {
	repos *store.Repositories
}

func NewAdminService(repos *store.Repositories) *AdminService {
	return &AdminService{repos: repos}
}

type UserRow struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	RoleLabel string    `json:"roleLabel"`
	CreatedAt time.Time `json:"createdAt"`
}

type RoleCounts struct {
	TotalUsers    int `json:"totalUsers"`
	Entrepreneurs int `json:"totalEntrepreneurs"`
	Investors     int `json:"totalInvestors"`
	Freelancers   int `json:"totalFreelancers"`
	Admins        int `json:"totalAdmins"`
}

type ApprovalRow struct {
	StartupID        string `json:"startupId"`
	StartupName      string `json:"startupName"`
	EntrepreneurName string `json:"entrepreneurName"`
	Domain           string `json:"domain"`
	IdeaSummary      string `json:"ideaSummary"`
	Approved         bool   `json:"approved"`
	Status           string `json:"status"`
}

type AdminDashboard struct {
	Users     []UserRow            `json:"users"`
	Stats     RoleCounts           `json:"stats"`
	Approvals []ApprovalRow        `json:"approvals"`
	Logs      []models.ActivityLog `json:"logs"`
	Events    []models.PitchEvent  `json:"events"`
}

type PitchEventInput struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (service *AdminService) Dashboard(ctx context.Context, viewer models.User) (AdminDashboard, error) {
	if err := requireAdmin(viewer); err != nil {
		return AdminDashboard{}, err
	}

	users, err := service.repos.Users.All(ctx)
	if err != nil {
		return AdminDashboard{}, err
	}
	view := AdminDashboard{Users: make([]UserRow, 0, len(users))}
	for _, user := range users {
		view.Users = append(view.Users, UserRow{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			RoleLabel: models.RoleLabel(user.Role),
			CreatedAt: user.CreatedAt,
		})
	}
	view.Stats = CountRoles(users)

	if view.Approvals, err = service.approvalRows(ctx); err != nil {
		return view, err
	}
	if view.Logs, err = service.RecentActivity(ctx); err != nil {
		return view, err
	}
	if view.Events, err = service.repos.PitchEvents.All(ctx); err != nil {
		return view, err
	}
	return view, nil
}

func CountRoles(users []models.User) RoleCounts {
	counts := RoleCounts{TotalUsers: len(users)}
	for _, user := range users {
		switch user.Role {
		case models.RoleEntrepreneur:
			counts.Entrepreneurs++
		case models.RoleInvestor:
			counts.Investors++
		case models.RoleFreelancer:
			counts.Freelancers++
		case models.RoleAdmin:
			counts.Admins++
		}
	}
	return counts
}

func (service *AdminService) Approve(ctx context.Context, viewer models.User, startupID string, now time.Time) error {
	if err := requireAdmin(viewer); err != nil {
		return err
	}
	if err := service.setApproval(ctx, startupID, true, now); err != nil {
		return err
	}
	return service.logActivity(ctx, fmt.Sprintf("Approved startup for user %s", startupID), now)
}

func (service *AdminService) Reject(ctx context.Context, viewer models.User, startupID string, confirmed bool, now time.Time) error {
	if err := requireAdmin(viewer); err != nil {
		return err
	}
	if err := requireConfirmation(confirmed); err != nil {
		return err
	}
	if err := service.setApproval(ctx, startupID, false, now); err != nil {
		return err
	}
	return service.logActivity(ctx, fmt.Sprintf("Rejected startup for user %s", startupID), now)
}

// DeleteUser removes the user record only; nothing cascades.
func (service *AdminService) DeleteUser(ctx context.Context, viewer models.User, userID string, confirmed bool, now time.Time) error {
	if err := requireAdmin(viewer); err != nil {
		return err
	}
	if err := requireConfirmation(confirmed); err != nil {
		return err
	}
	if _, err := service.repos.Users.RemoveWhere(ctx, func(user models.User) bool {
		return user.ID == userID
	}); err != nil {
		return err
	}
	return service.logActivity(ctx, fmt.Sprintf("Deleted user %s", userID), now)
}

// RecentActivity returns the newest log entries first, at most
// activityLogLimit of them.
func (service *AdminService) RecentActivity(ctx context.Context) ([]models.ActivityLog, error) {
	logs, err := service.repos.ActivityLogs.All(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	if len(logs) > activityLogLimit {
		logs = logs[:activityLogLimit]
	}
	return logs, nil
}

func (service *AdminService) CreateEvent(ctx context.Context, viewer models.User, input PitchEventInput, now time.Time) (models.PitchEvent, error) {
	if err := requireAdmin(viewer); err != nil {
		return models.PitchEvent{}, err
	}
	input.Title = trimmed(input.Title)
	input.Date = trimmed(input.Date)
	if err := validateInput(input, map[string]*ValidationError{
		"title": ErrEventIncomplete,
		"date":  ErrEventIncomplete,
	}); err != nil {
		return models.PitchEvent{}, err
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return models.PitchEvent{}, ErrEventDate
	}

	event := models.PitchEvent{
		ID:          models.NewID(),
		Title:       input.Title,
		Date:        input.Date,
		Location:    trimmed(input.Location),
		Description: trimmed(input.Description),
	}
	if err := service.repos.PitchEvents.Append(ctx, event); err != nil {
		return models.PitchEvent{}, err
	}
	if err := service.logActivity(ctx, fmt.Sprintf("Created pitch event %s", event.Title), now); err != nil {
		return models.PitchEvent{}, err
	}
	return event, nil
}

// setApproval keeps a single approval row per startup: the first existing
// row is flipped in place, otherwise a new one is appended.
func (service *AdminService) setApproval(ctx context.Context, startupID string, approved bool, now time.Time) error {
	forStartup := func(approval models.StartupApproval) bool {
		return approval.StartupID == startupID
	}
	exists, err := service.repos.Approvals.Exists(ctx, forStartup)
	if err != nil {
		return err
	}
	if !exists {
		return service.repos.Approvals.Append(ctx, models.StartupApproval{
			StartupID: startupID,
			Approved:  approved,
			Date:      now.UTC(),
		})
	}

	first := true
	_, err = service.repos.Approvals.SetWhere(ctx, func(approval models.StartupApproval) bool {
		if !forStartup(approval) || !first {
			return false
		}
		first = false
		return true
	}, "approved", approved)
	return err
}

func (service *AdminService) logActivity(ctx context.Context, action string, now time.Time) error {
	return service.repos.ActivityLogs.Append(ctx, models.ActivityLog{Action: action, Timestamp: now.UTC()})
}

func (service *AdminService) approvalRows(ctx context.Context) ([]ApprovalRow, error) {
	profiles, _, err := startupProfilesByUser(ctx, service.repos)
	if err != nil {
		return nil, err
	}
	users, err := usersByID(ctx, service.repos)
	if err != nil {
		return nil, err
	}
	approvals, err := service.repos.Approvals.All(ctx)
	if err != nil {
		return nil, err
	}
	byStartup := make(map[string]models.StartupApproval, len(approvals))
	for _, approval := range approvals {
		if _, seen := byStartup[approval.StartupID]; !seen {
			byStartup[approval.StartupID] = approval
		}
	}

	rows := make([]ApprovalRow, 0, len(profiles))
	for _, profile := range profiles {
		row := ApprovalRow{
			StartupID:        profile.UserID,
			StartupName:      orPlaceholder(profile.StartupName, models.PlaceholderUnnamedStartup),
			EntrepreneurName: userName(users, profile.UserID, models.PlaceholderNA),
			Domain:           orPlaceholder(profile.Domain, models.PlaceholderNA),
			IdeaSummary:      orPlaceholder(profile.IdeaSummary, models.PlaceholderNoDescShort),
			Status:           ApprovalPending,
		}
		if approval, ok := byStartup[profile.UserID]; ok {
			row.Approved = approval.Approved
			row.Status = approvalStatus(approval)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func requireAdmin(viewer models.User) error {
	if viewer.Role != models.RoleAdmin {
		return ErrForbidden
	}
	return nil
}
