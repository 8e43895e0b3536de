package services

import (
	"context"
	"fmt"
	"time"

	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/session"
	"github.com/terraincognita07/venturehub/internal/store"
)

type EntrepreneurService struct {
	repos *store.Repositories
}

func NewEntrepreneurService(repos *store.Repositories) *EntrepreneurService {
	return &EntrepreneurService{repos: repos}
}

type EntrepreneurStats struct {
	Milestones       int `json:"activeMilestones"`
	TeamMembers      int `json:"teamMembers"`
	InvestorInterest int `json:"investorInterest"`
	MessageContacts  int `json:"messageCount"`
}

type EntrepreneurDashboard struct {
	User           models.User                `json:"user"`
	Profile        models.EntrepreneurProfile `json:"profile"`
	HasProfile     bool                       `json:"hasProfile"`
	ApprovalStatus string                     `json:"approvalStatus"`
	Milestones     []models.Milestone         `json:"milestones"`
	Feedback       []models.InvestorFeedback  `json:"feedback"`
	Team           []models.TeamMember        `json:"team"`
	Stats          EntrepreneurStats          `json:"stats"`
}

type EntrepreneurProfileInput struct {
	StartupName string `json:"startupName"`
	Domain      string `json:"domain"`
	IdeaSummary string `json:"ideaSummary"`
	Stage       string `json:"stage"`
}

type MilestoneInput struct {
	Date        string `json:"date" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type TeamMemberInput struct {
	Name   string `json:"name" validate:"required"`
	Skills string `json:"skills" validate:"required"`
}

type SettingsInput struct {
	NewPassword    string `json:"newPassword"`
	ProfileVisible bool   `json:"profileVisible"`
}

type ReceivedApplication struct {
	ID             string    `json:"id"`
	FreelancerID   string    `json:"freelancerId"`
	FreelancerName string    `json:"freelancerName"`
	Status         string    `json:"status"`
	StatusLabel    string    `json:"statusLabel"`
	Date           time.Time `json:"date"`
}

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

func (service *EntrepreneurService) Dashboard(ctx context.Context, user models.User) (EntrepreneurDashboard, error) {
	view := EntrepreneurDashboard{User: user.Snapshot(), ApprovalStatus: ApprovalPending}

	profile, found, err := service.repos.EntrepreneurProfiles.FindBy(ctx, "userId", user.ID)
	if err != nil {
		return view, err
	}
	view.Profile, view.HasProfile = profile, found

	approval, approved, err := service.repos.Approvals.FindBy(ctx, "startupId", user.ID)
	if err != nil {
		return view, err
	}
	if approved {
		view.ApprovalStatus = approvalStatus(approval)
	}

	if view.Milestones, err = service.repos.Milestones.ListFor(ctx, user.ID); err != nil {
		return view, err
	}
	if view.Feedback, err = service.repos.Feedback.ListFor(ctx, user.ID); err != nil {
		return view, err
	}
	if view.Team, err = service.repos.TeamMembers.ListFor(ctx, user.ID); err != nil {
		return view, err
	}
	contacts, err := service.messageContactCount(ctx, user.ID)
	if err != nil {
		return view, err
	}

	view.Stats = EntrepreneurStats{
		Milestones:       len(view.Milestones),
		TeamMembers:      len(view.Team),
		InvestorInterest: len(view.Feedback),
		MessageContacts:  contacts,
	}
	return view, nil
}

// SaveProfile replaces the user's profile record as a whole.
func (service *EntrepreneurService) SaveProfile(ctx context.Context, user models.User, input EntrepreneurProfileInput) (models.EntrepreneurProfile, error) {
	profile := models.EntrepreneurProfile{
		UserID:      user.ID,
		StartupName: trimmed(input.StartupName),
		Domain:      trimmed(input.Domain),
		IdeaSummary: trimmed(input.IdeaSummary),
		Stage:       trimmed(input.Stage),
	}
	_, err := service.repos.EntrepreneurProfiles.Upsert(ctx, profile, func(existing models.EntrepreneurProfile) bool {
		return existing.UserID == user.ID
	})
	if err != nil {
		return models.EntrepreneurProfile{}, err
	}
	return profile, nil
}

func (service *EntrepreneurService) AddMilestone(ctx context.Context, user models.User, input MilestoneInput) (models.Milestone, error) {
	input.Date = trimmed(input.Date)
	input.Description = trimmed(input.Description)
	if err := validateInput(input, map[string]*ValidationError{
		"date":        ErrMilestoneIncomplete,
		"description": ErrMilestoneIncomplete,
	}); err != nil {
		return models.Milestone{}, err
	}

	milestone := models.Milestone{
		ID:          models.NewID(),
		UserID:      user.ID,
		Date:        input.Date,
		Description: input.Description,
	}
	if err := service.repos.Milestones.Append(ctx, milestone); err != nil {
		return models.Milestone{}, err
	}
	return milestone, nil
}

func (service *EntrepreneurService) DeleteMilestone(ctx context.Context, user models.User, milestoneID string) error {
	_, err := service.repos.Milestones.RemoveWhere(ctx, func(milestone models.Milestone) bool {
		return milestone.ID == milestoneID && milestone.UserID == user.ID
	})
	return err
}

func (service *EntrepreneurService) AddTeamMember(ctx context.Context, user models.User, input TeamMemberInput) (models.TeamMember, error) {
	input.Name = trimmed(input.Name)
	input.Skills = trimmed(input.Skills)
	if err := validateInput(input, map[string]*ValidationError{
		"name":   ErrTeamMemberIncomplete,
		"skills": ErrTeamMemberIncomplete,
	}); err != nil {
		return models.TeamMember{}, err
	}

	member := models.TeamMember{
		ID:     models.NewID(),
		UserID: user.ID,
		Name:   input.Name,
		Skills: input.Skills,
	}
	if err := service.repos.TeamMembers.Append(ctx, member); err != nil {
		return models.TeamMember{}, err
	}
	return member, nil
}

func (service *EntrepreneurService) RemoveTeamMember(ctx context.Context, user models.User, memberID string, confirmed bool) error {
	if err := requireConfirmation(confirmed); err != nil {
		return err
	}
	_, err := service.repos.TeamMembers.RemoveWhere(ctx, func(member models.TeamMember) bool {
		return member.ID == memberID && member.UserID == user.ID
	})
	return err
}

// UpdateSettings changes the password when one is given and stores the
// profile visibility flag. The session snapshot is refreshed from the
// updated record.
func (service *EntrepreneurService) UpdateSettings(ctx context.Context, holder session.Holder, user models.User, input SettingsInput) error {
	if input.NewPassword != "" && len([]rune(input.NewPassword)) < minPasswordLength {
		return ErrNewPasswordTooShort
	}
	if len(input.NewPassword) > maxPasswordBytes {
		return ErrNewPasswordTooLong
	}

	if input.NewPassword != "" {
		hash, err := hashPassword(input.NewPassword)
		if err != nil {
			return err
		}
		if _, err := service.repos.Users.SetWhere(ctx, func(existing models.User) bool {
			return existing.ID == user.ID
		}, "password", hash); err != nil {
			return err
		}
		stored, found, err := service.repos.Users.FindBy(ctx, "id", user.ID)
		if err != nil {
			return err
		}
		if found {
			if err := holder.Save(ctx, stored); err != nil {
				return fmt.Errorf("refresh session: %w", err)
			}
		}
	}

	profile, _, err := service.repos.EntrepreneurProfiles.FindBy(ctx, "userId", user.ID)
	if err != nil {
		return err
	}
	profile.UserID = user.ID
	visible := input.ProfileVisible
	profile.Visible = &visible
	_, err = service.repos.EntrepreneurProfiles.Upsert(ctx, profile, func(existing models.EntrepreneurProfile) bool {
		return existing.UserID == user.ID
	})
	return err
}

// DeleteAccount removes only the user record; profiles, milestones and
// messages stay behind and render with placeholders.
func (service *EntrepreneurService) DeleteAccount(ctx context.Context, holder session.Holder, user models.User, confirmed bool) error {
	if err := requireConfirmation(confirmed); err != nil {
		return err
	}
	if _, err := service.repos.Users.RemoveWhere(ctx, func(existing models.User) bool {
		return existing.ID == user.ID
	}); err != nil {
		return err
	}
	return holder.Clear(ctx)
}

func (service *EntrepreneurService) Applications(ctx context.Context, user models.User) ([]ReceivedApplication, error) {
	applications, err := service.repos.Applications.ListWhere(ctx, "startupId", user.ID)
	if err != nil {
		return nil, err
	}
	users, err := usersByID(ctx, service.repos)
	if err != nil {
		return nil, err
	}

	result := make([]ReceivedApplication, 0, len(applications))
	for _, application := range applications {
		name := application.FreelancerName
		if name == "" {
			name = userName(users, application.FreelancerID, models.PlaceholderUnknown)
		}
		result = append(result, ReceivedApplication{
			ID:             application.ID,
			FreelancerID:   application.FreelancerID,
			FreelancerName: name,
			Status:         application.Status,
			StatusLabel:    models.RoleLabel(application.Status),
			Date:           application.Date,
		})
	}
	return result, nil
}

// DecideApplication sets the status of an application sent to the user's
// startup.
func (service *EntrepreneurService) DecideApplication(ctx context.Context, user models.User, applicationID string, status string) error {
	if !models.IsApplicationStatus(status) {
		return ErrApplicationStatus
	}
	changed, err := service.repos.Applications.SetWhere(ctx, func(application models.FreelancerApplication) bool {
		return application.ID == applicationID && application.StartupID == user.ID
	}, "status", status)
	if err != nil {
		return err
	}
	if changed == 0 {
		return ErrApplicationUnknown
	}
	return nil
}

func (service *EntrepreneurService) messageContactCount(ctx context.Context, userID string) (int, error) {
	messages, err := service.repos.Messages.All(ctx)
	if err != nil {
		return 0, err
	}
	contacts := map[string]struct{}{}
	for _, message := range messages {
		switch userID {
		case message.ToID:
			contacts[message.FromID] = struct{}{}
		case message.FromID:
			contacts[message.ToID] = struct{}{}
		}
	}
	return len(contacts), nil
}

func approvalStatus(approval models.StartupApproval) string {
	if approval.Approved {
		return ApprovalApproved
	}
	return ApprovalRejected
}
