package services

import (
	"context"
	"time"

	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/store"
)

type FreelancerService struct {
	repos *store.Repositories
}

func NewFreelancerService(repos *store.Repositories) *FreelancerService {
	return &FreelancerService{repos: repos}
}

type FreelancerProfileInput struct {
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Portfolio  string `json:"portfolio"`
	Bio        string `json:"bio"`
}

type Opportunity struct {
	StartupID        string `json:"startupId"`
	StartupName      string `json:"startupName"`
	Domain           string `json:"domain"`
	EntrepreneurName string `json:"entrepreneurName"`
	IdeaSummary      string `json:"ideaSummary"`
	Applied          bool   `json:"applied"`
}

type SentApplication struct {
	ID               string    `json:"id"`
	StartupID        string    `json:"startupId"`
	StartupName      string    `json:"startupName"`
	EntrepreneurName string    `json:"entrepreneurName"`
	Status           string    `json:"status"`
	StatusLabel      string    `json:"statusLabel"`
	Date             time.Time `json:"date"`
}

type FreelancerStats struct {
	ApplicationsSent     int `json:"applicationsSent"`
	ActiveCollaborations int `json:"activeCollaborations"`
}

type FreelancerDashboard struct {
	User          models.User              `json:"user"`
	Profile       models.FreelancerProfile `json:"profile"`
	HasProfile    bool                     `json:"hasProfile"`
	Opportunities []Opportunity            `json:"opportunities"`
	Applications  []SentApplication        `json:"applications"`
	Stats         FreelancerStats          `json:"stats"`
}

func (service *FreelancerService) Dashboard(ctx context.Context, user models.User) (FreelancerDashboard, error) {
	view := FreelancerDashboard{User: user.Snapshot()}

	profile, found, err := service.repos.FreelancerProfiles.FindBy(ctx, "userId", user.ID)
	if err != nil {
		return view, err
	}
	view.Profile, view.HasProfile = profile, found

	applications, err := service.repos.Applications.ListFor(ctx, user.ID)
	if err != nil {
		return view, err
	}
	profiles, byUser, err := startupProfilesByUser(ctx, service.repos)
	if err != nil {
		return view, err
	}
	users, err := usersByID(ctx, service.repos)
	if err != nil {
		return view, err
	}

	applied := make(map[string]struct{}, len(applications))
	for _, application := range applications {
		applied[application.StartupID] = struct{}{}
	}

	view.Opportunities = make([]Opportunity, 0, len(profiles))
	for _, profile := range profiles {
		if isHidden(profile) {
			continue
		}
		_, hasApplied := applied[profile.UserID]
		view.Opportunities = append(view.Opportunities, Opportunity{
			StartupID:        profile.UserID,
			StartupName:      orPlaceholder(profile.StartupName, models.PlaceholderUnnamedStartup),
			Domain:           orPlaceholder(profile.Domain, models.PlaceholderNA),
			EntrepreneurName: userName(users, profile.UserID, models.PlaceholderNA),
			IdeaSummary:      orPlaceholder(profile.IdeaSummary, models.PlaceholderNoDescription),
			Applied:          hasApplied,
		})
	}

	view.Applications = make([]SentApplication, 0, len(applications))
	accepted := 0
	for _, application := range applications {
		if application.Status == models.ApplicationAccepted {
			accepted++
		}
		view.Applications = append(view.Applications, SentApplication{
			ID:               application.ID,
			StartupID:        application.StartupID,
			StartupName:      orPlaceholder(byUser[application.StartupID].StartupName, models.PlaceholderUnknownStartup),
			EntrepreneurName: userName(users, application.StartupID, models.PlaceholderNA),
			Status:           application.Status,
			StatusLabel:      models.RoleLabel(application.Status),
			Date:             application.Date,
		})
	}

	view.Stats = FreelancerStats{ApplicationsSent: len(applications), ActiveCollaborations: accepted}
	return view, nil
}

// SaveProfile replaces the user's profile record as a whole.
func (service *FreelancerService) SaveProfile(ctx context.Context, user models.User, input FreelancerProfileInput) (models.FreelancerProfile, error) {
	profile := models.FreelancerProfile{
		UserID:     user.ID,
		Skills:     trimmed(input.Skills),
		Experience: trimmed(input.Experience),
		Portfolio:  trimmed(input.Portfolio),
		Bio:        trimmed(input.Bio),
	}
	_, err := service.repos.FreelancerProfiles.Upsert(ctx, profile, func(existing models.FreelancerProfile) bool {
		return existing.UserID == user.ID
	})
	if err != nil {
		return models.FreelancerProfile{}, err
	}
	return profile, nil
}

// Apply sends a pending application. The collection accepts duplicates, so
// the (freelancer, startup) check here is the only guard.
func (service *FreelancerService) Apply(ctx context.Context, user models.User, startupID string, now time.Time) (models.FreelancerApplication, error) {
	already, err := service.HasApplied(ctx, user.ID, startupID)
	if err != nil {
		return models.FreelancerApplication{}, err
	}
	if already {
		return models.FreelancerApplication{}, ErrAlreadyApplied
	}

	application := models.FreelancerApplication{
		ID:             models.NewID(),
		FreelancerID:   user.ID,
		FreelancerName: user.Name,
		StartupID:      startupID,
		Status:         models.ApplicationPending,
		Date:           now.UTC(),
	}
	if err := service.repos.Applications.Append(ctx, application); err != nil {
		return models.FreelancerApplication{}, err
	}
	return application, nil
}

func (service *FreelancerService) HasApplied(ctx context.Context, freelancerID string, startupID string) (bool, error) {
	return service.repos.Applications.Exists(ctx, func(application models.FreelancerApplication) bool {
		return application.FreelancerID == freelancerID && application.StartupID == startupID
	})
}
