package services

import (
	"context"

	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/store"
)

// usersByID indexes users, keeping the first record for a repeated id the
// way a linear scan would find it.
func usersByID(ctx context.Context, repos *store.Repositories) (map[string]models.User, error) {
	users, err := repos.Users.All(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]models.User, len(users))
	for _, user := range users {
		if _, seen := index[user.ID]; !seen {
			index[user.ID] = user
		}
	}
	return index, nil
}

func startupProfilesByUser(ctx context.Context, repos *store.Repositories) ([]models.EntrepreneurProfile, map[string]models.EntrepreneurProfile, error) {
	profiles, err := repos.EntrepreneurProfiles.All(ctx)
	if err != nil {
		return nil, nil, err
	}
	index := make(map[string]models.EntrepreneurProfile, len(profiles))
	for _, profile := range profiles {
		if _, seen := index[profile.UserID]; !seen {
			index[profile.UserID] = profile
		}
	}
	return profiles, index, nil
}

func milestoneCounts(ctx context.Context, repos *store.Repositories) (map[string]int, error) {
	milestones, err := repos.Milestones.All(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(milestones))
	for _, milestone := range milestones {
		counts[milestone.UserID]++
	}
	return counts, nil
}

func userName(users map[string]models.User, id string, placeholder string) string {
	if user, ok := users[id]; ok && user.Name != "" {
		return user.Name
	}
	return placeholder
}

func orPlaceholder(value string, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// isHidden reports whether an entrepreneur switched their profile off in
// settings. Profiles that never set the flag are visible.
func isHidden(profile models.EntrepreneurProfile) bool {
	return profile.Visible != nil && !*profile.Visible
}
