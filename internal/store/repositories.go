package store

import "github.com/terraincognita07/venturehub/internal/models"

type Repositories struct {
	Users                *Repository[models.User]
	EntrepreneurProfiles *Repository[models.EntrepreneurProfile]
	FreelancerProfiles   *Repository[models.FreelancerProfile]
	Milestones           *Repository[models.Milestone]
	TeamMembers          *Repository[models.TeamMember]
	Feedback             *Repository[models.InvestorFeedback]
	FundedStartups       *Repository[models.FundedStartup]
	Applications         *Repository[models.FreelancerApplication]
	Approvals            *Repository[models.StartupApproval]
	ActivityLogs         *Repository[models.ActivityLog]
	EventRegistrations   *Repository[models.EventRegistration]
	Messages             *Repository[models.Message]
	PitchEvents          *Repository[models.PitchEvent]
}

func NewRepositories(store *Store) *Repositories {
	return &Repositories{
		Users:                NewRepository[models.User](store, Users, "id"),
		EntrepreneurProfiles: NewRepository[models.EntrepreneurProfile](store, EntrepreneurProfiles, "userId"),
		FreelancerProfiles:   NewRepository[models.FreelancerProfile](store, FreelancerProfiles, "userId"),
		Milestones:           NewRepository[models.Milestone](store, Milestones, "userId"),
		TeamMembers:          NewRepository[models.TeamMember](store, TeamMembers, "userId"),
		Feedback:             NewRepository[models.InvestorFeedback](store, InvestorFeedback, "entrepreneurId"),
		FundedStartups:       NewRepository[models.FundedStartup](store, FundedStartups, "investorId"),
		Applications:         NewRepository[models.FreelancerApplication](store, FreelancerApplications, "freelancerId"),
		Approvals:            NewRepository[models.StartupApproval](store, StartupApprovals, "startupId"),
		ActivityLogs:         NewRepository[models.ActivityLog](store, ActivityLogs, ""),
		EventRegistrations:   NewRepository[models.EventRegistration](store, EventRegistrations, "userId"),
		Messages:             NewRepository[models.Message](store, Messages, ""),
		PitchEvents:          NewRepository[models.PitchEvent](store, PitchEvents, ""),
	}
}
