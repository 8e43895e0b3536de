package store

// Storage keys. Each collection key holds a JSON array of records.
const (
	Users                  = "users"
	EntrepreneurProfiles   = "entrepreneurProfiles"
	FreelancerProfiles     = "freelancerProfiles"
	Milestones             = "milestones"
	InvestorFeedback       = "investorFeedback"
	TeamMembers            = "teamMembers"
	FundedStartups         = "fundedStartups"
	FreelancerApplications = "freelancerApplications"
	EventRegistrations     = "eventRegistrations"
	Messages               = "messages"
	StartupApprovals       = "startupApprovals"
	ActivityLogs           = "activityLogs"
	PitchEvents            = "pitchEvents"
)

// Single-value keys that live next to the collections.
const (
	CurrentUser = "currentUser"
	UsersSeeded = "usersSeeded"
)

// CollectionKeys lists every named collection in a stable order.
func CollectionKeys() []string {
	return []string{
		Users,
		EntrepreneurProfiles,
		FreelancerProfiles,
		Milestones,
		InvestorFeedback,
		TeamMembers,
		FundedStartups,
		FreelancerApplications,
		EventRegistrations,
		Messages,
		StartupApprovals,
		ActivityLogs,
		PitchEvents,
	}
}

// AllKeys is CollectionKeys plus the single-value keys wiped by a bulk clear.
func AllKeys() []string {
	return append(CollectionKeys(), CurrentUser, UsersSeeded)
}

func IsKnownKey(key string) bool {
	for _, known := range AllKeys() {
		if known == key {
			return true
		}
	}
	return false
}
