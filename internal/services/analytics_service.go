package services

import (
	"context"
	"math"
	"time"

	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/store"
)

type AnalyticsService struct {
	repos *store.Repositories
}

func NewAnalyticsService(repos *store.Repositories) *AnalyticsService {
	return &AnalyticsService{repos: repos}
}

type EntrepreneurAnalytics struct {
	TotalMilestones  int `json:"totalMilestones"`
	Completed        int `json:"completed"`
	Upcoming         int `json:"upcoming"`
	InvestorInterest int `json:"investorInterest"`
	ProgressPercent  int `json:"progressPercent"`
	TeamMembers      int `json:"teamMembers"`
}

type InvestorAnalytics struct {
	FundedStartups       int     `json:"fundedStartups"`
	TotalInvestment      float64 `json:"totalInvestment"`
	TotalInvestmentLabel string  `json:"totalInvestmentLabel"`
	AveragePerStartup    float64 `json:"averagePerStartup"`
	AverageLabel         string  `json:"averageLabel"`
}

type FreelancerAnalytics struct {
	TotalApplications int `json:"totalApplications"`
	Accepted          int `json:"accepted"`
	Pending           int `json:"pending"`
	SuccessRate       int `json:"successRate"`
}

type Analytics struct {
	Role         string                 `json:"role"`
	Available    bool                   `json:"available"`
	MessageKey   string                 `json:"messageKey,omitempty"`
	Entrepreneur *EntrepreneurAnalytics `json:"entrepreneur,omitempty"`
	Investor     *InvestorAnalytics     `json:"investor,omitempty"`
	Freelancer   *FreelancerAnalytics   `json:"freelancer,omitempty"`
}

// For builds the analytics page of the user's role. Roles without metrics
// get Available=false.
func (service *AnalyticsService) For(ctx context.Context, user models.User, now time.Time) (Analytics, error) {
	view := Analytics{Role: user.Role, Available: true}
	var err error
	switch user.Role {
	case models.RoleEntrepreneur:
		view.Entrepreneur, err = service.entrepreneur(ctx, user.ID, now)
	case models.RoleInvestor:
		view.Investor, err = service.investor(ctx, user.ID)
	case models.RoleFreelancer:
		view.Freelancer, err = service.freelancer(ctx, user.ID)
	default:
		view.Available = false
		view.MessageKey = "analytics.not_available"
	}
	return view, err
}

// A milestone is completed once its date is in the past. Dates that do not
// parse count as neither completed nor upcoming.
func (service *AnalyticsService) entrepreneur(ctx context.Context, userID string, now time.Time) (*EntrepreneurAnalytics, error) {
	milestones, err := service.repos.Milestones.ListFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	feedback, err := service.repos.Feedback.ListFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	team, err := service.repos.TeamMembers.ListFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &EntrepreneurAnalytics{
		TotalMilestones:  len(milestones),
		InvestorInterest: len(feedback),
		TeamMembers:      len(team),
	}
	for _, milestone := range milestones {
		date, ok := parseRecordDate(milestone.Date)
		if !ok {
			continue
		}
		if date.Before(now) {
			result.Completed++
		} else {
			result.Upcoming++
		}
	}
	result.ProgressPercent = roundPercent(result.Completed, result.TotalMilestones)
	return result, nil
}

func (service *AnalyticsService) investor(ctx context.Context, userID string) (*InvestorAnalytics, error) {
	records, err := service.repos.FundedStartups.ListFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	total := totalAmount(records)
	average := 0.0
	if len(records) > 0 {
		average = math.Round(total / float64(len(records)))
	}
	return &InvestorAnalytics{
		FundedStartups:       len(records),
		TotalInvestment:      total,
		TotalInvestmentLabel: FormatCurrency(total),
		AveragePerStartup:    average,
		AverageLabel:         FormatCurrency(average),
	}, nil
}

func (service *AnalyticsService) freelancer(ctx context.Context, userID string) (*FreelancerAnalytics, error) {
	applications, err := service.repos.Applications.ListFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := &FreelancerAnalytics{TotalApplications: len(applications)}
	for _, application := range applications {
		switch application.Status {
		case models.ApplicationAccepted:
			result.Accepted++
		case models.ApplicationPending:
			result.Pending++
		}
	}
	result.SuccessRate = roundPercent(result.Accepted, result.TotalApplications)
	return result, nil
}
