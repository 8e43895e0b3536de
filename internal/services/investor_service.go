package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/store"
)

// fundingProgressTarget is the milestone count that fills a funded
// startup's progress bar.
const fundingProgressTarget = 10

type InvestorService struct {
	repos *store.Repositories
}

func NewInvestorService(repos *store.Repositories) *InvestorService {
	return &InvestorService{repos: repos}
}

type StartupFilter struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Stage    string `query:"stage"`
}

type StartupCard struct {
	StartupID        string `json:"startupId"`
	StartupName      string `json:"startupName"`
	Domain           string `json:"domain"`
	Stage            string `json:"stage,omitempty"`
	EntrepreneurName string `json:"entrepreneurName"`
	IdeaSummary      string `json:"ideaSummary"`
	Milestones       int    `json:"milestones"`
	Funded           bool   `json:"funded"`
}

type StartupDetails struct {
	StartupID        string             `json:"startupId"`
	StartupName      string             `json:"startupName"`
	Domain           string             `json:"domain"`
	Stage            string             `json:"stage"`
	IdeaSummary      string             `json:"ideaSummary"`
	EntrepreneurName string             `json:"entrepreneurName"`
	Milestones       []models.Milestone `json:"milestones"`
}

type FundedCard struct {
	StartupID        string  `json:"startupId"`
	StartupName      string  `json:"startupName"`
	EntrepreneurName string  `json:"entrepreneurName"`
	Amount           float64 `json:"amount"`
	AmountLabel      string  `json:"amountLabel"`
	Milestones       int     `json:"milestones"`
	Progress         float64 `json:"progress"`
	ProgressPercent  int     `json:"progressPercent"`
}

type InvestorStats struct {
	FundedStartups       int     `json:"fundedStartups"`
	FeedbackGiven        int     `json:"feedbackGiven"`
	TotalInvestment      float64 `json:"totalInvestment"`
	TotalInvestmentLabel string  `json:"totalInvestmentLabel"`
}

type InvestorDashboard struct {
	User     models.User   `json:"user"`
	Filter   StartupFilter `json:"filter"`
	Startups []StartupCard `json:"startups"`
	Funded   []FundedCard  `json:"funded"`
	Stats    InvestorStats `json:"stats"`
}

func (service *InvestorService) Dashboard(ctx context.Context, investor models.User, filter StartupFilter) (InvestorDashboard, error) {
	view := InvestorDashboard{User: investor.Snapshot(), Filter: filter}
	var err error
	if view.Startups, err = service.Browse(ctx, investor, filter); err != nil {
		return view, err
	}
	if view.Funded, err = service.Funded(ctx, investor); err != nil {
		return view, err
	}
	if view.Stats, err = service.Stats(ctx, investor); err != nil {
		return view, err
	}
	return view, nil
}

// Browse lists visible startups. Search matches the startup name or idea
// summary case-insensitively; category and stage must match exactly when
// given.
func (service *InvestorService) Browse(ctx context.Context, investor models.User, filter StartupFilter) ([]StartupCard, error) {
	profiles, _, err := startupProfilesByUser(ctx, service.repos)
	if err != nil {
		return nil, err
	}
	users, err := usersByID(ctx, service.repos)
	if err != nil {
		return nil, err
	}
	counts, err := milestoneCounts(ctx, service.repos)
	if err != nil {
		return nil, err
	}
	funded, err := service.fundedStartupIDs(ctx, investor.ID)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(trimmed(filter.Search))
	category := trimmed(filter.Category)
	stage := trimmed(filter.Stage)

	cards := make([]StartupCard, 0, len(profiles))
	for _, profile := range profiles {
		if isHidden(profile) {
			continue
		}
		if category != "" && profile.Domain != category {
			continue
		}
		if stage != "" && !strings.EqualFold(profile.Stage, stage) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(profile.StartupName), search) &&
			!strings.Contains(strings.ToLower(profile.IdeaSummary), search) {
			continue
		}
		_, isFunded := funded[profile.UserID]
		cards = append(cards, StartupCard{
			StartupID:        profile.UserID,
			StartupName:      orPlaceholder(profile.StartupName, models.PlaceholderUnnamedStartup),
			Domain:           orPlaceholder(profile.Domain, models.PlaceholderNA),
			Stage:            profile.Stage,
			EntrepreneurName: userName(users, profile.UserID, models.PlaceholderNA),
			IdeaSummary:      orPlaceholder(profile.IdeaSummary, models.PlaceholderNoDescription),
			Milestones:       counts[profile.UserID],
			Funded:           isFunded,
		})
	}
	return cards, nil
}

// Details never fails on a missing profile or owner; absent fields read
// "N/A".
func (service *InvestorService) Details(ctx context.Context, startupID string) (StartupDetails, error) {
	_, profiles, err := startupProfilesByUser(ctx, service.repos)
	if err != nil {
		return StartupDetails{}, err
	}
	users, err := usersByID(ctx, service.repos)
	if err != nil {
		return StartupDetails{}, err
	}
	milestones, err := service.repos.Milestones.ListFor(ctx, startupID)
	if err != nil {
		return StartupDetails{}, err
	}

	profile := profiles[startupID]
	return StartupDetails{
		StartupID:        startupID,
		StartupName:      orPlaceholder(profile.StartupName, models.PlaceholderNA),
		Domain:           orPlaceholder(profile.Domain, models.PlaceholderNA),
		Stage:            orPlaceholder(profile.Stage, models.PlaceholderNA),
		IdeaSummary:      orPlaceholder(profile.IdeaSummary, models.PlaceholderNA),
		EntrepreneurName: userName(users, startupID, models.PlaceholderNA),
		Milestones:       milestones,
	}, nil
}

// ExpressInterest leaves feedback on the startup's dashboard.
func (service *InvestorService) ExpressInterest(ctx context.Context, investor models.User, startupID string, now time.Time) (models.InvestorFeedback, error) {
	profile, _, err := service.repos.EntrepreneurProfiles.FindBy(ctx, "userId", startupID)
	if err != nil {
		return models.InvestorFeedback{}, err
	}
	feedback := models.InvestorFeedback{
		ID:             models.NewID(),
		EntrepreneurID: startupID,
		InvestorID:     investor.ID,
		InvestorName:   investor.Name,
		Message:        fmt.Sprintf("I'm interested in investing in %s. Let's discuss!", orPlaceholder(profile.StartupName, "your startup")),
		Date:           now.UTC(),
	}
	if err := service.repos.Feedback.Append(ctx, feedback); err != nil {
		return models.InvestorFeedback{}, err
	}
	return feedback, nil
}

// RecordFunding adds amount to the investor's stake in startupID, keeping
// one record per (startup, investor).
func (service *InvestorService) RecordFunding(ctx context.Context, investor models.User, startupID string, amount float64, now time.Time) (models.FundedStartup, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return models.FundedStartup{}, ErrFundingAmount
	}
	samePair := func(record models.FundedStartup) bool {
		return record.StartupID == startupID && record.InvestorID == investor.ID
	}
	existing, found, err := service.repos.FundedStartups.Find(ctx, samePair)
	if err != nil {
		return models.FundedStartup{}, err
	}
	record := models.FundedStartup{StartupID: startupID, InvestorID: investor.ID, Amount: amount, Date: now.UTC()}
	if found {
		record.Amount += existing.Amount
	}
	if _, err := service.repos.FundedStartups.Upsert(ctx, record, samePair); err != nil {
		return models.FundedStartup{}, err
	}
	return record, nil
}

func (service *InvestorService) Funded(ctx context.Context, investor models.User) ([]FundedCard, error) {
	records, err := service.repos.FundedStartups.ListFor(ctx, investor.ID)
	if err != nil {
		return nil, err
	}
	_, profiles, err := startupProfilesByUser(ctx, service.repos)
	if err != nil {
		return nil, err
	}
	users, err := usersByID(ctx, service.repos)
	if err != nil {
		return nil, err
	}
	counts, err := milestoneCounts(ctx, service.repos)
	if err != nil {
		return nil, err
	}

	cards := make([]FundedCard, 0, len(records))
	for _, record := range records {
		progress := FundingProgress(counts[record.StartupID])
		cards = append(cards, FundedCard{
			StartupID:        record.StartupID,
			StartupName:      orPlaceholder(profiles[record.StartupID].StartupName, models.PlaceholderUnnamedStartup),
			EntrepreneurName: userName(users, record.StartupID, models.PlaceholderNA),
			Amount:           record.Amount,
			AmountLabel:      FormatCurrency(record.Amount),
			Milestones:       counts[record.StartupID],
			Progress:         progress,
			ProgressPercent:  int(math.Round(progress * 100)),
		})
	}
	return cards, nil
}

func (service *InvestorService) Stats(ctx context.Context, investor models.User) (InvestorStats, error) {
	records, err := service.repos.FundedStartups.ListFor(ctx, investor.ID)
	if err != nil {
		return InvestorStats{}, err
	}
	given, err := service.repos.Feedback.ListWhere(ctx, "investorId", investor.ID)
	if err != nil {
		return InvestorStats{}, err
	}
	total := totalAmount(records)
	return InvestorStats{
		FundedStartups:       len(records),
		FeedbackGiven:        len(given),
		TotalInvestment:      total,
		TotalInvestmentLabel: FormatCurrency(total),
	}, nil
}

// FundingProgress maps a milestone count onto [0, 1].
func FundingProgress(milestones int) float64 {
	return math.Min(float64(milestones)/fundingProgressTarget, 1)
}

func (service *InvestorService) fundedStartupIDs(ctx context.Context, investorID string) (map[string]struct{}, error) {
	records, err := service.repos.FundedStartups.ListFor(ctx, investorID)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]struct{}, len(records))
	for _, record := range records {
		ids[record.StartupID] = struct{}{}
	}
	return ids, nil
}

func totalAmount(records []models.FundedStartup) float64 {
	total := 0.0
	for _, record := range records {
		total += record.Amount
	}
	return total
}
