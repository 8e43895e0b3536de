package models

import "time"

const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

type Milestone struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type TeamMember struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Skills string `json:"skills"`
}

type InvestorFeedback struct {
	ID             string    `json:"id"`
	EntrepreneurID string    `json:"entrepreneurId"`
	InvestorID     string    `json:"investorId"`
	InvestorName   string    `json:"investorName"`
	Message        string    `json:"message"`
	Date           time.Time `json:"date"`
}

type FundedStartup struct {
	StartupID  string    `json:"startupId"`
	InvestorID string    `json:"investorId"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date,omitzero"`
}

type FreelancerApplication struct {
	ID             string    `json:"id"`
	FreelancerID   string    `json:"freelancerId"`
	FreelancerName string    `json:"freelancerName,omitempty"`
	StartupID      string    `json:"startupId"`
	Status         string    `json:"status"`
	Date           time.Time `json:"date"`
}

func IsApplicationStatus(status string) bool {
	switch status {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	default:
		return false
	}
}

type StartupApproval struct {
	StartupID string    `json:"startupId"`
	Approved  bool      `json:"approved"`
	Date      time.Time `json:"date"`
}
