package models

import (
	"strings"
	"time"
)

const (
	RoleEntrepreneur = "entrepreneur"
	RoleInvestor     = "investor"
	RoleFreelancer   = "freelancer"
	RoleAdmin        = "admin"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Snapshot returns the copy of the user kept by a session. The password
// never leaves the users collection.
func (user User) Snapshot() User {
	user.Password = ""
	return user
}

// IsSelectableRole reports whether role can be picked on the signup form.
func IsSelectableRole(role string) bool {
	switch role {
	case RoleEntrepreneur, RoleInvestor, RoleFreelancer:
		return true
	default:
		return false
	}
}

func IsKnownRole(role string) bool {
	return IsSelectableRole(role) || role == RoleAdmin
}

// RoleLabel capitalises a role for display ("investor" -> "Investor").
func RoleLabel(role string) string {
	if role == "" {
		return ""
	}
	return strings.ToUpper(role[:1]) + role[1:]
}
