package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/terraincognita07/venturehub/internal/i18n"
	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/services"
	"github.com/terraincognita07/venturehub/internal/store"
)

type Handler struct {
	store        *store.Store
	secretKey    []byte
	cookieSecure bool
	i18n         *i18n.Manager
	logger       zerolog.Logger
	now          func() time.Time

	repositories        *store.Repositories
	authService         *services.AuthService
	entrepreneurService *services.EntrepreneurService
	investorService     *services.InvestorService
	freelancerService   *services.FreelancerService
	chatService         *services.ChatService
	adminService        *services.AdminService
	analyticsService    *services.AnalyticsService
	pitchService        *services.PitchService
}

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type fundingInput struct {
	Amount float64 `json:"amount" form:"amount"`
}

type decisionInput struct {
	Status string `json:"status" form:"status"`
}

type messageInput struct {
	Text string `json:"text" form:"text"`
}

const defaultAuthTokenTTL = 7 * 24 * time.Hour

// authClaims carries the whole user snapshot so a request never re-reads
// the users collection to learn who is logged in.
type authClaims struct {
	User models.User `json:"user"`
	jwt.RegisteredClaims
}
