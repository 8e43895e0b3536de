package api

import (
	"github.com/terraincognita07/venturehub/internal/services"
	"github.com/terraincognita07/venturehub/internal/store"
)

func (handler *Handler) withDependencies(st *store.Store) *Handler {
	handler.repositories = store.NewRepositories(st)
	handler.authService = services.NewAuthService(st, handler.repositories)
	handler.entrepreneurService = services.NewEntrepreneurService(handler.repositories)
	handler.investorService = services.NewInvestorService(handler.repositories)
	handler.freelancerService = services.NewFreelancerService(handler.repositories)
	handler.chatService = services.NewChatService(handler.repositories)
	handler.adminService = services.NewAdminService(handler.repositories)
	handler.analyticsService = services.NewAnalyticsService(handler.repositories)
	handler.pitchService = services.NewPitchService(handler.repositories)
	return handler
}

// AuthService exposes the handler's auth service to startup code that seeds
// the first administrator.
func (handler *Handler) AuthService() *services.AuthService {
	return handler.authService
}
