package api

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/venturehub/internal/i18n"
	"github.com/terraincognita07/venturehub/internal/store"
)

func NewHandler(st *store.Store, secret string, i18nManager *i18n.Manager, logger zerolog.Logger, cookieSecure bool) (*Handler, error) {
	if st == nil {
		return nil, errors.New("store is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}

	handler := &Handler{
		store:        st,
		secretKey:    []byte(secret),
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
		logger:       logger.With().Str("component", "api").Logger(),
		now:          time.Now,
	}
	return handler.withDependencies(st), nil
}
