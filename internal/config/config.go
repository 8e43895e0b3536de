package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

const minSecretKeyLength = 32

var insecureSecretKeys = []string{
	"change_me_in_production",
	"replace_with_at_least_32_random_characters",
}

type Config struct {
	SecretKey       string `env:"SECRET_KEY"`
	DBPath          string `env:"DB_PATH" envDefault:"data/venturehub.db"`
	Port            string `env:"PORT" envDefault:"8080"`
	AppEnv          string `env:"APP_ENV" envDefault:"production"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	CookieSecure    bool   `env:"COOKIE_SECURE" envDefault:"false"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`

	FirstAdminEmail    string `env:"FIRST_ADMIN_EMAIL"`
	FirstAdminPassword string `env:"FIRST_ADMIN_PASSWORD"`
	FirstAdminName     string `env:"FIRST_ADMIN_NAME" envDefault:"Administrator"`
}

// Load parses the environment. The secret key is only checked by
// ValidateServer so offline commands run without one.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.DBPath = strings.TrimSpace(cfg.DBPath)
	if cfg.DBPath == "" {
		return Config{}, errors.New("DB_PATH must not be empty")
	}
	if _, err := ParsePort(cfg.Port); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) IsDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(cfg.AppEnv)) {
	case "development", "dev", "local":
		return true
	default:
		return false
	}
}

// ValidateServer checks the settings only the HTTP server needs.
func (cfg Config) ValidateServer() error {
	return ValidateSecretKey(cfg.SecretKey)
}

func (cfg Config) HasFirstAdmin() bool {
	return strings.TrimSpace(cfg.FirstAdminEmail) != "" && cfg.FirstAdminPassword != ""
}

func ValidateSecretKey(secret string) error {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return errors.New("SECRET_KEY is required")
	}
	for _, placeholder := range insecureSecretKeys {
		if strings.EqualFold(secret, placeholder) {
			return errors.New("SECRET_KEY uses an insecure placeholder value")
		}
	}
	if len(secret) < minSecretKeyLength {
		return fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return nil
}

func ParsePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid PORT %q: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid PORT %d: must be between 1 and 65535", port)
	}
	return port, nil
}
