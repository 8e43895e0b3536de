package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/session"
	"github.com/terraincognita07/venturehub/internal/store"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserNotFound = errors.New("user not found")

// passwordHashCost is lowered by tests.
var passwordHashCost = bcrypt.DefaultCost

type SignUpInput struct {
	Role            string `json:"role" validate:"required,oneof=entrepreneur investor freelancer"`
	Password        string `json:"password" validate:"eqfield=ConfirmPassword,min=6"`
	ConfirmPassword string `json:"confirmPassword"`
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
}

var signUpRules = map[string]*ValidationError{
	"role.required":    ErrRoleRequired,
	"role.oneof":       ErrRoleRequired,
	"password.eqfield": ErrPasswordMismatch,
	"password.min":     ErrPasswordTooShort,
	"name.required":    ErrNameRequired,
	"email.required":   ErrEmailRequired,
}

type AuthService struct {
	store *store.Store
	repos *store.Repositories
}

func NewAuthService(st *store.Store, repos *store.Repositories) *AuthService {
	return &AuthService{store: st, repos: repos}
}

// SignUp registers a self-service account and logs it in. The email is
// stored as typed and uniqueness is an exact, case-sensitive comparison.
func (service *AuthService) SignUp(ctx context.Context, holder session.Holder, input SignUpInput, now time.Time) (models.User, error) {
	input.Name = trimmed(input.Name)
	checked := input
	checked.Email = trimmed(input.Email)
	if err := validateInput(checked, signUpRules); err != nil {
		return models.User{}, err
	}
	if len(input.Password) > maxPasswordBytes {
		return models.User{}, ErrPasswordTooLong
	}

	user, err := service.createUser(ctx, input.Name, input.Email, input.Password, input.Role, now)
	if err != nil {
		return models.User{}, err
	}
	if err := holder.Save(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("save session: %w", err)
	}
	return user.Snapshot(), nil
}

// LogIn succeeds only for a user whose email and password both match
// exactly. Every failure is the same ErrInvalidCredentials.
func (service *AuthService) LogIn(ctx context.Context, holder session.Holder, email string, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	candidates, err := service.repos.Users.ListWhere(ctx, "email", email)
	if err != nil {
		return models.User{}, err
	}
	for _, candidate := range candidates {
		if !passwordMatches(candidate.Password, password) {
			continue
		}
		if err := holder.Save(ctx, candidate); err != nil {
			return models.User{}, fmt.Errorf("save session: %w", err)
		}
		return candidate.Snapshot(), nil
	}
	return models.User{}, ErrInvalidCredentials
}

// LogOut forgets the session only.
func (service *AuthService) LogOut(ctx context.Context, holder session.Holder) error {
	return holder.Clear(ctx)
}

func (service *AuthService) CurrentUser(ctx context.Context, holder session.Holder) (models.User, bool, error) {
	return holder.Load(ctx)
}

// CreateAdmin adds an administrator. Admin accounts are never created by
// SignUp.
func (service *AuthService) CreateAdmin(ctx context.Context, name string, email string, password string, now time.Time) (models.User, error) {
	name = trimmed(name)
	email = trimmed(email)
	switch {
	case name == "":
		return models.User{}, ErrNameRequired
	case email == "":
		return models.User{}, ErrEmailRequired
	}
	if err := checkPasswordLength(password); err != nil {
		return models.User{}, err
	}
	user, err := service.createUser(ctx, name, email, password, models.RoleAdmin, now)
	if err != nil {
		return models.User{}, err
	}
	return user.Snapshot(), nil
}

// SeedFirstAdmin creates the configured administrator once. It reports
// whether a user was created.
func (service *AuthService) SeedFirstAdmin(ctx context.Context, name string, email string, password string, now time.Time) (bool, error) {
	if trimmed(email) == "" || password == "" {
		return false, nil
	}
	exists, err := service.repos.Users.Exists(ctx, func(user models.User) bool {
		return user.Email == trimmed(email)
	})
	if err != nil || exists {
		return false, err
	}
	if trimmed(name) == "" {
		name = "Administrator"
	}
	if _, err := service.CreateAdmin(ctx, name, email, password, now); err != nil {
		return false, err
	}
	if err := service.store.WriteValue(ctx, store.UsersSeeded, true); err != nil {
		return true, err
	}
	return true, nil
}

// ResetPassword replaces the stored password of the account with email.
func (service *AuthService) ResetPassword(ctx context.Context, email string, newPassword string) error {
	if err := checkPasswordLength(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	changed, err := service.repos.Users.SetWhere(ctx, func(user models.User) bool {
		return user.Email == trimmed(email)
	}, "password", hash)
	if err != nil {
		return err
	}
	if changed == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (service *AuthService) createUser(ctx context.Context, name string, email string, password string, role string, now time.Time) (models.User, error) {
	taken, err := service.repos.Users.Exists(ctx, func(user models.User) bool {
		return user.Email == email
	})
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrEmailTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{
		ID:        models.NewID(),
		Name:      name,
		Email:     email,
		Password:  hash,
		Role:      role,
		CreatedAt: now.UTC(),
	}
	if err := service.repos.Users.Append(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// RedirectPath is the dashboard a role lands on after login.
func RedirectPath(role string) string {
	if !models.IsKnownRole(role) {
		return "/login"
	}
	return "/" + role
}

const (
	minPasswordLength = 6
	// bcrypt refuses longer input.
	maxPasswordBytes = 72
)

func checkPasswordLength(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// passwordMatches accepts bcrypt hashes and, for records imported from a
// browser dump, plaintext passwords compared verbatim.
func passwordMatches(stored string, candidate string) bool {
	if stored == "" {
		return false
	}
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

func isBcryptHash(value string) bool {
	if len(value) != 60 {
		return false
	}
	return strings.HasPrefix(value, "$2a$") || strings.HasPrefix(value, "$2b$") || strings.HasPrefix(value, "$2y$")
}
