package services

import (
	"errors"

	"github.com/terraincognita07/venturehub/internal/session"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrAuth                 = errors.New("authentication failed")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrLoginRequired        = session.ErrLoginRequired
	ErrForbidden            = session.ErrWrongRole
)

// ValidationError rejects user input before anything is written. Key is
// the message catalogue key shown next to the offending field.
type ValidationError struct {
	Field    string
	Key      string
	Message  string
	Conflict bool
}

func (err *ValidationError) Error() string {
	return err.Message
}

func (err *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field string, key string, message string) *ValidationError {
	return &ValidationError{Field: field, Key: key, Message: message}
}

func newConflictError(field string, key string, message string) *ValidationError {
	return &ValidationError{Field: field, Key: key, Message: message, Conflict: true}
}

// AuthError never says which credential was wrong.
type AuthError struct {
	Key     string
	Message string
}

func (err *AuthError) Error() string {
	return err.Message
}

func (err *AuthError) Unwrap() error {
	return ErrAuth
}

var (
	ErrRoleRequired         = newValidationError("role", "auth.role_required", "role is required")
	ErrNameRequired         = newValidationError("name", "auth.name_required", "name is required")
	ErrEmailRequired        = newValidationError("email", "auth.email_required", "email is required")
	ErrPasswordMismatch     = newValidationError("confirmPassword", "auth.password_mismatch", "passwords do not match")
	ErrPasswordTooShort     = newValidationError("password", "auth.password_too_short", "password must be at least 6 characters")
	ErrPasswordTooLong      = newValidationError("password", "auth.password_too_long", "password must be at most 72 bytes")
	ErrEmailTaken           = newConflictError("email", "auth.email_taken", "email already registered")
	ErrMilestoneIncomplete  = newValidationError("milestone", "milestone.fields_required", "milestone date and description are required")
	ErrTeamMemberIncomplete = newValidationError("teamMember", "team.fields_required", "team member name and skills are required")
	ErrNewPasswordTooShort  = newValidationError("newPassword", "settings.password_too_short", "new password must be at least 6 characters")
	ErrNewPasswordTooLong   = newValidationError("newPassword", "settings.password_too_long", "new password must be at most 72 bytes")
	ErrAlreadyApplied       = newConflictError("startupId", "application.duplicate", "already applied to this startup")
	ErrApplicationStatus    = newValidationError("status", "application.invalid_status", "unknown application status")
	ErrApplicationUnknown   = newValidationError("applicationId", "application.unknown", "application not found")
	ErrFundingAmount        = newValidationError("amount", "funding.invalid_amount", "amount must be zero or more")
	ErrMessageEmpty         = newValidationError("text", "message.empty", "message text is empty")
	ErrMessageRecipient     = newValidationError("contactId", "message.recipient_required", "message recipient is required")
	ErrEventIncomplete      = newValidationError("event", "event.fields_required", "event title and date are required")
	ErrEventDate            = newValidationError("date", "event.invalid_date", "event date must be YYYY-MM-DD")
	ErrEventUnknown         = newValidationError("eventId", "event.unknown", "event does not exist")
	ErrAlreadyRegistered    = newConflictError("eventId", "event.duplicate", "already registered for this event")
	ErrInvalidCredentials   = &AuthError{Key: "auth.invalid_credentials", Message: "invalid email or password"}
)

// requireConfirmation guards destructive actions. A declined confirmation
// returns before any read or write.
func requireConfirmation(confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	return nil
}
