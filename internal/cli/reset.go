package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/mail"
	"strings"

	"github.com/terraincognita07/venturehub/internal/security"
	"github.com/terraincognita07/venturehub/internal/services"
)

const temporaryPasswordLength = 12

// RunResetPasswordCommand replaces the password of one account with a
// random temporary one and prints it once.
func RunResetPasswordCommand(ctx context.Context, auth *services.AuthService, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	fs.SetOutput(out)
	emailFlag := fs.String("email", "", "email of the account to reset")
	if err := fs.Parse(args); err != nil {
		return err
	}

	email := strings.TrimSpace(*emailFlag)
	if email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	temporaryPassword, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	if err := auth.ResetPassword(ctx, email, temporaryPassword); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return fmt.Errorf("user %s not found", email)
		}
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	fmt.Fprintln(out, "Sessions issued before the reset stay valid until they expire.")
	return nil
}
