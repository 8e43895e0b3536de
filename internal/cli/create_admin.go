package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/terraincognita07/venturehub/internal/services"
)

// readPassword is swapped out by tests.
var readPassword = func() ([]byte, error) {
	return readPasswordNoEcho(os.Stdin)
}

func RunCreateAdminCommand(ctx context.Context, auth *services.AuthService, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	fs.SetOutput(out)
	email := fs.String("email", "", "administrator email")
	name := fs.String("name", "Administrator", "administrator display name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("--email is required")
	}

	password, err := promptNewPassword(out)
	if err != nil {
		return err
	}

	user, err := auth.CreateAdmin(ctx, *name, *email, password, time.Now())
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	fmt.Fprintf(out, "Administrator %s created (id %s)\n", user.Email, user.ID)
	return nil
}

func promptNewPassword(out io.Writer) (string, error) {
	fmt.Fprint(out, "Password: ")
	password, err := readPassword()
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Fprint(out, "Confirm password: ")
	confirmation, err := readPassword()
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if string(password) != string(confirmation) {
		return "", errors.New("passwords do not match")
	}
	return string(password), nil
}
