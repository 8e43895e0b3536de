package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/terraincognita07/venturehub/internal/store"
)

var errClearNotConfirmed = errors.New("clear-data wipes every collection and the session; rerun with --yes")

// RunClearDataCommand is the bulk reset. It is only reachable from the
// command line and refuses to run without --yes.
func RunClearDataCommand(ctx context.Context, st *store.Store, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("clear-data", flag.ContinueOnError)
	fs.SetOutput(out)
	yes := fs.Bool("yes", false, "confirm wiping all stored data")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*yes {
		return errClearNotConfirmed
	}

	if err := st.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear collections: %w", err)
	}
	fmt.Fprintln(out, "All collections cleared.")
	return nil
}
