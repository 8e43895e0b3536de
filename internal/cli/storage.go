package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/terraincognita07/venturehub/internal/store"
)

// RunImportStorageCommand loads a JSON object of collection name to value,
// such as a dump of the browser's local storage, replacing what is stored
// under each key it names.
func RunImportStorageCommand(ctx context.Context, st *store.Store, args []string, out io.Writer) error {
	path, err := singlePathArgument("import-storage", args)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	dump := map[string]json.RawMessage{}
	if err := json.Unmarshal(content, &dump); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	imported, skipped, err := st.Load(ctx, dump)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	fmt.Fprintf(out, "Imported %d keys from %s\n", imported, path)
	if len(skipped) > 0 {
		fmt.Fprintf(out, "Skipped unknown keys: %s\n", strings.Join(skipped, ", "))
	}
	return nil
}

func RunExportStorageCommand(ctx context.Context, st *store.Store, args []string, out io.Writer) error {
	path, err := singlePathArgument("export-storage", args)
	if err != nil {
		return err
	}

	dump, err := st.Dump(ctx)
	if err != nil {
		return fmt.Errorf("dump collections: %w", err)
	}
	content, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dump: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, append(content, '\n'), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(out, "Exported %d keys to %s\n", len(dump), path)
	return nil
}

func singlePathArgument(command string, args []string) (string, error) {
	if len(args) != 1 || args[0] == "" {
		return "", errors.New(command + " expects exactly one file path")
	}
	return args[0], nil
}
