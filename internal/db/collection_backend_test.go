package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "venturehub-test.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = Close(database)
	})
	return database
}

func TestCollectionBackendSetReplacesValue(t *testing.T) {
	ctx := context.Background()
	backend := NewCollectionBackend(openTestDatabase(t))

	if _, ok, err := backend.Get(ctx, "users"); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
	if err := backend.Set(ctx, "users", `[{"id":"1"}]`); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := backend.Set(ctx, "users", `[{"id":"2"}]`); err != nil {
		t.Fatalf("second set: %v", err)
	}
	value, ok, err := backend.Get(ctx, "users")
	if err != nil || !ok {
		t.Fatalf("expected stored key, ok=%v err=%v", ok, err)
	}
	if value != `[{"id":"2"}]` {
		t.Fatalf("expected latest payload, got %s", value)
	}
}

func TestCollectionBackendDeleteAndKeys(t *testing.T) {
	ctx := context.Background()
	backend := NewCollectionBackend(openTestDatabase(t))

	for _, key := range []string{"users", "messages", "currentUser"} {
		if err := backend.Set(ctx, key, `[]`); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}
	if err := backend.Delete(ctx, "users", "currentUser"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	keys, err := backend.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != "messages" {
		t.Fatalf("expected only messages to remain, got %v", keys)
	}
}

func TestOpenSQLiteIsIdempotentAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	first, err := OpenSQLite(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := NewCollectionBackend(first).Set(context.Background(), "users", `[]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := Close(first); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := OpenSQLite(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	t.Cleanup(func() { _ = Close(second) })

	var applied int64
	if err := second.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied).Error; err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != 2 {
		t.Fatalf("expected 2 applied migrations, got %d", applied)
	}
	if _, ok, err := NewCollectionBackend(second).Get(context.Background(), "users"); err != nil || !ok {
		t.Fatalf("expected data to survive reopen, ok=%v err=%v", ok, err)
	}
}

func TestSplitSQLStatementsDropsBlankParts(t *testing.T) {
	statements := splitSQLStatements("CREATE TABLE a (x INT);\n\n; CREATE INDEX i ON a(x);  ")
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %v", len(statements), statements)
	}
}
