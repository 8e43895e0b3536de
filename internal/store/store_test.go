package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestReadMissingOrMalformedCollectionIsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	store := New(backend)

	tests := []struct {
		name  string
		value *string
	}{
		{name: "absent"},
		{name: "empty string", value: ptr("")},
		{name: "malformed json", value: ptr("{not json")},
		{name: "object instead of array", value: ptr(`{"id":"1"}`)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := backend.Delete(ctx, Milestones); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if tc.value != nil {
				if err := backend.Set(ctx, Milestones, *tc.value); err != nil {
					t.Fatalf("set: %v", err)
				}
			}
			records, err := store.Read(ctx, Milestones)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(records) != 0 {
				t.Fatalf("expected empty collection, got %d records", len(records))
			}
		})
	}
}

func TestWriteThenReadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := New(NewMemoryBackend())

	records := []json.RawMessage{
		json.RawMessage(`{"id":"a","userId":"u1"}`),
		json.RawMessage(`{"id":"b","userId":"u2"}`),
	}
	if err := store.Write(ctx, Milestones, records); err != nil {
		t.Fatalf("write: %v", err)
	}

	first, err := store.Read(ctx, Milestones)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := store.Read(ctx, Milestones)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected two records on both reads, got %d and %d", len(first), len(second))
	}
	for index := range first {
		if string(first[index]) != string(second[index]) {
			t.Fatalf("record %d changed between reads: %s vs %s", index, first[index], second[index])
		}
	}
}

func TestClearAllRemovesCollectionsAndSessionKeys(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	store := New(backend)

	for _, key := range []string{Users, Messages, CurrentUser, UsersSeeded} {
		if err := backend.Set(ctx, key, `[]`); err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
	}
	if err := store.ClearAll(ctx); err != nil {
		t.Fatalf("clear all: %v", err)
	}
	keys, err := backend.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected no keys after clear, got %v", keys)
	}
}

func TestLoadAcceptsBrowserEncodedValuesAndSkipsUnknownKeys(t *testing.T) {
	ctx := context.Background()
	store := New(NewMemoryBackend())

	dump := map[string]json.RawMessage{
		Users:       json.RawMessage(`"[{\"id\":\"u1\",\"email\":\"a@b.c\"}]"`),
		PitchEvents: json.RawMessage(`[{"id":"e1","title":"Demo day"}]`),
		"theme":     json.RawMessage(`"dark"`),
	}
	loaded, skipped, err := store.Load(ctx, dump)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != 2 {
		t.Fatalf("expected 2 keys loaded, got %d", loaded)
	}
	if len(skipped) != 1 || skipped[0] != "theme" {
		t.Fatalf("expected theme skipped, got %v", skipped)
	}
	users, err := store.Read(ctx, Users)
	if err != nil || len(users) != 1 {
		t.Fatalf("expected one user after load, got %d (err=%v)", len(users), err)
	}
	keys, err := store.backend.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	for _, key := range keys {
		if key == "theme" {
			t.Fatal("unknown key must not be stored")
		}
	}
}

func TestWriteWaitsForRunningUpdate(t *testing.T) {
	ctx := context.Background()
	store := New(NewMemoryBackend())

	entered := make(chan struct{})
	release := make(chan struct{})
	updated := make(chan error, 1)
	go func() {
		updated <- store.Update(ctx, Messages, func(records []json.RawMessage) ([]json.RawMessage, error) {
			close(entered)
			<-release
			return append(records, json.RawMessage(`{"id":"from-update"}`)), nil
		})
	}()
	<-entered

	written := make(chan error, 1)
	go func() {
		written <- store.Write(ctx, Messages, []json.RawMessage{json.RawMessage(`{"id":"from-write"}`)})
	}()
	select {
	case err := <-written:
		t.Fatalf("write finished while an update was running (err=%v)", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	if err := <-updated; err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := <-written; err != nil {
		t.Fatalf("write: %v", err)
	}
	messages, err := store.Read(ctx, Messages)
	if err != nil || len(messages) != 1 || string(messages[0]) != `{"id":"from-write"}` {
		t.Fatalf("expected the later write to win whole, got %s (err=%v)", messages, err)
	}
}

func TestDumpRoundTripsThroughLoad(t *testing.T) {
	ctx := context.Background()
	source := New(NewMemoryBackend())
	if err := source.Write(ctx, Messages, []json.RawMessage{json.RawMessage(`{"id":"m1","text":"hi"}`)}); err != nil {
		t.Fatalf("write: %v", err)
	}

	dump, err := source.Dump(ctx)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	target := New(NewMemoryBackend())
	if _, _, err := target.Load(ctx, dump); err != nil {
		t.Fatalf("load: %v", err)
	}
	messages, err := target.Read(ctx, Messages)
	if err != nil || len(messages) != 1 {
		t.Fatalf("expected one message after round trip, got %d (err=%v)", len(messages), err)
	}
}

func ptr(value string) *string {
	return &value
}
