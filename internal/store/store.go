package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
)

// Store reads and writes named collections. Each collection is one JSON
// array stored under its key. Reads never fail on malformed data: a value
// that is not a JSON array reads as an empty collection.
type Store struct {
	backend Backend
	mu      sync.Mutex
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Read returns the raw records of a collection.
func (store *Store) Read(ctx context.Context, collection string) ([]json.RawMessage, error) {
	raw, ok, err := store.backend.Get(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}
	if !ok {
		return []json.RawMessage{}, nil
	}
	return decodeArray(raw), nil
}

// Write replaces the whole collection in a single backend write.
func (store *Store) Write(ctx context.Context, collection string, records []json.RawMessage) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.write(ctx, collection, records)
}

// write expects store.mu to be held.
func (store *Store) write(ctx context.Context, collection string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := store.backend.Set(ctx, collection, string(payload)); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}

// Update runs a read-modify-write cycle on one collection. Cycles are
// serialised inside this process only.
func (store *Store) Update(ctx context.Context, collection string, mutate func([]json.RawMessage) ([]json.RawMessage, error)) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	records, err := store.Read(ctx, collection)
	if err != nil {
		return err
	}
	next, err := mutate(records)
	if err != nil {
		return err
	}
	return store.write(ctx, collection, next)
}

// ReadValue decodes a single-value key into target. ok is false when the key
// is absent or holds something target cannot decode.
func (store *Store) ReadValue(ctx context.Context, key string, target any) (bool, error) {
	raw, ok, err := store.backend.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return false, nil
	}
	return true, nil
}

func (store *Store) WriteValue(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	if err := store.backend.Set(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Clear removes the given keys.
func (store *Store) Clear(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	if err := store.backend.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}

// ClearAll wipes every collection together with the session and seed flags.
func (store *Store) ClearAll(ctx context.Context) error {
	return store.Clear(ctx, AllKeys()...)
}

// Dump exports every stored key as raw JSON, keyed like a browser storage
// export.
func (store *Store) Dump(ctx context.Context) (map[string]json.RawMessage, error) {
	keys, err := store.backend.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	dump := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		raw, ok, err := store.backend.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", key, err)
		}
		if !ok || !gjson.Valid(raw) {
			continue
		}
		dump[key] = json.RawMessage(raw)
	}
	return dump, nil
}

// Load imports a dump produced by Dump or by a browser storage export.
// Values may be JSON or JSON encoded as a string, which is how browsers
// store them. Keys the app does not own, such as the browser's theme
// preference, are skipped and returned sorted.
func (store *Store) Load(ctx context.Context, dump map[string]json.RawMessage) (int, []string, error) {
	values := make(map[string]string, len(dump))
	skipped := []string{}
	for key, raw := range dump {
		if !IsKnownKey(key) {
			skipped = append(skipped, key)
			continue
		}
		values[key] = unwrapStringValue(raw)
	}
	sort.Strings(skipped)

	store.mu.Lock()
	defer store.mu.Unlock()
	for key, value := range values {
		if err := store.backend.Set(ctx, key, value); err != nil {
			return 0, skipped, fmt.Errorf("write %s: %w", key, err)
		}
	}
	return len(values), skipped, nil
}

func decodeArray(raw string) []json.RawMessage {
	parsed := gjson.Parse(raw)
	if !gjson.Valid(raw) || !parsed.IsArray() {
		return []json.RawMessage{}
	}
	items := parsed.Array()
	records := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		records = append(records, json.RawMessage(item.Raw))
	}
	return records
}

func unwrapStringValue(raw json.RawMessage) string {
	parsed := gjson.ParseBytes(raw)
	if parsed.Type == gjson.String && gjson.Valid(parsed.Str) {
		return parsed.Str
	}
	return string(raw)
}
