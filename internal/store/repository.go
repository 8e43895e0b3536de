package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Repository is a typed view over one collection. ownerField names the JSON
// field ListFor filters on; an empty ownerField makes ListFor return
// everything.
type Repository[T any] struct {
	store      *Store
	collection string
	ownerField string
}

func NewRepository[T any](store *Store, collection string, ownerField string) *Repository[T] {
	return &Repository[T]{store: store, collection: collection, ownerField: ownerField}
}

func (repo *Repository[T]) Collection() string {
	return repo.collection
}

// All decodes every record. Records that do not decode into T are skipped.
func (repo *Repository[T]) All(ctx context.Context) ([]T, error) {
	return repo.listMatching(ctx, func(json.RawMessage) bool { return true })
}

// ListFor returns records whose owner field equals ownerID exactly.
func (repo *Repository[T]) ListFor(ctx context.Context, ownerID string) ([]T, error) {
	if repo.ownerField == "" {
		return repo.All(ctx)
	}
	return repo.ListWhere(ctx, repo.ownerField, ownerID)
}

// ListWhere returns records whose string field equals value exactly.
func (repo *Repository[T]) ListWhere(ctx context.Context, field string, value string) ([]T, error) {
	return repo.listMatching(ctx, fieldEquals(field, value))
}

// Filter returns decoded records accepted by keep, in stored order.
func (repo *Repository[T]) Filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	all, err := repo.All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]T, 0, len(all))
	for _, record := range all {
		if keep(record) {
			result = append(result, record)
		}
	}
	return result, nil
}

// Find returns the first record accepted by match.
func (repo *Repository[T]) Find(ctx context.Context, match func(T) bool) (T, bool, error) {
	var zero T
	all, err := repo.All(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, record := range all {
		if match(record) {
			return record, true, nil
		}
	}
	return zero, false, nil
}

// FindBy returns the first record whose string field equals value.
func (repo *Repository[T]) FindBy(ctx context.Context, field string, value string) (T, bool, error) {
	var zero T
	records, err := repo.listMatching(ctx, fieldEquals(field, value))
	if err != nil {
		return zero, false, err
	}
	if len(records) == 0 {
		return zero, false, nil
	}
	return records[0], true, nil
}

func (repo *Repository[T]) Exists(ctx context.Context, match func(T) bool) (bool, error) {
	_, ok, err := repo.Find(ctx, match)
	return ok, err
}

// Append adds a record at the end of the collection.
func (repo *Repository[T]) Append(ctx context.Context, record T) error {
	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", repo.collection, err)
	}
	return repo.store.Update(ctx, repo.collection, func(records []json.RawMessage) ([]json.RawMessage, error) {
		return append(records, encoded), nil
	})
}

// Upsert replaces the first record accepted by match, or appends when none
// matches. It reports whether an existing record was replaced.
func (repo *Repository[T]) Upsert(ctx context.Context, record T, match func(T) bool) (bool, error) {
	encoded, err := json.Marshal(record)
	if err != nil {
		return false, fmt.Errorf("encode %s record: %w", repo.collection, err)
	}
	replaced := false
	err = repo.store.Update(ctx, repo.collection, func(records []json.RawMessage) ([]json.RawMessage, error) {
		for index, raw := range records {
			current, ok := decode[T](raw)
			if ok && match(current) {
				records[index] = encoded
				replaced = true
				return records, nil
			}
		}
		return append(records, encoded), nil
	})
	return replaced, err
}

// RemoveWhere drops every record accepted by match and returns how many
// went. Records that cannot be decoded are kept untouched.
func (repo *Repository[T]) RemoveWhere(ctx context.Context, match func(T) bool) (int, error) {
	removed := 0
	err := repo.store.Update(ctx, repo.collection, func(records []json.RawMessage) ([]json.RawMessage, error) {
		kept := records[:0]
		for _, raw := range records {
			current, ok := decode[T](raw)
			if ok && match(current) {
				removed++
				continue
			}
			kept = append(kept, raw)
		}
		return kept, nil
	})
	return removed, err
}

// SetWhere sets one JSON field on every record accepted by match, leaving
// the rest of each record byte for byte as stored.
func (repo *Repository[T]) SetWhere(ctx context.Context, match func(T) bool, path string, value any) (int, error) {
	changed := 0
	err := repo.store.Update(ctx, repo.collection, func(records []json.RawMessage) ([]json.RawMessage, error) {
		for index, raw := range records {
			current, ok := decode[T](raw)
			if !ok || !match(current) {
				continue
			}
			updated, err := sjson.SetBytes(raw, path, value)
			if err != nil {
				return nil, fmt.Errorf("set %s.%s: %w", repo.collection, path, err)
			}
			records[index] = updated
			changed++
		}
		return records, nil
	})
	return changed, err
}

// ReplaceAll overwrites the collection with records.
func (repo *Repository[T]) ReplaceAll(ctx context.Context, records []T) error {
	encoded := make([]json.RawMessage, 0, len(records))
	for _, record := range records {
		raw, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("encode %s record: %w", repo.collection, err)
		}
		encoded = append(encoded, raw)
	}
	return repo.store.Write(ctx, repo.collection, encoded)
}

func (repo *Repository[T]) listMatching(ctx context.Context, keep func(json.RawMessage) bool) ([]T, error) {
	records, err := repo.store.Read(ctx, repo.collection)
	if err != nil {
		return nil, err
	}
	result := make([]T, 0, len(records))
	for _, raw := range records {
		if !keep(raw) {
			continue
		}
		if record, ok := decode[T](raw); ok {
			result = append(result, record)
		}
	}
	return result, nil
}

func fieldEquals(field string, value string) func(json.RawMessage) bool {
	return func(raw json.RawMessage) bool {
		result := gjson.GetBytes(raw, field)
		return result.Exists() && result.Type == gjson.String && result.Str == value
	}
}

func decode[T any](raw json.RawMessage) (T, bool) {
	var record T
	if err := json.Unmarshal(raw, &record); err != nil {
		return record, false
	}
	return record, true
}
