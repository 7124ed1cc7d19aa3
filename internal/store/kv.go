// Package store provides the key-value persistence boundary: durable
// records are stored as JSON blobs under one stable key per entity kind.
// Readers always receive a well-typed collection — an absent key or a
// corrupt blob decodes to the empty value, never to an error the agenda
// logic has to handle.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Per-entity-kind storage keys.
const (
	KeyAppointments = "vida:appointments"
	KeyRules        = "vida:fixed-rules"
	KeyTasks        = "vida:tasks"
	KeyHabits       = "vida:habits"
	KeyHabitLogs    = "vida:habit-logs"
	KeyGoals        = "vida:goals"
	KeyTransactions = "vida:transactions"
	KeyMoodLogs     = "vida:mood-logs"
	KeyProfile      = "vida:profile"
)

// KV is the storage contract: byte blobs keyed by entity kind. Writes
// carry no cross-key transactional guarantee and the core never relies on
// one.
type KV interface {
	// Get returns the blob under key and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the blob under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// LoadSlice decodes the collection stored under key. An absent key or a
// blob that fails to decode yields an empty slice; only storage I/O
// failures surface as errors.
func LoadSlice[T any](ctx context.Context, kv KV, key string) ([]T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	if !ok {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		// Corrupt blob: substitute the documented default.
		return []T{}, nil
	}
	return items, nil
}

// SaveSlice encodes items as JSON and stores the blob under key.
func SaveSlice[T any](ctx context.Context, kv KV, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// LoadValue decodes the single value stored under key, returning def when
// the key is absent or the blob unparsable.
func LoadValue[T any](ctx context.Context, kv KV, key string, def T) (T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return def, fmt.Errorf("loading %s: %w", key, err)
	}
	if !ok {
		return def, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def, nil
	}
	return v, nil
}

// SaveValue encodes v as JSON and stores the blob under key.
func SaveValue[T any](ctx context.Context, kv KV, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
