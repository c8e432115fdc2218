// Package dao defines the storage contract shared by the engine's persisted
// records (trading-mode settings, approval requests and decisions). Records
// are always written as complete replacements, never patched, so readers can
// observe old or new state but never a torn record.
package dao

import (
	"context"
)

// Service is a generic keyed record store.
type Service[K comparable, T any] interface {
	// Save stores t as a full replacement of any previous record.
	Save(ctx context.Context, t *T) error

	// Load returns the record for id, or ErrNotFound.
	Load(ctx context.Context, id K) (*T, error)

	// Delete removes the record for id.
	Delete(ctx context.Context, id K) error

	// List returns all stored records.
	List(ctx context.Context) ([]*T, error)
}
