// Package kvstore defines the origin-scoped string key-value storage the task
// list persists into, plus its backends.
package kvstore

import "context"

// Storage is a flat string key-value store scoped to one origin.
type Storage interface {
	// GetItem returns the value stored under key. ok is false when absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	// SetItem stores value under key, replacing any prior value.
	SetItem(ctx context.Context, key, value string) error
}
