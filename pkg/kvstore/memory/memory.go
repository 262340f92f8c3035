package memory

import (
	"context"
	"sync"

	"github.com/Farhanb1/simple-vanilla-todo/pkg/kvstore"
)

// Options configures a memory Storage.
type Options struct {
	Quota int64 // bytes; <= 0 means unlimited
}

// Storage keeps items in a map for the lifetime of the process.
type Storage struct {
	mu    sync.RWMutex
	items map[string]string
	quota int64
}

var _ kvstore.Storage = (*Storage)(nil)

// New creates an empty memory Storage.
func New(opt Options) *Storage {
	return &Storage{items: map[string]string{}, quota: opt.Quota}
}

func (s *Storage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	return v, ok, nil
}

func (s *Storage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	if err := kvstore.CheckQuota(s.quota, kvstore.Usage(s.items), key, value, prev, existed); err != nil {
		return err
	}
	s.items[key] = value
	return nil
}
