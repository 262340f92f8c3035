// Package file persists an origin's items as one JSON document on disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/Farhanb1/simple-vanilla-todo/pkg/kvstore"
)

// ErrCorrupt is returned by GetItem when the document on disk does not parse.
// The next SetItem moves the document aside and starts a fresh one.
var ErrCorrupt = errors.New("kvstore/file: corrupt document")

// Options configures a file Storage.
type Options struct {
	Dir    string
	Origin string
	Quota  int64
}

// Storage is a file-backed kvstore.Storage. Every write rewrites the whole
// document through a temp file and rename.
type Storage struct {
	mu    sync.Mutex
	path  string
	quota int64
}

var _ kvstore.Storage = (*Storage)(nil)

// New creates the storage directory if needed and returns a Storage for the origin.
func New(opt Options) (*Storage, error) {
	if opt.Dir == "" {
		return nil, errors.New("kvstore/file: dir is required")
	}
	origin := opt.Origin
	if origin == "" {
		origin = kvstore.DefaultOrigin
	}
	if err := os.MkdirAll(opt.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("kvstore/file: create dir: %w", err)
	}
	return &Storage{
		path:  filepath.Join(opt.Dir, url.PathEscape(origin)+".json"),
		quota: opt.Quota,
	}, nil
}

// Path returns the document path for this origin.
func (s *Storage) Path() string { return s.path }

// CorruptPath is where an unreadable document is moved before being replaced.
func (s *Storage) CorruptPath() string { return s.path + ".corrupt" }

func (s *Storage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := items[key]
	return v, ok, nil
}

func (s *Storage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if errors.Is(err, ErrCorrupt) {
		if err := s.quarantine(); err != nil {
			return err
		}
		items = map[string]string{}
	} else if err != nil {
		return err
	}
	prev, existed := items[key]
	if err := kvstore.CheckQuota(s.quota, kvstore.Usage(items), key, value, prev, existed); err != nil {
		return err
	}
	items[key] = value
	return s.write(items)
}

func (s *Storage) read() (map[string]string, error) {
	items := map[string]string{}
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return items, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore/file: read: %w", err)
	}
	if len(b) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	return items, nil
}

// quarantine renames an unreadable document to <path>.corrupt, replacing any
// earlier one.
func (s *Storage) quarantine() error {
	if err := os.Rename(s.path, s.CorruptPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("kvstore/file: quarantine: %w", err)
	}
	return nil
}

func (s *Storage) write(items map[string]string) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("kvstore/file: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".kv-*.tmp")
	if err != nil {
		return fmt.Errorf("kvstore/file: temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("kvstore/file: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("kvstore/file: close: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("kvstore/file: rename: %w", err)
	}
	return nil
}
