package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Farhanb1/simple-vanilla-todo/config"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/kvstore"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/kvstore/file"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/kvstore/memory"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/kvstore/sqlite"
)

// openStorage builds the configured backend. The returned close func is never nil.
func openStorage(cfg config.StorageConfig) (kvstore.Storage, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case kvstore.DriverMemory:
		return memory.New(memory.Options{Quota: cfg.QuotaBytes}), noop, nil

	case kvstore.DriverFile:
		s, err := file.New(file.Options{Dir: cfg.Path, Origin: cfg.Origin, Quota: cfg.QuotaBytes})
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	case kvstore.DriverSQLite:
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, noop, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		db, err := sqlite.Open(cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, noop, err
		}
		s, err := sqlite.New(db, sqlite.Options{Origin: cfg.Origin, Quota: cfg.QuotaBytes})
		if err != nil {
			_ = sqlDB.Close()
			return nil, noop, err
		}
		return s, sqlDB.Close, nil

	case kvstore.DriverDisabled:
		return kvstore.Disabled{}, noop, nil
	}

	return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
