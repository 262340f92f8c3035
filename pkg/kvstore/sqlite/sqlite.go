// Package sqlite stores origin-scoped items in a SQLite table through gorm.
package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/Farhanb1/simple-vanilla-todo/pkg/kvstore"
)

type item struct {
	Origin string `gorm:"primaryKey;size:255"`
	Key    string `gorm:"column:item_key;primaryKey;size:255"`
	Value  string `gorm:"type:text;not null"`
}

func (item) TableName() string { return "kv_items" }

// Options configures a sqlite Storage.
type Options struct {
	Origin string
	Quota  int64
}

// Storage is a gorm-backed kvstore.Storage.
type Storage struct {
	db     *gorm.DB
	origin string
	quota  int64
}

var _ kvstore.Storage = (*Storage)(nil)

// Open opens (or creates) the SQLite database at path.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("kvstore/sqlite: open %s: %w", path, err)
	}
	return db, nil
}

// New migrates the items table and returns a Storage scoped to opt.Origin.
func New(db *gorm.DB, opt Options) (*Storage, error) {
	if db == nil {
		return nil, errors.New("kvstore/sqlite: db is required")
	}
	if err := db.AutoMigrate(&item{}); err != nil {
		return nil, fmt.Errorf("kvstore/sqlite: migrate: %w", err)
	}
	origin := opt.Origin
	if origin == "" {
		origin = kvstore.DefaultOrigin
	}
	return &Storage{db: db, origin: origin, quota: opt.Quota}, nil
}

func (s *Storage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var it item
	err := s.db.WithContext(ctx).
		Where("origin = ? AND item_key = ?", s.origin, key).
		First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kvstore/sqlite: get: %w", err)
	}
	return it.Value, true, nil
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []item
		if err := tx.Where("origin = ?", s.origin).Find(&rows).Error; err != nil {
			return fmt.Errorf("kvstore/sqlite: usage: %w", err)
		}
		items := make(map[string]string, len(rows))
		for _, r := range rows {
			items[r.Key] = r.Value
		}
		prev, existed := items[key]
		if err := kvstore.CheckQuota(s.quota, kvstore.Usage(items), key, value, prev, existed); err != nil {
			return err
		}

		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "origin"}, {Name: "item_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&item{Origin: s.origin, Key: key, Value: value}).Error
		if err != nil {
			return fmt.Errorf("kvstore/sqlite: set: %w", err)
		}
		return nil
	})
}
