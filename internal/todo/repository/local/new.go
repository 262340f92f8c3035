package local

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Farhanb1/simple-vanilla-todo/internal/todo/repository"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/kvstore"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/log"
)

type implRepository struct {
	storage kvstore.Storage
	l       log.Logger
	key     string
	now     func() time.Time
	newID   func() string
}

// New creates a Repository that keeps the task list in an origin-scoped
// key-value storage under repository.StorageKey.
func New(storage kvstore.Storage, l log.Logger) repository.Repository {
	if storage == nil {
		panic("todo/repository/local: storage is required")
	}
	return &implRepository{
		storage: storage,
		l:       l,
		key:     repository.StorageKey,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/local.%s", method)
}
