package repository

import (
	"context"

	"github.com/Farhanb1/simple-vanilla-todo/internal/model"
)

// StorageKey is the key the task list snapshot lives under. Changing the
// persisted layout requires a new key so old data is never misread.
const StorageKey = "todo-items-v2"

// Repository persists snapshots of the ordered task list.
type Repository interface {
	// SaveTasks overwrites the stored snapshot with tasks.
	SaveTasks(ctx context.Context, tasks []model.Task) error
	// LoadTasks returns the stored snapshot. A missing or unparsable value
	// yields nil tasks and a nil error.
	LoadTasks(ctx context.Context) ([]model.Task, error)
}
