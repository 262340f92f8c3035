package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Farhanb1/simple-vanilla-todo/internal/model"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo"
)

// persist saves the current snapshot. Failures are logged and swallowed so
// the in-memory list stays usable.
func (uc *implUseCase) persist(ctx context.Context) {
	if err := uc.repo.SaveTasks(ctx, uc.tasks); err != nil {
		uc.l.Warnf(ctx, "uc.persist SaveTasks: %v", err)
	}
}

func (uc *implUseCase) notify(format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	uc.notifier.Show(msg, 0)
	return msg
}

func (uc *implUseCase) indexOf(id string) int {
	for i, t := range uc.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (uc *implUseCase) indexOfText(text string) int {
	normalized := todo.Normalize(text)
	if normalized == "" {
		return -1
	}
	for i, t := range uc.tasks {
		if todo.Normalize(t.Text) == normalized {
			return i
		}
	}
	return -1
}

// timestamp returns the current time at the precision the store persists.
func (uc *implUseCase) timestamp() time.Time {
	return uc.now().UTC().Truncate(time.Millisecond)
}

func cloneTask(t model.Task) model.Task {
	if t.ExecutedAt != nil {
		at := *t.ExecutedAt
		t.ExecutedAt = &at
	}
	return t
}

func cloneTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = cloneTask(t)
	}
	return out
}
