package usecase

import (
	"context"

	"github.com/Farhanb1/simple-vanilla-todo/internal/model"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo"
)

// Startup adopts the persisted list in stored order. When nothing usable is
// stored, the starter tasks are shown and persisted right away.
func (uc *implUseCase) Startup(ctx context.Context) (todo.StartupOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	tasks, err := uc.repo.LoadTasks(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Startup LoadTasks: %v", err)
		tasks = nil
	}

	if len(tasks) > 0 {
		uc.tasks = tasks
		uc.l.Infof(ctx, "Loaded %d tasks from storage", len(tasks))
		return todo.StartupOutput{Tasks: cloneTasks(uc.tasks)}, nil
	}

	uc.tasks = make([]model.Task, 0, len(todo.SeedTexts))
	for _, text := range todo.SeedTexts {
		uc.tasks = append(uc.tasks, model.Task{ID: uc.newID(), Text: text})
	}
	uc.persist(ctx)
	uc.l.Infof(ctx, "No stored tasks, seeded %d starter tasks", len(uc.tasks))

	return todo.StartupOutput{Tasks: cloneTasks(uc.tasks), Seeded: true}, nil
}
