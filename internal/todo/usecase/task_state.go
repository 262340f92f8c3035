package usecase

import (
	"context"
	"slices"

	"github.com/Farhanb1/simple-vanilla-todo/internal/todo"
)

// ToggleComplete flips the completed flag. Execution state is untouched.
func (uc *implUseCase) ToggleComplete(ctx context.Context, id string) (todo.TaskOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return todo.TaskOutput{}, todo.ErrTaskNotFound
	}
	uc.tasks[i].Completed = !uc.tasks[i].Completed
	uc.persist(ctx)

	return todo.TaskOutput{Task: cloneTask(uc.tasks[i])}, nil
}

// Execute transitions a pending task to executed.
func (uc *implUseCase) Execute(ctx context.Context, id string) (todo.ExecuteOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return todo.ExecuteOutput{}, todo.ErrTaskNotFound
	}
	return uc.execute(ctx, i), nil
}

// execute runs the Pending -> Executed transition for the task at i.
// Executed is terminal: a second call only notifies. Callers hold uc.mu.
func (uc *implUseCase) execute(ctx context.Context, i int) todo.ExecuteOutput {
	t := &uc.tasks[i]
	if t.Executed {
		msg := uc.notify("Task already executed: \"%s\"", t.Text)
		return todo.ExecuteOutput{Task: cloneTask(*t), AlreadyExecuted: true, Message: msg}
	}

	at := uc.timestamp()
	t.Executed = true
	t.ExecutedAt = &at
	uc.persist(ctx)
	uc.l.Infof(ctx, "Executed task \"%s\" at %s", t.Text, at.Format("2006-01-02T15:04:05.000Z07:00"))

	msg := uc.notify("Executed: \"%s\"", t.Text)
	return todo.ExecuteOutput{Task: cloneTask(*t), Message: msg}
}

// Delete removes a task from the list.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return todo.ErrTaskNotFound
	}
	uc.tasks = slices.Delete(uc.tasks, i, i+1)
	uc.persist(ctx)
	return nil
}
