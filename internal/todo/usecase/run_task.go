package usecase

import (
	"context"

	"github.com/Farhanb1/simple-vanilla-todo/internal/todo"
)

// RunTask executes the first task whose normalized text equals the input's,
// exactly as the execute control would. Not finding one is reported through
// Found, not an error.
func (uc *implUseCase) RunTask(ctx context.Context, input todo.RunTaskInput) (todo.RunTaskOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOfText(input.Text)
	if i < 0 {
		msg := uc.notify("Task not found: \"%s\"", input.Text)
		return todo.RunTaskOutput{Found: false, Message: msg}, nil
	}

	out := uc.execute(ctx, i)
	return todo.RunTaskOutput{Found: true, Execute: out, Message: out.Message}, nil
}
