package usecase

import (
	"context"
	"strings"

	"github.com/Farhanb1/simple-vanilla-todo/internal/model"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo"
)

// Submit adds a new task at the top of the list.
func (uc *implUseCase) Submit(ctx context.Context, input todo.SubmitInput) (todo.SubmitOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return todo.SubmitOutput{}, todo.ErrEmptyText
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if todo.IsDuplicate(text, uc.tasks) {
		msg := uc.notify("Task already added: \"%s\"", text)
		return todo.SubmitOutput{Message: msg}, todo.ErrDuplicateText
	}

	t := model.Task{ID: uc.newID(), Text: text}
	uc.tasks = append([]model.Task{t}, uc.tasks...)
	uc.persist(ctx)

	msg := uc.notify("Added: \"%s\"", text)
	return todo.SubmitOutput{Task: cloneTask(t), Message: msg}, nil
}
