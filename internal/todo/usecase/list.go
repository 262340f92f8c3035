package usecase

import (
	"context"

	"github.com/Farhanb1/simple-vanilla-todo/internal/todo"
)

// List returns a copy of the tasks in display order.
func (uc *implUseCase) List(ctx context.Context) (todo.ListOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return todo.ListOutput{Tasks: cloneTasks(uc.tasks)}, nil
}

// Notification returns the message currently occupying the notification slot.
func (uc *implUseCase) Notification(ctx context.Context) (todo.NotificationOutput, error) {
	msg, ok := uc.notifier.Current()
	if !ok {
		return todo.NotificationOutput{}, nil
	}
	return todo.NotificationOutput{
		Visible:   true,
		Text:      msg.Text,
		ExpiresAt: msg.ExpiresAt,
		Remaining: msg.Remaining(uc.now()),
	}, nil
}
