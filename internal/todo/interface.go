package todo

import "context"

// UseCase is the task list controller. It owns the ordered task collection
// and the notification slot; every action persists a fresh snapshot.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Startup loads the persisted list, or seeds and persists the starter tasks.
	Startup(ctx context.Context) (StartupOutput, error)

	List(ctx context.Context) (ListOutput, error)
	Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error)
	ToggleComplete(ctx context.Context, id string) (TaskOutput, error)
	// Execute moves a task to the executed state. Executing an already
	// executed task changes nothing and reports AlreadyExecuted.
	Execute(ctx context.Context, id string) (ExecuteOutput, error)
	Delete(ctx context.Context, id string) error

	// RunTask executes the first task whose text matches case-insensitively.
	RunTask(ctx context.Context, input RunTaskInput) (RunTaskOutput, error)

	Notification(ctx context.Context) (NotificationOutput, error)
}
