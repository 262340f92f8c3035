package todo

import (
	"time"

	"github.com/Farhanb1/simple-vanilla-todo/internal/model"
)

// SeedTexts are shown when nothing is persisted yet.
var SeedTexts = []string{
	"Try adding a task",
	"Click ✔ to mark complete",
}

// --- UseCase Inputs ---

type SubmitInput struct {
	Text string
}

type RunTaskInput struct {
	Text string
}

// --- UseCase Outputs ---

type StartupOutput struct {
	Tasks  []model.Task
	Seeded bool
}

type ListOutput struct {
	Tasks []model.Task
}

type SubmitOutput struct {
	Task    model.Task
	Message string
}

type TaskOutput struct {
	Task model.Task
}

type ExecuteOutput struct {
	Task            model.Task
	AlreadyExecuted bool
	Message         string
}

type RunTaskOutput struct {
	Found   bool
	Execute ExecuteOutput
	Message string
}

type NotificationOutput struct {
	Visible   bool
	Text      string
	ExpiresAt time.Time
	Remaining time.Duration
}
