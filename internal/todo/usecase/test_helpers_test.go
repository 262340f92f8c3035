package usecase_test

import (
	"context"
	"errors"
	"time"

	"github.com/Farhanb1/simple-vanilla-todo/internal/model"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo/usecase"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/notifier"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo implements repository.Repository and records every snapshot.
type mockRepo struct {
	loaded  []model.Task
	loadErr error
	saveErr error
	saves   [][]model.Task
}

func (m *mockRepo) SaveTasks(ctx context.Context, tasks []model.Task) error {
	snapshot := make([]model.Task, len(tasks))
	copy(snapshot, tasks)
	m.saves = append(m.saves, snapshot)
	return m.saveErr
}

func (m *mockRepo) LoadTasks(ctx context.Context) ([]model.Task, error) {
	return m.loaded, m.loadErr
}

func (m *mockRepo) lastSave() []model.Task {
	if len(m.saves) == 0 {
		return nil
	}
	return m.saves[len(m.saves)-1]
}

var errStorage = errors.New("storage unavailable")

// newUseCase starts a controller over repo with a long-lived notifier so
// messages can be inspected.
func newUseCase(repo *mockRepo) (todo.UseCase, *notifier.Notifier) {
	n := notifier.New(time.Hour)
	uc := usecase.New(&mockLogger{}, repo, n)
	if _, err := uc.Startup(context.Background()); err != nil {
		panic(err)
	}
	return uc, n
}

func currentText(n *notifier.Notifier) string {
	msg, ok := n.Current()
	if !ok {
		return ""
	}
	return msg.Text
}

func texts(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Text
	}
	return out
}
