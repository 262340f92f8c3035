package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Farhanb1/simple-vanilla-todo/internal/model"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo/repository"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/log"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/notifier"
)

// Notifier is the single-slot message surface the controller reports to.
type Notifier interface {
	Show(message string, d time.Duration)
	Current() (notifier.Message, bool)
}

// implUseCase is the private implementation of todo.UseCase.
// mu serializes every action; tasks is the display order.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	notifier Notifier

	mu    sync.Mutex
	tasks []model.Task

	now   func() time.Time
	newID func() string
}

// New creates a new todo UseCase implementation.
func New(l log.Logger, repo repository.Repository, n Notifier) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		notifier: n,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}
