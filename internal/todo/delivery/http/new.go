package http

import (
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo/render"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       todo.UseCase
	renderer *render.Renderer
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase, renderer *render.Renderer) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		renderer: renderer,
	}
}
