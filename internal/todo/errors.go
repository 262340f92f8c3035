package todo

import "errors"

var (
	ErrEmptyText     = errors.New("task text is empty")
	ErrDuplicateText = errors.New("task already added")
	ErrTaskNotFound  = errors.New("task not found")
)
