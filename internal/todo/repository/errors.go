package repository

import "errors"

var (
	ErrFailedToSave = errors.New("failed to save tasks")
	ErrFailedToLoad = errors.New("failed to load tasks")
)
