package http

import (
	"net/http"

	"github.com/Farhanb1/simple-vanilla-todo/internal/todo"
	pkgErrors "github.com/Farhanb1/simple-vanilla-todo/pkg/errors"
)

var errTextTooLong = pkgErrors.NewHTTPError(http.StatusBadRequest, "task text must be at most 1000 characters")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case todo.ErrEmptyText:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case todo.ErrDuplicateText:
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case todo.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
