package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Farhanb1/simple-vanilla-todo/internal/middleware"
	todoHTTP "github.com/Farhanb1/simple-vanilla-todo/internal/todo/delivery/http"
)

// setupTodoDomain registers the task list page and its API.
// The use case is built in main so Startup runs before the server listens.
func (srv HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := todoHTTP.New(srv.l, srv.todoUC, srv.renderer)

	todoHTTP.RegisterPage(srv.gin, h)
	todoHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Todo domain registered")
	return nil
}
