package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Farhanb1/simple-vanilla-todo/internal/middleware"
)

// PagePath serves the HTML task list.
const PagePath = "/"

// RegisterPage installs the page template on the engine and serves it at PagePath.
func RegisterPage(r *gin.Engine, h *handler) {
	r.SetHTMLTemplate(pageTemplate)
	r.GET(PagePath, h.Page)
}

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Mutating routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", mw.RateLimit(), h.Submit)
		tasks.POST("/run", mw.RateLimit(), h.RunTask)
		tasks.POST("/:id/toggle", mw.RateLimit(), h.ToggleComplete)
		tasks.POST("/:id/execute", mw.RateLimit(), h.Execute)
		tasks.POST("/:id/delete", mw.RateLimit(), h.Delete)
		tasks.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
	rg.GET("/notification", h.Notification)
}
