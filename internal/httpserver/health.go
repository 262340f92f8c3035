package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "github.com/Farhanb1/simple-vanilla-todo/pkg/errors"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "To-do list is up"
	HealthVersion = "1.0.0"
	ServiceName   = "simple-vanilla-todo"
)

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "task list is not ready")

// healthCheck handles health check requests
// @Summary Health Check
// @Description Service identity and version
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck answers 200 only when the task list controller serves a read.
// @Summary Readiness Check
// @Description Check that the task list answers reads
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Task list unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := srv.todoUC.List(ctx)
	if err != nil {
		srv.l.Warnf(ctx, "readyCheck uc.List: %v", err)
		response.Error(c, errNotReady, nil)
		return
	}

	response.OK(c, gin.H{
		"status": "ready",
		"tasks":  len(out.Tasks),
	})
}

// liveCheck only proves the process is serving HTTP.
// @Summary Liveness Check
// @Tags Health
// @Success 204
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
