package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Farhanb1/simple-vanilla-todo/pkg/response"
)

// Page renders the task list.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()

	list, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, err)
		return
	}
	notification, err := h.uc.Notification(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Notification: %v", err)
		response.InternalError(c, err)
		return
	}

	c.HTML(http.StatusOK, pageTemplateName, pageData{
		Rows:         h.renderer.RenderAll(list.Tasks),
		Notification: newNotificationResp(notification),
	})
}

// List godoc
// @Summary     List tasks
// @Description Returns every task in display order (newest submissions first).
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.fail(c, err, nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Submit godoc
// @Summary     Add a task
// @Description Adds a task at the top of the list. Empty text is rejected; so is text that matches an existing task case-insensitively.
// @Tags        Tasks
// @Accept      json
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       body body submitReq true "Task text"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Empty text"
// @Failure     409 {object} response.Resp "Duplicate text"
// @Router      /api/v1/tasks [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processSubmitReq: %v", err)
		h.fail(c, err, nil)
		return
	}

	output, err := h.uc.Submit(ctx, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.Submit rejected %q: %v", req.Text, err)
		var data map[string]interface{}
		if output.Message != "" {
			data = map[string]interface{}{"message": output.Message}
		}
		h.fail(c, h.mapError(err), data)
		return
	}

	h.respond(c, h.newSubmitResp(output))
}

// ToggleComplete godoc
// @Summary     Toggle completion
// @Description Flips the completed flag of a task. Execution state is not affected.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskStateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) ToggleComplete(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ToggleComplete(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.ToggleComplete: %v", err)
		h.fail(c, h.mapError(err), nil)
		return
	}

	h.respond(c, h.newTaskStateResp(output))
}

// Execute godoc
// @Summary     Execute a task
// @Description Marks a task executed and records the time. Executing an executed task changes nothing and reports already_executed.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} executeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/execute [POST]
func (h *handler) Execute(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Execute(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Execute: %v", err)
		h.fail(c, h.mapError(err), nil)
		return
	}

	h.respond(c, h.newExecuteResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task from the list permanently.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		h.fail(c, h.mapError(err), nil)
		return
	}

	h.respond(c, nil)
}

// RunTask godoc
// @Summary     Execute a task by text
// @Description Executes the first task whose text matches case-insensitively, exactly like the execute control. found is false when nothing matches.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body runTaskReq true "Task text"
// @Success     200 {object} runTaskResp
// @Router      /api/v1/tasks/run [POST]
func (h *handler) RunTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunTaskReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processRunTaskReq: %v", err)
		h.fail(c, err, nil)
		return
	}

	output, err := h.uc.RunTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RunTask: %v", err)
		h.fail(c, h.mapError(err), nil)
		return
	}

	h.respond(c, h.newRunTaskResp(output))
}

// Notification godoc
// @Summary     Current notification
// @Description Returns the transient message currently shown, if any.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} notificationResp
// @Router      /api/v1/notification [GET]
func (h *handler) Notification(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Notification(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Notification: %v", err)
		h.fail(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newNotificationResp(output))
}

// respond answers JSON clients with data and sends form posts back to the page.
func (h *handler) respond(c *gin.Context, data any) {
	if fromForm(c) {
		c.Redirect(http.StatusSeeOther, PagePath)
		return
	}
	response.OK(c, data)
}

// fail is respond for errors. The page shows rejections through the notification.
func (h *handler) fail(c *gin.Context, err error, data map[string]interface{}) {
	if fromForm(c) {
		c.Redirect(http.StatusSeeOther, PagePath)
		return
	}
	response.Error(c, err, data)
}
