package http

import (
	"time"
	"unicode/utf8"

	"github.com/Farhanb1/simple-vanilla-todo/internal/todo"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo/render"
)

// --- Request DTOs ---

// maxTextLen caps task text in characters.
const maxTextLen = 1000

func validateText(text string) error {
	if utf8.RuneCountInString(text) > maxTextLen {
		return errTextTooLong
	}
	return nil
}

type submitReq struct {
	Text string `json:"text" form:"text"`
}

func (r submitReq) validate() error { return validateText(r.Text) }

func (r submitReq) toInput() todo.SubmitInput {
	return todo.SubmitInput{Text: r.Text}
}

// ---

type runTaskReq struct {
	Text string `json:"text" form:"text"`
}

func (r runTaskReq) validate() error { return validateText(r.Text) }

func (r runTaskReq) toInput() todo.RunTaskInput {
	return todo.RunTaskInput{Text: r.Text}
}

// --- Response DTOs ---

type taskResp struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Completed  bool       `json:"completed"`
	Executed   bool       `json:"executed"`
	ExecutedAt *time.Time `json:"executed_at"`
	Meta       string     `json:"meta"`
}

func newTaskResp(row render.Row) taskResp {
	return taskResp{
		ID:         row.ID,
		Text:       row.Label,
		Completed:  row.Completed,
		Executed:   row.Executed,
		ExecutedAt: row.ExecutedAt,
		Meta:       row.Meta,
	}
}

type notificationResp struct {
	Visible     bool       `json:"visible"`
	Text        string     `json:"text,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	RemainingMS int64      `json:"remaining_ms"`
}

func newNotificationResp(out todo.NotificationOutput) notificationResp {
	if !out.Visible {
		return notificationResp{}
	}
	expiresAt := out.ExpiresAt
	return notificationResp{
		Visible:     true,
		Text:        out.Text,
		ExpiresAt:   &expiresAt,
		RemainingMS: out.Remaining.Milliseconds(),
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out todo.ListOutput) listResp {
	rows := h.renderer.RenderAll(out.Tasks)
	tasks := make([]taskResp, len(rows))
	for i, row := range rows {
		tasks[i] = newTaskResp(row)
	}
	return listResp{Tasks: tasks, Count: len(tasks)}
}

type submitResp struct {
	Task    taskResp `json:"task"`
	Message string   `json:"message"`
}

func (h *handler) newSubmitResp(out todo.SubmitOutput) submitResp {
	return submitResp{Task: newTaskResp(h.renderer.Render(out.Task)), Message: out.Message}
}

type taskStateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskStateResp(out todo.TaskOutput) taskStateResp {
	return taskStateResp{Task: newTaskResp(h.renderer.Render(out.Task))}
}

type executeResp struct {
	Task            taskResp `json:"task"`
	AlreadyExecuted bool     `json:"already_executed"`
	Message         string   `json:"message"`
}

func (h *handler) newExecuteResp(out todo.ExecuteOutput) executeResp {
	return executeResp{
		Task:            newTaskResp(h.renderer.Render(out.Task)),
		AlreadyExecuted: out.AlreadyExecuted,
		Message:         out.Message,
	}
}

type runTaskResp struct {
	Found           bool      `json:"found"`
	Task            *taskResp `json:"task,omitempty"`
	AlreadyExecuted bool      `json:"already_executed"`
	Message         string    `json:"message"`
}

func (h *handler) newRunTaskResp(out todo.RunTaskOutput) runTaskResp {
	resp := runTaskResp{Found: out.Found, Message: out.Message}
	if out.Found {
		t := newTaskResp(h.renderer.Render(out.Execute.Task))
		resp.Task = &t
		resp.AlreadyExecuted = out.Execute.AlreadyExecuted
	}
	return resp
}

// --- Page ---

type pageData struct {
	Rows         []render.Row
	Notification notificationResp
}
