package render_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/Farhanb1/simple-vanilla-todo/internal/model"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo/render"
)

func TestRender(t *testing.T) {
	r, err := render.New(render.Options{Timezone: "UTC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	at := time.Date(2026, 10, 16, 14, 5, 9, 0, time.UTC)

	tests := []struct {
		name    string
		task    model.Task
		meta    string
		classes string
	}{
		{
			name:    "pending",
			task:    model.Task{ID: "1", Text: "Buy milk"},
			meta:    "Not executed",
			classes: "todo-item",
		},
		{
			name:    "completed",
			task:    model.Task{ID: "2", Text: "Walk the dog", Completed: true},
			meta:    "Not executed",
			classes: "todo-item completed",
		},
		{
			name:    "executed",
			task:    model.Task{ID: "3", Text: "Call mom", Completed: true, Executed: true, ExecutedAt: &at},
			meta:    "Executed 10/16/2026, 2:05:09 PM",
			classes: "todo-item completed executed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := r.Render(tt.task)
			if row.ID != tt.task.ID || row.Label != tt.task.Text {
				t.Errorf("unexpected row identity %+v", row)
			}
			if row.Meta != tt.meta {
				t.Errorf("meta = %q, want %q", row.Meta, tt.meta)
			}
			if row.Classes() != tt.classes {
				t.Errorf("classes = %q, want %q", row.Classes(), tt.classes)
			}
		})
	}
}

func TestRenderTimezoneAndLayout(t *testing.T) {
	r, err := render.New(render.Options{Timezone: "Asia/Ho_Chi_Minh", Layout: time.RFC3339})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	at := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	got := r.Meta(model.Task{Text: "x", Executed: true, ExecutedAt: &at})
	if got != "Executed 2026-10-16T07:00:00+07:00" {
		t.Errorf("unexpected meta %q", got)
	}
}

func TestRenderAllKeepsOrder(t *testing.T) {
	r, _ := render.New(render.Options{})
	rows := r.RenderAll([]model.Task{{ID: "b", Text: "B"}, {ID: "a", Text: "A"}})
	if len(rows) != 2 || rows[0].ID != "b" || rows[1].ID != "a" {
		t.Errorf("unexpected rows %+v", rows)
	}
}

func TestNewRejectsUnknownTimezone(t *testing.T) {
	if _, err := render.New(render.Options{Timezone: "Not/AZone"}); err == nil {
		t.Errorf("expected an error for an unknown timezone")
	}
}
