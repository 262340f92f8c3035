// Package render projects tasks into display rows. It holds no state beyond
// formatting settings, so the same tasks always render the same rows.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/Farhanb1/simple-vanilla-todo/internal/model"
)

// DefaultLayout is the shape of en-US Date.toLocaleString output.
const DefaultLayout = "1/2/2006, 3:04:05 PM"

const notExecuted = "Not executed"

// Row is the displayable form of one task.
type Row struct {
	ID         string
	Label      string
	Completed  bool
	Executed   bool
	ExecutedAt *time.Time
	Meta       string
}

// Classes returns the CSS classes for the row element.
func (r Row) Classes() string {
	classes := []string{"todo-item"}
	if r.Completed {
		classes = append(classes, "completed")
	}
	if r.Executed {
		classes = append(classes, "executed")
	}
	return strings.Join(classes, " ")
}

// Options configures timestamp formatting.
type Options struct {
	Timezone string // IANA name; empty means the process local zone
	Layout   string // time.Format layout; empty means DefaultLayout
}

// Renderer formats tasks for display.
type Renderer struct {
	loc    *time.Location
	layout string
}

// New creates a Renderer. An unknown timezone is an error.
func New(opt Options) (*Renderer, error) {
	loc := time.Local
	if opt.Timezone != "" {
		l, err := time.LoadLocation(opt.Timezone)
		if err != nil {
			return nil, fmt.Errorf("render: load timezone %q: %w", opt.Timezone, err)
		}
		loc = l
	}
	layout := opt.Layout
	if layout == "" {
		layout = DefaultLayout
	}
	return &Renderer{loc: loc, layout: layout}, nil
}

// Render projects a single task.
func (r *Renderer) Render(t model.Task) Row {
	return Row{
		ID:         t.ID,
		Label:      t.Text,
		Completed:  t.Completed,
		Executed:   t.Executed,
		ExecutedAt: t.ExecutedAt,
		Meta:       r.Meta(t),
	}
}

// RenderAll projects tasks preserving order.
func (r *Renderer) RenderAll(tasks []model.Task) []Row {
	rows := make([]Row, len(tasks))
	for i, t := range tasks {
		rows[i] = r.Render(t)
	}
	return rows
}

// Meta is the status line shown beside a task.
func (r *Renderer) Meta(t model.Task) string {
	if !t.Executed || t.ExecutedAt == nil {
		return notExecuted
	}
	return "Executed " + t.ExecutedAt.In(r.loc).Format(r.layout)
}
