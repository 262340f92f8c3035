package local

import (
	"strings"
	"time"

	"github.com/Farhanb1/simple-vanilla-todo/internal/model"
)

// timeLayout matches JavaScript's Date.prototype.toISOString.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// record is the persisted shape of one task.
type record struct {
	Text       string  `json:"text"`
	Completed  bool    `json:"completed"`
	Executed   bool    `json:"executed"`
	ExecutedAt *string `json:"executedAt"`
}

func toRecord(t model.Task) record {
	rec := record{
		Text:      t.Text,
		Completed: t.Completed,
		Executed:  t.Executed,
	}
	if t.Executed && t.ExecutedAt != nil {
		s := formatTime(*t.ExecutedAt)
		rec.ExecutedAt = &s
	}
	return rec
}

// toTask converts a record, restoring executedAt iff executed. ok is false for
// rows that cannot be shown (empty text).
func (r *implRepository) toTask(rec record) (model.Task, bool) {
	text := strings.TrimSpace(rec.Text)
	if text == "" {
		return model.Task{}, false
	}

	t := model.Task{
		ID:        r.newID(),
		Text:      text,
		Completed: rec.Completed,
		Executed:  rec.Executed,
	}
	if !rec.Executed {
		return t, true
	}

	var at time.Time
	if rec.ExecutedAt != nil {
		if parsed, err := time.Parse(time.RFC3339Nano, *rec.ExecutedAt); err == nil {
			at = parsed.UTC()
		}
	}
	if at.IsZero() {
		at = r.now().UTC().Truncate(time.Millisecond)
	}
	t.ExecutedAt = &at
	return t, true
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
