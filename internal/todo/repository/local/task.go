package local

import (
	"context"
	"encoding/json"

	"github.com/Farhanb1/simple-vanilla-todo/internal/model"
	repo "github.com/Farhanb1/simple-vanilla-todo/internal/todo/repository"
)

// SaveTasks serializes the full ordered list and overwrites the stored value.
func (r *implRepository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	recs := make([]record, 0, len(tasks))
	for _, t := range tasks {
		recs = append(recs, toRecord(t))
	}

	b, err := json.Marshal(recs)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("SaveTasks"), err)
		return repo.ErrFailedToSave
	}

	if err := r.storage.SetItem(ctx, r.key, string(b)); err != nil {
		r.l.Warnf(ctx, "%s: could not save to storage: %v", r.dsn("SaveTasks"), err)
		return repo.ErrFailedToSave
	}
	return nil
}

// LoadTasks reads the stored snapshot. Absent and unparsable values both return
// nil, nil. Executed rows missing a timestamp get the current time.
func (r *implRepository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	raw, ok, err := r.storage.GetItem(ctx, r.key)
	if err != nil {
		r.l.Warnf(ctx, "%s: could not load from storage: %v", r.dsn("LoadTasks"), err)
		return nil, repo.ErrFailedToLoad
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var recs []record
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		r.l.Warnf(ctx, "%s: ignoring unparsable value: %v", r.dsn("LoadTasks"), err)
		return nil, nil
	}

	tasks := make([]model.Task, 0, len(recs))
	for _, rec := range recs {
		t, ok := r.toTask(rec)
		if !ok {
			r.l.Debugf(ctx, "%s: skipping row with empty text", r.dsn("LoadTasks"))
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
