package model

import "time"

// Task is one row of the task list.
type Task struct {
	ID         string     // In-memory row id; not persisted
	Text       string     // Trimmed, non-empty
	Completed  bool       // Display-only completion flag
	Executed   bool       // Write-once execution flag
	ExecutedAt *time.Time // Set iff Executed
}

