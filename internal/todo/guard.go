package todo

import (
	"strings"

	"github.com/Farhanb1/simple-vanilla-todo/internal/model"
)

// Normalize trims and lowercases text for duplicate and lookup comparisons.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// IsDuplicate reports whether candidate matches any task's text after
// normalization. An empty candidate is never a duplicate.
func IsDuplicate(candidate string, tasks []model.Task) bool {
	normalized := Normalize(candidate)
	if normalized == "" {
		return false
	}
	for _, t := range tasks {
		if Normalize(t.Text) == normalized {
			return true
		}
	}
	return false
}
