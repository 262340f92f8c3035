package todo_test

import (
	"testing"

	"github.com/Farhanb1/simple-vanilla-todo/internal/model"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo"
)

func TestIsDuplicate(t *testing.T) {
	tasks := []model.Task{
		{Text: "Buy milk"},
		{Text: "Walk the dog"},
	}

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"exact", "Buy milk", true},
		{"case and whitespace", "  buy MILK ", true},
		{"different text", "Buy bread", false},
		{"substring is not a match", "Buy", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := todo.IsDuplicate(tt.candidate, tasks); got != tt.want {
				t.Errorf("IsDuplicate(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestIsDuplicateEmptyList(t *testing.T) {
	if todo.IsDuplicate("anything", nil) {
		t.Errorf("expected no duplicate in an empty list")
	}
}

func TestNormalize(t *testing.T) {
	if got := todo.Normalize("  Click ✔ To Mark Complete\t"); got != "click ✔ to mark complete" {
		t.Errorf("unexpected normalization %q", got)
	}
}
