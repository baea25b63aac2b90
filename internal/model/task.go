package model

import (
	"time"

	"smart-task-manager/pkg/parser"
)

// Task is a stored task: the structured attributes extracted from the user's
// free-text description plus identity and lifecycle state.
type Task struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	RawText   string            `json:"raw_text"` // Original input, kept for re-parsing on edit
	Title     string            `json:"title"`
	Category  parser.Category   `json:"category"`
	Priority  parser.Priority   `json:"priority"`
	DueDate   *time.Time        `json:"due_date,omitempty"`
	DueTime   *parser.TimeOfDay `json:"due_time,omitempty"`
	Recurring parser.Recurrence `json:"recurring"`
	Completed bool              `json:"completed"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// ApplyParse copies the extracted attributes onto the task.
func (t *Task) ApplyParse(res parser.Result) {
	t.Title = res.Title
	t.Category = res.Category
	t.Priority = res.Priority
	t.DueDate = res.DueDate
	t.DueTime = res.DueTime
	t.Recurring = res.Recurring
}
