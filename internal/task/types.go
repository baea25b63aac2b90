package task

import (
	"smart-task-manager/internal/model"
	"smart-task-manager/pkg/parser"
)

// Status filters the task list by completion state.
type Status string

const (
	StatusAll       Status = "all"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Sort keys accepted by List.
const (
	SortByCreated  = "created"
	SortByDue      = "due"
	SortByPriority = "priority"
)

// CreateInput is the input for task creation and for parse previews.
type CreateInput struct {
	RawText string // Natural language task description from the user
}

// CreateOutput is the result of creating one task.
type CreateOutput struct {
	Task model.Task
}

// PreviewOutput is the result of a dry-run parse; nothing is persisted.
type PreviewOutput struct {
	Result parser.Result
}

// ListInput selects and orders the stored tasks.
type ListInput struct {
	Status   Status          // all (default), active, completed
	Category parser.Category // optional, empty means all categories
	SortBy   string          // created (default), due, priority
	Desc     bool
}

// ListOutput is the result of listing tasks.
type ListOutput struct {
	Tasks []model.Task
	Total int
}

// DetailOutput is the result of fetching one task.
type DetailOutput struct {
	Task model.Task
}

// UpdateInput edits a stored task. A non-empty RawText triggers a full
// re-parse of the text; Completed toggles the completion flag.
type UpdateInput struct {
	ID        string
	RawText   string
	Completed *bool
}

// UpdateOutput is the result of updating one task.
type UpdateOutput struct {
	Task model.Task
}
