package task

import (
	"context"

	"smart-task-manager/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create parses the raw text and stores the resulting task.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// Preview parses the raw text without persisting anything.
	Preview(ctx context.Context, input CreateInput) (PreviewOutput, error)

	// List returns stored tasks filtered and sorted per the input.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Detail returns one task by ID.
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)

	// Update edits a task: re-parses on new raw text, toggles completion.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)

	// Delete removes a task by ID.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
