package repository

import (
	"context"
	"errors"

	"smart-task-manager/internal/model"
)

// ErrNotFound is returned when no task exists for the given key.
var ErrNotFound = errors.New("task record not found")

// TaskRepository is the interface for task persistence.
type TaskRepository interface {
	Create(ctx context.Context, t model.Task) error
	Get(ctx context.Context, userID, id string) (model.Task, error)
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)
	Update(ctx context.Context, t model.Task) error
	Delete(ctx context.Context, userID, id string) error
}
