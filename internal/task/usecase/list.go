package usecase

import (
	"context"
	"fmt"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	"smart-task-manager/internal/task/repository"
)

// List returns stored tasks filtered and sorted per the input.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if err := validateSort(input.SortBy); err != nil {
		return task.ListOutput{}, err
	}

	tasks, err := uc.repo.List(ctx, repository.ListOptions{UserID: sc.UserID})
	if err != nil {
		return task.ListOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks = filterTasks(tasks, input)
	sortTasks(tasks, input.SortBy, input.Desc)

	return task.ListOutput{Tasks: tasks, Total: len(tasks)}, nil
}

func validateSort(sortBy string) error {
	switch sortBy {
	case "", task.SortByCreated, task.SortByDue, task.SortByPriority:
		return nil
	default:
		return task.ErrInvalidSort
	}
}
