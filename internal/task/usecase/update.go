package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	"smart-task-manager/internal/task/repository"
)

// Detail returns one task by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.repo.Get(ctx, sc.UserID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.DetailOutput{}, task.ErrTaskNotFound
		}
		return task.DetailOutput{}, fmt.Errorf("failed to fetch task: %w", err)
	}
	return task.DetailOutput{Task: t}, nil
}

// Update edits a task. A non-empty RawText triggers a full re-parse with a
// fresh reference instant; Completed toggles the completion flag.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	t, err := uc.repo.Get(ctx, sc.UserID, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.UpdateOutput{}, task.ErrTaskNotFound
		}
		return task.UpdateOutput{}, fmt.Errorf("failed to fetch task: %w", err)
	}

	now := uc.now()

	if raw := strings.TrimSpace(input.RawText); raw != "" {
		t.RawText = raw
		t.ApplyParse(uc.parser.Parse(raw, now))
	}
	if input.Completed != nil {
		t.Completed = *input.Completed
	}
	t.UpdatedAt = now

	if err := uc.repo.Update(ctx, t); err != nil {
		return task.UpdateOutput{}, fmt.Errorf("failed to update task: %w", err)
	}

	uc.l.Infof(ctx, "Update: task id=%s completed=%t", t.ID, t.Completed)
	return task.UpdateOutput{Task: t}, nil
}

// Delete removes a task by ID.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc.UserID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	uc.l.Infof(ctx, "Delete: task id=%s", id)
	return nil
}
