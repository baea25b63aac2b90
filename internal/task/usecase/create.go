package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
)

// Create parses the raw text and stores the resulting task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	raw := strings.TrimSpace(input.RawText)
	if raw == "" {
		return task.CreateOutput{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Create: user=%s input_length=%d", sc.UserID, len(raw))

	now := uc.now()
	res := uc.parser.Parse(raw, now)

	t := model.Task{
		ID:        uuid.NewString(),
		UserID:    sc.UserID,
		RawText:   raw,
		CreatedAt: now,
		UpdatedAt: now,
	}
	t.ApplyParse(res)

	if err := uc.repo.Create(ctx, t); err != nil {
		return task.CreateOutput{}, fmt.Errorf("failed to store task: %w", err)
	}

	uc.l.Infof(ctx, "Create: stored task %q id=%s category=%s", t.Title, t.ID, t.Category)
	return task.CreateOutput{Task: t}, nil
}

// Preview parses the raw text without persisting anything.
func (uc *implUseCase) Preview(ctx context.Context, input task.CreateInput) (task.PreviewOutput, error) {
	raw := strings.TrimSpace(input.RawText)
	if raw == "" {
		return task.PreviewOutput{}, task.ErrEmptyInput
	}

	return task.PreviewOutput{Result: uc.parser.Parse(raw, uc.now())}, nil
}
