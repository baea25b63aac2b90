package usecase_test

import (
	"context"
	"errors"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task/repository"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo is an in-memory TaskRepository.
type mockRepo struct {
	tasks map[string]model.Task // keyed by userID/taskID
	fail  bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: make(map[string]model.Task)}
}

func key(userID, id string) string { return userID + "/" + id }

func (m *mockRepo) Create(ctx context.Context, t model.Task) error {
	if m.fail {
		return errors.New("storage error")
	}
	m.tasks[key(t.UserID, t.ID)] = t
	return nil
}

func (m *mockRepo) Get(ctx context.Context, userID, id string) (model.Task, error) {
	t, ok := m.tasks[key(userID, id)]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (m *mockRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	if m.fail {
		return nil, errors.New("storage error")
	}
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID == opt.UserID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, t model.Task) error {
	k := key(t.UserID, t.ID)
	if _, ok := m.tasks[k]; !ok {
		return repository.ErrNotFound
	}
	m.tasks[k] = t
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, userID, id string) error {
	k := key(userID, id)
	if _, ok := m.tasks[k]; !ok {
		return repository.ErrNotFound
	}
	delete(m.tasks, k)
	return nil
}
