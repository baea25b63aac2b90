package bolt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	bbolt "go.etcd.io/bbolt"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task/repository"
)

// taskKey scopes records per user so one scan prefix covers one user's tasks.
func taskKey(userID, id string) []byte {
	return []byte(fmt.Sprintf("%s/%s", userID, id))
}

// Create stores a new task record.
func (r *Repository) Create(ctx context.Context, t model.Task) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal task %s: %w", t.ID, err)
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(r.bucket).Put(taskKey(t.UserID, t.ID), payload)
	})
}

// Get returns one task by user and ID.
func (r *Repository) Get(ctx context.Context, userID, id string) (model.Task, error) {
	var t model.Task
	err := r.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(r.bucket).Get(taskKey(userID, id))
		if raw == nil {
			return repository.ErrNotFound
		}
		return json.Unmarshal(raw, &t)
	})
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// List returns all tasks for the user in key order.
func (r *Repository) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	prefix := []byte(opt.UserID + "/")

	var tasks []model.Task
	err := r.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(r.bucket).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var t model.Task
			if err := json.Unmarshal(v, &t); err != nil {
				r.l.Warnf(ctx, "bolt repository: skipping corrupt record %q: %v", k, err)
				continue
			}
			tasks = append(tasks, t)
		}
		return nil
	})
	return tasks, err
}

// Update overwrites an existing task record.
func (r *Repository) Update(ctx context.Context, t model.Task) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal task %s: %w", t.ID, err)
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		key := taskKey(t.UserID, t.ID)
		bucket := tx.Bucket(r.bucket)
		if bucket.Get(key) == nil {
			return repository.ErrNotFound
		}
		return bucket.Put(key, payload)
	})
}

// Delete removes a task record.
func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		key := taskKey(userID, id)
		bucket := tx.Bucket(r.bucket)
		if bucket.Get(key) == nil {
			return repository.ErrNotFound
		}
		return bucket.Delete(key)
	})
}
