// Package bolt persists tasks in a local BoltDB file: one bucket of
// JSON-encoded records keyed by user and task ID.
package bolt

import (
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"

	pkgLog "smart-task-manager/pkg/log"
)

const defaultBucket = "tasks"

type Repository struct {
	l      pkgLog.Logger
	db     *bbolt.DB
	bucket []byte
}

// New opens (or creates) the BoltDB file at path and ensures the task
// bucket exists. The caller owns Close.
func New(l pkgLog.Logger, path, bucket string) (*Repository, error) {
	if bucket == "" {
		bucket = defaultBucket
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Repository{
		l:      l,
		db:     db,
		bucket: []byte(bucket),
	}, nil
}

// Close closes the underlying database.
func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
