package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core"
)

// Bucket holds every planner collection, one key each.
var Bucket = []byte("Planner")

type kvStore struct {
	db *bbolt.DB
}

var _ core.KVStore = (*kvStore)(nil) // interface compliance check

// Open opens (or creates) the bolt file at path along with its parent directories.
func Open(path string) (core.KVStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating data directory")
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(Bucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating bucket")
	}
	return &kvStore{db: db}, nil
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(Bucket)
		if b == nil {
			return errors.Errorf("bucket %s not found", Bucket)
		}
		v := b.Get([]byte(key))
		if v == nil {
			return core.ErrKeyNotFound
		}
		// v is only valid for the life of the transaction
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(Bucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
}

func (s *kvStore) Close() error {
	return s.db.Close()
}
