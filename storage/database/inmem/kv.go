package inmemdb

import (
	"context"
	"sync"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core"
)

type (
	DB struct {
		kv *kvTable
	}

	kvTable struct {
		mutex sync.RWMutex
		table map[string][]byte
	}
)

func Open() *DB {
	return &DB{
		kv: &kvTable{table: make(map[string][]byte)},
	}
}

type kvStore struct {
	db *kvTable
}

var _ core.KVStore = (*kvStore)(nil) // interface compliance check

func NewKVStore(db *DB) core.KVStore {
	return &kvStore{db: db.kv}
}

func (repo *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	val, ok := repo.db.table[key]
	if !ok {
		return nil, core.ErrKeyNotFound
	}
	return append([]byte(nil), val...), nil
}

func (repo *kvStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[key] = append([]byte(nil), value...)
	return nil
}

func (repo *kvStore) Close() error { return nil }
