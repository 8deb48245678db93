package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core"
)

const (
	getQuery = `SELECT value FROM kv_store WHERE key = ?`
	setQuery = `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

var nowFunc = time.Now // mockable

type kvStore struct {
	db       *sqlx.DB
	getQuery string
	setQuery string
}

var _ core.KVStore = (*kvStore)(nil) // interface compliance check

// NewKVStore stores values in the kv_store table; see database.Migrate.
func NewKVStore(db *sqlx.DB) core.KVStore {
	return &kvStore{
		db:       db,
		getQuery: db.Rebind(getQuery),
		setQuery: db.Rebind(setQuery),
	}
}

func (repo *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	if err := repo.db.GetContext(ctx, &value, repo.getQuery, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrKeyNotFound
		}
		return nil, errors.Wrapf(err, "selecting %s", key)
	}
	return []byte(value), nil
}

func (repo *kvStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := repo.db.ExecContext(ctx, repo.setQuery, key, string(value), nowFunc().UTC()); err != nil {
		return errors.Wrapf(err, "upserting %s", key)
	}
	return nil
}

func (repo *kvStore) Close() error {
	return repo.db.Close()
}
