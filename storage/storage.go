// Package storage opens the key-value backend selected by the storage config.
package storage

import (
	"github.com/pkg/errors"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core"
	"github.com/blink-new/study-saathi-app-dwaa98jh/storage/database"
	boltdb "github.com/blink-new/study-saathi-app-dwaa98jh/storage/database/bolt"
	inmemdb "github.com/blink-new/study-saathi-app-dwaa98jh/storage/database/inmem"
	sqlxrepos "github.com/blink-new/study-saathi-app-dwaa98jh/storage/database/sqlx"
)

// Open returns the KVStore for conf.Driver. SQL databases are migrated before use.
func Open(conf core.StorageConfig) (core.KVStore, error) {
	switch conf.Driver {
	case core.DriverBolt, "":
		return boltdb.Open(conf.Path)
	case core.DriverMemory:
		return inmemdb.NewKVStore(inmemdb.Open()), nil
	case core.DriverSQLite, core.DriverPostgres:
		db, err := database.Open(conf)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db, conf.Driver); err != nil {
			_ = db.Close()
			return nil, err
		}
		return sqlxrepos.NewKVStore(db), nil
	default:
		return nil, errors.Errorf("unknown storage driver %q", conf.Driver)
	}
}
