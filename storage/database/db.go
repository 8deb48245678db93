package database

import (
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core"
	"github.com/blink-new/study-saathi-app-dwaa98jh/storage/database/migrations"
)

// driverName maps a storage driver to its database/sql driver.
var driverName = map[string]string{
	core.DriverSQLite:   "sqlite",
	core.DriverPostgres: "postgres",
}

// gooseDialect maps a storage driver to its goose dialect.
var gooseDialect = map[string]string{
	core.DriverSQLite:   "sqlite3",
	core.DriverPostgres: "postgres",
}

func dataSourceName(conf core.StorageConfig) string {
	if conf.Driver == core.DriverSQLite {
		return "file:" + conf.Path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(conf.Database.User, conf.Database.Password),
		Host:     conf.Database.Address(),
		Path:     conf.Database.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// Open connects to the SQL database configured by conf (sqlite or postgres) and waits for it.
func Open(conf core.StorageConfig) (*sqlx.DB, error) {
	name, ok := driverName[conf.Driver]
	if !ok {
		return nil, errors.Errorf("%q is not a SQL driver", conf.Driver)
	}
	db, err := sqlx.Open(name, dataSourceName(conf))
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if conf.Driver == core.DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	if err := ping(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 10
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

// Migrate applies every pending migration for the given storage driver.
func Migrate(db *sqlx.DB, driver string) error {
	dialect, ok := gooseDialect[driver]
	if !ok {
		return errors.Errorf("%q is not a SQL driver", driver)
	}
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}
	if err := goose.Up(db.DB, "."); err != nil {
		return errors.Wrap(err, "migrating database")
	}
	return nil
}
