package sqlxrepos

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core"
	"github.com/blink-new/study-saathi-app-dwaa98jh/storage/database"
)

func TestKVStore_SQLite(t *testing.T) {
	ctx := context.Background()
	conf := core.StorageConfig{
		Driver: core.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "saathi.sqlite"),
	}
	db, err := database.Open(conf)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, conf.Driver))
	require.NoError(t, database.Migrate(db, conf.Driver), "migrations are idempotent")

	nowFunc = func() time.Time { return time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = time.Now }()

	kv := NewKVStore(db)
	defer kv.Close()

	_, err = kv.Get(ctx, "schedule_data")
	assert.True(t, core.IsNotFound(err))

	require.NoError(t, kv.Set(ctx, "schedule_data", []byte(`[]`)))
	require.NoError(t, kv.Set(ctx, "schedule_data", []byte(`[{"id":"c1"}]`)))

	got, err := kv.Get(ctx, "schedule_data")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"c1"}]`, string(got))

	var rows int
	require.NoError(t, db.Get(&rows, `SELECT COUNT(*) FROM kv_store`))
	assert.Equal(t, 1, rows)
}
