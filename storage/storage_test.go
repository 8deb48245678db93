package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		conf    core.StorageConfig
		wantErr bool
	}{
		{name: "memory", conf: core.StorageConfig{Driver: core.DriverMemory}},
		{name: "bolt", conf: core.StorageConfig{Driver: core.DriverBolt, Path: filepath.Join(dir, "saathi.db")}},
		{name: "sqlite", conf: core.StorageConfig{Driver: core.DriverSQLite, Path: filepath.Join(dir, "saathi.sqlite")}},
		{name: "unknown", conf: core.StorageConfig{Driver: "mongo"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, err := Open(tt.conf)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer kv.Close()

			ctx := context.Background()
			require.NoError(t, kv.Set(ctx, "notes_data", []byte("[]")))
			got, err := kv.Get(ctx, "notes_data")
			require.NoError(t, err)
			assert.Equal(t, "[]", string(got))
		})
	}
}
