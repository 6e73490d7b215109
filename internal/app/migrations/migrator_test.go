package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schema "github.com/yigit/workload/migrations"
)

func TestCollectMigrationsSortsAndSkipsNonSQL(t *testing.T) {
	fsys := fstest.MapFS{
		"002_add_index.sql":       {Data: []byte("SELECT 1;")},
		"001_workload_schema.sql": {Data: []byte("SELECT 1;")},
		"README.md":               {Data: []byte("notes")},
		"archive/000_old.sql":     {Data: []byte("SELECT 1;")},
	}

	list, err := CollectMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, Migration{Version: "001", Filename: "001_workload_schema.sql"}, list[0])
	assert.Equal(t, "002", list[1].Version)
}

func TestCollectMigrationsRejectsDuplicateVersions(t *testing.T) {
	fsys := fstest.MapFS{
		"001_a.sql": {Data: []byte("SELECT 1;")},
		"001_b.sql": {Data: []byte("SELECT 1;")},
	}

	_, err := CollectMigrations(fsys)
	assert.Error(t, err)
}

func TestEmbeddedSchemaIsCollected(t *testing.T) {
	list, err := CollectMigrations(schema.FS)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Equal(t, "001", list[0].Version)
}
