package iostore

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/huangsam/armory/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateLinks_NoneBackend(t *testing.T) {
	err := MigrateLinks(schema.NoneBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")
}

func TestMigrateLinks_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	// Latest is version 2
	require.NoError(t, MigrateLinks(schema.SQLiteBackend, dbPath, -1))
	assertVersion(t, dbPath, 2)

	// Running again is a no-op
	require.NoError(t, MigrateLinks(schema.SQLiteBackend, dbPath, -1))

	// Step down to version 1 and back up
	require.NoError(t, MigrateLinks(schema.SQLiteBackend, dbPath, 1))
	assertVersion(t, dbPath, 1)

	// Roll back everything
	require.NoError(t, MigrateLinks(schema.SQLiteBackend, dbPath, 0))
	assertNoLinksTable(t, dbPath)

	require.NoError(t, MigrateLinks(schema.SQLiteBackend, dbPath, 2))
	assertVersion(t, dbPath, 2)
}

func TestApplyMigrationsResult(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	res, err := applyMigrations(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)
	assert.Equal(t, migrationResult{From: 0, To: 2, Changed: true}, res)

	res, err = applyMigrations(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)
	assert.Equal(t, migrationResult{From: 2, To: 2, Changed: false}, res)

	res, err = applyMigrations(schema.SQLiteBackend, dbPath, 0)
	require.NoError(t, err)
	assert.Equal(t, migrationResult{From: 2, To: 0, Changed: true}, res)
}

func TestEmbeddedMigrationsPerBackend(t *testing.T) {
	for _, backend := range []schema.DatabaseBackend{schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend} {
		entries, err := migrationsFS.ReadDir("migrations/" + string(backend))
		require.NoError(t, err, backend)
		assert.Len(t, entries, 4, "up and down for two versions in %s", backend)
	}
}

func assertVersion(t *testing.T, dbPath string, want int) {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var version int
	var dirty bool
	require.NoError(t, db.QueryRow("SELECT version, dirty FROM schema_migrations").Scan(&version, &dirty))
	assert.Equal(t, want, version)
	assert.False(t, dirty)
}

func assertNoLinksTable(t *testing.T, dbPath string) {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", linksTable).Scan(&count))
	assert.Zero(t, count)
}
