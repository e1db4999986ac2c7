package iostore

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/schema"
)

//go:embed migrations
var migrationsFS embed.FS

// migrationResult describes what a migration run changed.
type migrationResult struct {
	From    uint
	To      uint
	Changed bool
}

// MigrateLinks runs database migrations for the link store.
// - If targetVersion < 0, it migrates to the latest version.
// - If targetVersion == 0, it rolls back all migrations.
// - If targetVersion > 0, it migrates to the specified version.
func MigrateLinks(backend schema.DatabaseBackend, connStr string, targetVersion int) error {
	if backend == schema.NoneBackend {
		return fmt.Errorf("migrations are not supported for NoneBackend")
	}
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetLinkDBFilePath()
	}

	res, err := applyMigrations(backend, connStr, targetVersion)
	if err != nil {
		return err
	}
	switch {
	case !res.Changed:
		fmt.Printf("No migration needed. Database is already at version %d\n", res.To)
	case res.To < res.From:
		fmt.Printf("Successfully rolled back from version %d to version %d\n", res.From, res.To)
	default:
		fmt.Printf("Successfully migrated from version %d to version %d\n", res.From, res.To)
	}
	return nil
}

// applyMigrations moves the schema to targetVersion on a dedicated connection.
func applyMigrations(backend schema.DatabaseBackend, connStr string, targetVersion int) (migrationResult, error) {
	var res migrationResult

	driverName, err := driverFor(backend)
	if err != nil {
		return res, err
	}
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return res, fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return res, fmt.Errorf("failed to ping database: %w", err)
	}

	var driver database.Driver
	switch backend {
	case schema.SQLiteBackend:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	case schema.MySQLBackend:
		driver, err = mysql.WithInstance(db, &mysql.Config{})
	case schema.PostgreSQLBackend:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	}
	if err != nil {
		return res, fmt.Errorf("failed to create %s migrate driver: %w", backend, err)
	}

	// Each backend keeps its own dialect of the same migrations
	migrationFS, err := fs.Sub(migrationsFS, "migrations/"+string(backend))
	if err != nil {
		return res, fmt.Errorf("failed to access migrations directory: %w", err)
	}
	sourceDriver, err := iofs.New(migrationFS, ".")
	if err != nil {
		return res, fmt.Errorf("failed to create migration source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", sourceDriver, "armory", driver)
	if err != nil {
		return res, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	current, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return res, fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		return res, fmt.Errorf("database is in a dirty state at version %d. Please fix manually or force version", current)
	}
	res.From = current

	switch {
	case targetVersion < 0:
		err = m.Up()
	case targetVersion == 0:
		err = m.Down()
	default:
		err = m.Migrate(uint(targetVersion))
	}
	if errors.Is(err, migrate.ErrNoChange) {
		res.To = current
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("failed to migrate to version %d: %w", targetVersion, err)
	}

	res.Changed = true
	res.To, _, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		res.To = 0
	}
	return res, nil
}
