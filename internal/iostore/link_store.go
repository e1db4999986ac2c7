package iostore

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/google/uuid"
	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// linksTable is the name of the table holding saved share links.
const linksTable = "armory_links"

var (
	// ErrLinkNotFound is returned when no link is stored under a name.
	ErrLinkNotFound = errors.New("link not found")

	// ErrStoreDisabled is returned when saving to the none backend.
	ErrStoreDisabled = errors.New("link storage is disabled")
)

// LinkStoreImpl handles durable link storage using various database backends.
type LinkStoreImpl struct {
	db        *sql.DB
	tableName string
	backend   schema.DatabaseBackend
}

var _ contract.LinkStore = &LinkStoreImpl{} // Compile-time check

// NewLinkStore opens the link store for the backend and applies pending migrations.
// An empty connStr on SQLite selects the default file in the home directory.
func NewLinkStore(backend schema.DatabaseBackend, connStr string) (contract.LinkStore, error) {
	tableName := linksTable
	if backend == schema.NoneBackend {
		// No-op store for disabled persistence
		return &LinkStoreImpl{tableName: tableName, backend: backend}, nil
	}

	driverName, err := driverFor(backend)
	if err != nil {
		return nil, err
	}
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetLinkDBFilePath()
	}

	// Schema changes run on their own connection before the store opens
	if _, err := applyMigrations(backend, connStr, -1); err != nil {
		return nil, fmt.Errorf("failed to prepare %s link store: %w", backend, err)
	}

	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s link store: %w", backend, err)
	}
	if backend == schema.SQLiteBackend {
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	return &LinkStoreImpl{db: db, tableName: tableName, backend: backend}, nil
}

func (ls *LinkStoreImpl) disabled() bool {
	return ls.backend == schema.NoneBackend || ls.db == nil
}

// placeholder returns the nth (1-based) parameter placeholder for the backend.
func (ls *LinkStoreImpl) placeholder(n int) string {
	if ls.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// upsertQuery returns the insert-or-update query keyed on link_name.
// The link_id of an existing row is preserved.
func (ls *LinkStoreImpl) upsertQuery() string {
	table := quoteTableName(ls.tableName, ls.backend)
	switch ls.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (link_id, link_name, share_query, saved_at) VALUES (?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE share_query = new.share_query, saved_at = new.saved_at`, table)
	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (link_id, link_name, share_query, saved_at) VALUES ($1, $2, $3, $4)
			ON CONFLICT (link_name) DO UPDATE SET share_query = EXCLUDED.share_query, saved_at = EXCLUDED.saved_at`, table)
	default: // SQLite
		return fmt.Sprintf(`INSERT INTO %s (link_id, link_name, share_query, saved_at) VALUES (?, ?, ?, ?)
			ON CONFLICT (link_name) DO UPDATE SET share_query = excluded.share_query, saved_at = excluded.saved_at`, table)
	}
}

// Save stores query under name, replacing the query of an existing link.
func (ls *LinkStoreImpl) Save(name, query string, savedAt time.Time) (schema.Link, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return schema.Link{}, fmt.Errorf("link name cannot be empty")
	}
	if ls.disabled() {
		return schema.Link{}, ErrStoreDisabled
	}
	if _, err := ls.db.Exec(ls.upsertQuery(), uuid.NewString(), name, query, savedAt.Unix()); err != nil {
		return schema.Link{}, fmt.Errorf("failed to save link %q: %w", name, err)
	}
	return ls.Get(name)
}

// Get returns the link stored under name.
func (ls *LinkStoreImpl) Get(name string) (schema.Link, error) {
	if ls.disabled() {
		return schema.Link{}, fmt.Errorf("%w: %s", ErrLinkNotFound, name)
	}
	query := fmt.Sprintf(`SELECT link_id, link_name, share_query, saved_at FROM %s WHERE link_name = %s`,
		quoteTableName(ls.tableName, ls.backend), ls.placeholder(1))

	link, err := scanLink(ls.db.QueryRow(query, strings.TrimSpace(name)))
	if errors.Is(err, sql.ErrNoRows) {
		return schema.Link{}, fmt.Errorf("%w: %s", ErrLinkNotFound, name)
	}
	if err != nil {
		return schema.Link{}, fmt.Errorf("failed to read link %q: %w", name, err)
	}
	return link, nil
}

// List returns every stored link, most recent first.
func (ls *LinkStoreImpl) List() ([]schema.Link, error) {
	if ls.disabled() {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT link_id, link_name, share_query, saved_at FROM %s ORDER BY saved_at DESC, link_name ASC`,
		quoteTableName(ls.tableName, ls.backend))
	rows, err := ls.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var links []schema.Link
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// Delete removes the link stored under name.
func (ls *LinkStoreImpl) Delete(name string) error {
	if ls.disabled() {
		return fmt.Errorf("%w: %s", ErrLinkNotFound, name)
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE link_name = %s`,
		quoteTableName(ls.tableName, ls.backend), ls.placeholder(1))
	res, err := ls.db.Exec(query, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("failed to delete link %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrLinkNotFound, name)
	}
	return nil
}

// Close closes the underlying DB connection.
func (ls *LinkStoreImpl) Close() error {
	if ls.db != nil {
		return ls.db.Close()
	}
	return nil
}

// GetStatus returns status information about the link store.
func (ls *LinkStoreImpl) GetStatus() (schema.LinkStatus, error) {
	status := schema.LinkStatus{
		Backend:   string(ls.backend),
		Connected: ls.db != nil,
	}
	if ls.disabled() {
		return status, nil
	}

	table := quoteTableName(ls.tableName, ls.backend)
	row := ls.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table))
	if err := row.Scan(&status.TotalLinks); err != nil {
		return status, fmt.Errorf("failed to get total links: %w", err)
	}
	if status.TotalLinks == 0 {
		return status, nil
	}

	var lastTs, oldestTs int64
	row = ls.db.QueryRow(fmt.Sprintf("SELECT MAX(saved_at), MIN(saved_at) FROM %s", table))
	if err := row.Scan(&lastTs, &oldestTs); err != nil {
		return status, fmt.Errorf("failed to get save times: %w", err)
	}
	status.LastSavedTime = time.Unix(lastTs, 0)
	status.OldestSaveTime = time.Unix(oldestTs, 0)
	return status, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLink(row rowScanner) (schema.Link, error) {
	var link schema.Link
	var ts int64
	if err := row.Scan(&link.ID, &link.Name, &link.Query, &ts); err != nil {
		return schema.Link{}, err
	}
	link.SavedAt = time.Unix(ts, 0)
	return link, nil
}
