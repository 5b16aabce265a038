package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// TimeLayout is the DATETIME text form used for the timestamp column.
// Keeping it in this shape makes the strftime component filters exact.
const TimeLayout = "2006-01-02 15:04:05"

// busyTimeoutMS bounds how long a write waits on a locked store before
// giving up. Expired waits surface as ordinary write errors.
const busyTimeoutMS = 10000

// SQLiteClient wraps direct SQL access to the task log store.
type SQLiteClient struct {
	db *sql.DB
}

// NewSQLiteClient wires a sql.DB; pass a configured instance from main.
func NewSQLiteClient(db *sql.DB) *SQLiteClient {
	return &SQLiteClient{db: db}
}

// Open creates the store directory if needed and opens the database file.
// The schema is not touched here; call InitSchema before writing.
func Open(path string) (*SQLiteClient, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory %s: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d", path, busyTimeoutMS)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}

	// SQLite serializes writers anyway; a single connection avoids
	// SQLITE_BUSY churn between this process's own handles.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}

	return &SQLiteClient{db: db}, nil
}

// Close releases the underlying database handle.
func (c *SQLiteClient) Close() error {
	return c.db.Close()
}

// Ping reports whether the store is reachable.
func (c *SQLiteClient) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

const createTaskLogsSQL = `
	CREATE TABLE IF NOT EXISTS task_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		inventory_hostname TEXT,
		playbook TEXT,
		playbook_uuid TEXT,
		module TEXT,
		task_name TEXT,
		status TEXT,
		result TEXT
	)
`

// migratedColumns are the columns added after the first schema version.
// Stores created before they existed get them appended on init.
var migratedColumns = []struct {
	name string
	ddl  string
}{
	{"playbook", "ALTER TABLE task_logs ADD COLUMN playbook TEXT"},
	{"playbook_uuid", "ALTER TABLE task_logs ADD COLUMN playbook_uuid TEXT"},
	{"module", "ALTER TABLE task_logs ADD COLUMN module TEXT"},
}

// InitSchema creates the task_logs table if absent and applies the
// additive column migration. It is idempotent: running it against an
// already-migrated store is a no-op.
func (c *SQLiteClient) InitSchema(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, createTaskLogsSQL); err != nil {
		return fmt.Errorf("create task_logs table: %w", err)
	}

	existing, err := c.tableColumns(ctx, "task_logs")
	if err != nil {
		return fmt.Errorf("inspect task_logs columns: %w", err)
	}

	for _, col := range migratedColumns {
		if existing[col.name] {
			continue
		}
		if _, err := c.db.ExecContext(ctx, col.ddl); err != nil {
			// Another recorder process can win the race between the
			// PRAGMA check and the ALTER; that collision is a no-op.
			if isDuplicateColumn(err) {
				continue
			}
			return fmt.Errorf("add column %s: %w", col.name, err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_task_logs_playbook_uuid ON task_logs(playbook_uuid)",
		"CREATE INDEX IF NOT EXISTS idx_task_logs_status ON task_logs(status)",
	}
	for _, stmt := range indexes {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}

// tableColumns returns the set of column names currently on the table.
func (c *SQLiteClient) tableColumns(ctx context.Context, table string) (map[string]bool, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return nil, err
		}
		columns[name] = true
	}
	return columns, rows.Err()
}

func isDuplicateColumn(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate column name")
}
