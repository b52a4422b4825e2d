package store

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"todo/internal/service"
)

// Schemas per driver. seq preserves insertion order; id is the
// service-assigned identifier.
var schemas = map[string]string{
	KindSQLite: `
    CREATE TABLE IF NOT EXISTS tasks (
        seq INTEGER PRIMARY KEY AUTOINCREMENT,
        id TEXT NOT NULL UNIQUE,
        title TEXT NOT NULL,
        description TEXT NOT NULL DEFAULT '',
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    )`,
	KindMySQL: `
    CREATE TABLE IF NOT EXISTS tasks (
        seq BIGINT PRIMARY KEY AUTO_INCREMENT,
        id VARCHAR(36) NOT NULL UNIQUE,
        title TEXT NOT NULL,
        description TEXT NOT NULL,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    )`,
}

// SQL stores tasks in a SQLite or MySQL table.
type SQL struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
}

// OpenSQL connects with the given driver ("sqlite" or "mysql"), verifies
// the connection and creates the tasks table if needed.
func OpenSQL(ctx context.Context, driver, dsn string) (*SQL, error) {
	schema, ok := schemas[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == KindSQLite {
		// A single connection keeps ":memory:" databases alive and avoids
		// SQLITE_BUSY between writers.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tasks table: %w", err)
	}
	return &SQL{db: db}, nil
}

func (s *SQL) All(ctx context.Context) ([]service.Task, error) {
	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT id, title, description FROM tasks ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	out := make([]service.Task, 0, len(rows))
	for _, r := range rows {
		out = append(out, service.Task{ID: r.ID, Title: r.Title, Description: r.Description})
	}
	return out, nil
}

func (s *SQL) Create(ctx context.Context, task service.Task) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, description) VALUES (?, ?, ?)`,
		task.ID, task.Title, task.Description,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (s *SQL) Close() error { return s.db.Close() }
