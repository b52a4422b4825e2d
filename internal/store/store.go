// Package store persists tasks for the task service.
package store

import (
	"context"
	"fmt"
	"strings"

	"todo/internal/service"
)

// Store kinds accepted by Open.
const (
	KindMemory = "memory"
	KindSQLite = "sqlite"
	KindMySQL  = "mysql"
)

// Store holds tasks in insertion order.
type Store interface {
	// All returns every task in insertion order. It never returns nil.
	All(ctx context.Context) ([]service.Task, error)

	// Create appends a task. The caller assigns its ID.
	Create(ctx context.Context, task service.Task) error

	// Close releases resources.
	Close() error
}

// Open returns the store of the given kind. dsn is ignored for memory; for
// sqlite it is a file path (":memory:" works), for mysql a driver DSN.
func Open(ctx context.Context, kind, dsn string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindMemory:
		return NewMemory(), nil
	case KindSQLite:
		if dsn == "" {
			dsn = "todo.db"
		}
		return openSQL(ctx, KindSQLite, dsn)
	case KindMySQL:
		if dsn == "" {
			return nil, fmt.Errorf("mysql store requires a DSN")
		}
		return openSQL(ctx, KindMySQL, dsn)
	default:
		return nil, fmt.Errorf("unknown store: %s", kind)
	}
}

// openSQL avoids handing back a typed nil inside the Store interface.
func openSQL(ctx context.Context, driver, dsn string) (Store, error) {
	s, err := OpenSQL(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	return s, nil
}
