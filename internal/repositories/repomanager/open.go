package repomanager

import (
	"context"
	"database/sql"
	"fmt"
)

// Dialect selects the database driver.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "pgx"
)

// Open connects to dsn, checks the connection, applies migrations and
// returns the handle with a matching RepositoryManager. The caller closes db.
func Open(ctx context.Context, dialect Dialect, dsn string) (*sql.DB, RepositoryManager, error) {
	var m RepositoryManager
	switch dialect {
	case DialectSQLite:
		m = NewSQLiteRepositoryManager()
	case DialectPostgres:
		m = NewPostgresRepositoryManager()
	default:
		return nil, nil, fmt.Errorf("unsupported dialect %q", dialect)
	}

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	if dialect == DialectSQLite {
		// one writer; also keeps per-connection pragmas in force
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	if dialect == DialectSQLite {
		if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	return db, m, nil
}
