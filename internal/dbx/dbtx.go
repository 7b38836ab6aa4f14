// Package dbx holds the database/sql glue shared by the repositories.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is what a repository needs to run its statements. *sql.DB and
// *sql.Tx both satisfy it, so one repository value works in and out of a
// transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside one transaction. The transaction is committed when
// fn returns nil and rolled back otherwise; a panic in fn rolls back and
// is re-raised. The commit error, if any, is returned.
//
// InterviewStore.SaveResponse uses it to check a session and append an
// answer atomically:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//		if _, err := m.Interviews(tx).GetByID(ctx, rec.SessionID); err != nil {
//			return err
//		}
//		_, err := m.Responses(tx).Create(ctx, rec)
//		return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	committed = true
	return tx.Commit()
}
