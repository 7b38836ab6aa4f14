package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/mockinterview/internal/dbx"
	"github.com/dmitrijs2005/mockinterview/internal/migrations"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/interviews"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/metadata"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/responses"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/users"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Interviews(db dbx.DBTX) interviews.Repository {
	return interviews.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Responses(db dbx.DBTX) responses.Repository {
	return responses.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Metadata(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// RunMigrations applies the embedded SQLite migrations.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	return gooseUpContext(ctx, db, migrations.SQLiteDir)
}
