// Package repomanager vends dialect-specific repositories bound to a DBTX
// and applies the embedded goose migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/mockinterview/internal/dbx"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/interviews"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/metadata"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/responses"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/users"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Interviews(db dbx.DBTX) interviews.Repository
	Responses(db dbx.DBTX) responses.Repository
	Metadata(db dbx.DBTX) metadata.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}
