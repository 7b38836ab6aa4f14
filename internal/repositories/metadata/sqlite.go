package metadata

import "github.com/dmitrijs2005/mockinterview/internal/dbx"

var sqliteStatements = statements{
	get: `SELECT value FROM metadata WHERE key = ?`,
	upsert: `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`,
	delete: `DELETE FROM metadata WHERE key = ?`,
}

type SQLiteRepository struct {
	kvStore
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{kvStore{db: db, q: sqliteStatements}}
}
