package metadata

import "github.com/dmitrijs2005/mockinterview/internal/dbx"

var postgresStatements = statements{
	get: `SELECT value FROM metadata WHERE key = $1`,
	upsert: `
		INSERT INTO metadata (key, value) VALUES ($1, $2)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`,
	delete: `DELETE FROM metadata WHERE key = $1`,
}

type PostgresRepository struct {
	kvStore
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{kvStore{db: db, q: postgresStatements}}
}
