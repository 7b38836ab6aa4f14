// Package migrations embeds the goose SQL migrations for each supported dialect.
package migrations

import "embed"

// Directories inside FS, one per dialect.
const (
	SQLiteDir   = "sqlite"
	PostgresDir = "postgres"
)

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
