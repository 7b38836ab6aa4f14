package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/mockinterview/internal/repositories/metadata"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/repomanager"
)

// TokenCache keeps the last issued token in the local metadata table so a
// restarted CLI can resume the login.
type TokenCache struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTokenCache(db *sql.DB, m repomanager.RepositoryManager) *TokenCache {
	return &TokenCache{db: db, repomanager: m}
}

// Load returns "" when nothing is cached.
func (c *TokenCache) Load(ctx context.Context) (string, error) {
	v, err := c.repomanager.Metadata(c.db).Get(ctx, metadata.KeyAuthToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (c *TokenCache) Save(ctx context.Context, token string) error {
	return c.repomanager.Metadata(c.db).Set(ctx, metadata.KeyAuthToken, []byte(token))
}

func (c *TokenCache) Clear(ctx context.Context) error {
	return c.repomanager.Metadata(c.db).Delete(ctx, metadata.KeyAuthToken)
}
