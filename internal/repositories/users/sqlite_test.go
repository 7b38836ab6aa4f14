package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/mockinterview/internal/common"
	"github.com/dmitrijs2005/mockinterview/internal/models"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/repotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite_CreateAndGet(t *testing.T) {
	r := NewSQLiteRepository(repotest.NewSQLiteDB(t))
	ctx := context.Background()

	u, err := r.Create(ctx, &models.User{UserName: "alice", Credential: "hash", ExperienceLevel: models.ExperienceMid})
	require.NoError(t, err)
	require.NotZero(t, u.ID)

	byName, err := r.GetByUserName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u, byName)

	byID, err := r.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, byID)
}

func TestSQLite_CreateDuplicate(t *testing.T) {
	r := NewSQLiteRepository(repotest.NewSQLiteDB(t))
	ctx := context.Background()

	_, err := r.Create(ctx, &models.User{UserName: "bob", Credential: "h1", ExperienceLevel: models.ExperienceEntry})
	require.NoError(t, err)

	_, err = r.Create(ctx, &models.User{UserName: "bob", Credential: "h2", ExperienceLevel: models.ExperienceSenior})
	assert.ErrorIs(t, err, common.ErrDuplicateUser)

	got, err := r.GetByUserName(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "h1", got.Credential, "first registration is kept")
}

func TestSQLite_NotFound(t *testing.T) {
	r := NewSQLiteRepository(repotest.NewSQLiteDB(t))
	ctx := context.Background()

	_, err := r.GetByUserName(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.GetByID(ctx, 404)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
