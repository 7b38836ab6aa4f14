package interviews

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/mockinterview/internal/common"
	"github.com/dmitrijs2005/mockinterview/internal/models"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/repotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(`INSERT INTO users (username, credential, experience_level) VALUES ('u', 'h', 'Mid Level') RETURNING id`).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestSQLite_CreateAndGet(t *testing.T) {
	db := repotest.NewSQLiteDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	uid := seedUser(t, db)

	when := time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)
	s, err := r.Create(ctx, &models.InterviewSession{UserID: uid, JobTitle: "Software Developer", SessionDate: when})
	require.NoError(t, err)
	require.NotZero(t, s.ID)

	got, err := r.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, uid, got.UserID)
	assert.Equal(t, "Software Developer", got.JobTitle)
	assert.True(t, when.Equal(got.SessionDate), "got %v", got.SessionDate)
}

func TestSQLite_IDsIncrease(t *testing.T) {
	db := repotest.NewSQLiteDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	uid := seedUser(t, db)

	a, err := r.Create(ctx, &models.InterviewSession{UserID: uid, JobTitle: "Nurse", SessionDate: time.Now().UTC()})
	require.NoError(t, err)
	b, err := r.Create(ctx, &models.InterviewSession{UserID: uid, JobTitle: "Nurse", SessionDate: time.Now().UTC()})
	require.NoError(t, err)
	assert.Greater(t, b.ID, a.ID)
}

func TestSQLite_GetByID_NotFound(t *testing.T) {
	r := NewSQLiteRepository(repotest.NewSQLiteDB(t))

	_, err := r.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
