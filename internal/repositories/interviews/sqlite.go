package interviews

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mockinterview/internal/common"
	"github.com/dmitrijs2005/mockinterview/internal/dbx"
	"github.com/dmitrijs2005/mockinterview/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, s *models.InterviewSession) (*models.InterviewSession, error) {
	query :=
		`INSERT INTO interviews (user_id, job_title, session_date)
		 VALUES (?, ?, ?)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, s.UserID, s.JobTitle, s.SessionDate).Scan(&s.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.InterviewSession, error) {
	query :=
		`SELECT id, user_id, job_title, session_date FROM interviews
		 WHERE id = ?
		 `

	s := &models.InterviewSession{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.UserID, &s.JobTitle, &s.SessionDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}
