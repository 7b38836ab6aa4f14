package responses

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mockinterview/internal/dbx"
	"github.com/dmitrijs2005/mockinterview/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, rec *models.ResponseRecord) (*models.ResponseRecord, error) {
	query :=
		`INSERT INTO interview_responses (user_id, session_id, question, user_answer, ai_feedback, score, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		rec.UserID, rec.SessionID, rec.Question, rec.Answer, rec.Feedback, rec.Score, rec.Timestamp).Scan(&rec.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *SQLiteRepository) CountBySession(ctx context.Context, sessionID int64) (int, error) {
	query :=
		`SELECT COUNT(*) FROM interview_responses
		 WHERE session_id = ?
		 `

	var n int
	if err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.HistoryRow, error) {
	query :=
		`SELECT i.id, i.job_title, i.session_date,
		        r.id, r.user_id, r.question, r.user_answer, r.ai_feedback, r.score, r.timestamp
		 FROM interview_responses r
		 JOIN interviews i ON i.id = r.session_id
		 WHERE r.user_id = ?
		 ORDER BY i.session_date DESC, i.id DESC, r.id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return scanHistory(rows)
}

func (r *SQLiteRepository) ListBySession(ctx context.Context, sessionID int64) ([]models.ResponseRecord, error) {
	query :=
		`SELECT id, user_id, session_id, question, user_answer, ai_feedback, score, timestamp
		 FROM interview_responses
		 WHERE session_id = ?
		 ORDER BY id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return scanRecords(rows)
}
