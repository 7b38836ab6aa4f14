package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/mockinterview/internal/common"
	"github.com/dmitrijs2005/mockinterview/internal/dbx"
	"github.com/dmitrijs2005/mockinterview/internal/models"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/repomanager"
)

// QuestionSource yields the question list of a job title. The list of a
// title never changes, so its length tells when a session is closed.
type QuestionSource interface {
	QuestionsFor(jobTitle string) []string
}

// InterviewStore persists what the interview controller produces. Every
// write is committed before the call returns.
type InterviewStore struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	questions   QuestionSource
}

func NewInterviewStore(db *sql.DB, m repomanager.RepositoryManager, qs QuestionSource) *InterviewStore {
	return &InterviewStore{db: db, repomanager: m, questions: qs}
}

func (s *InterviewStore) CreateSession(ctx context.Context, sess *models.InterviewSession) (int64, error) {
	created, err := s.repomanager.Interviews(s.db).Create(ctx, sess)
	if err != nil {
		return 0, fmt.Errorf("error creating session: %w", err)
	}
	return created.ID, nil
}

// SaveResponse appends rec after checking that its session belongs to the
// same user and still has unanswered questions.
func (s *InterviewStore) SaveResponse(ctx context.Context, rec *models.ResponseRecord) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		sess, err := s.repomanager.Interviews(tx).GetByID(ctx, rec.SessionID)
		if err != nil {
			return fmt.Errorf("error loading session %d: %w", rec.SessionID, err)
		}
		if sess.UserID != rec.UserID {
			return fmt.Errorf("session %d belongs to another user", rec.SessionID)
		}

		n, err := s.repomanager.Responses(tx).CountBySession(ctx, rec.SessionID)
		if err != nil {
			return fmt.Errorf("error counting responses: %w", err)
		}
		if n >= len(s.questions.QuestionsFor(sess.JobTitle)) {
			return fmt.Errorf("session %d: %w", rec.SessionID, common.ErrSessionClosed)
		}

		if _, err := s.repomanager.Responses(tx).Create(ctx, rec); err != nil {
			return fmt.Errorf("error saving response: %w", err)
		}
		return nil
	})
}
