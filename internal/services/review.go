package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mockinterview/internal/common"
	"github.com/dmitrijs2005/mockinterview/internal/models"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/repomanager"
)

// ReviewService reads past sessions back for display and export.
type ReviewService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	questions   QuestionSource
}

func NewReviewService(db *sql.DB, m repomanager.RepositoryManager, qs QuestionSource) *ReviewService {
	return &ReviewService{db: db, repomanager: m, questions: qs}
}

// History returns the user's answered sessions, newest first, each with the
// mean score of its responses. Sessions without responses are left out.
func (s *ReviewService) History(ctx context.Context, userID int64) ([]models.SessionGroup, error) {
	rows, err := s.repomanager.Responses(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading history: %w", err)
	}
	groups := groupHistory(rows)
	for i := range groups {
		s.markCompletion(&groups[i])
	}
	return groups, nil
}

// markCompletion infers closure from the response count. A session that
// was abandoned keeps fewer responses than questions.
func (s *ReviewService) markCompletion(g *models.SessionGroup) {
	g.QuestionCount = len(s.questions.QuestionsFor(g.JobTitle))
	g.Complete = len(g.Responses) >= g.QuestionCount
}

// Session returns one session of userID. Sessions of other users are
// reported as common.ErrorNotFound.
func (s *ReviewService) Session(ctx context.Context, userID, sessionID int64) (*models.SessionGroup, error) {
	sess, err := s.repomanager.Interviews(s.db).GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading session: %w", err)
	}
	if sess.UserID != userID {
		return nil, common.ErrorNotFound
	}

	recs, err := s.repomanager.Responses(s.db).ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error loading responses: %w", err)
	}

	g := &models.SessionGroup{
		SessionID:    sess.ID,
		JobTitle:     sess.JobTitle,
		SessionDate:  sess.SessionDate,
		Responses:    recs,
		AverageScore: averageScore(recs),
	}
	s.markCompletion(g)
	return g, nil
}

// groupHistory keeps the row order: rows of one session are adjacent.
func groupHistory(rows []models.HistoryRow) []models.SessionGroup {
	var groups []models.SessionGroup
	for _, r := range rows {
		if n := len(groups); n == 0 || groups[n-1].SessionID != r.SessionID {
			groups = append(groups, models.SessionGroup{
				SessionID:   r.SessionID,
				JobTitle:    r.JobTitle,
				SessionDate: r.SessionDate,
			})
		}
		g := &groups[len(groups)-1]
		g.Responses = append(g.Responses, r.Response)
	}

	for i := range groups {
		groups[i].AverageScore = averageScore(groups[i].Responses)
	}
	return groups
}

func averageScore(recs []models.ResponseRecord) float64 {
	if len(recs) == 0 {
		return 0
	}
	total := 0
	for _, r := range recs {
		total += r.Score
	}
	return float64(total) / float64(len(recs))
}
