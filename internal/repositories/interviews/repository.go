// Package interviews stores interview sessions. Sessions are written once and
// never updated.
package interviews

import (
	"context"

	"github.com/dmitrijs2005/mockinterview/internal/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.InterviewSession) (*models.InterviewSession, error)
	GetByID(ctx context.Context, id int64) (*models.InterviewSession, error)
}
