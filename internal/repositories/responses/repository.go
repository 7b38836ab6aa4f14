// Package responses is the append-only store of scored answers.
package responses

import (
	"context"

	"github.com/dmitrijs2005/mockinterview/internal/models"
)

// Repository never updates or deletes records.
//
// ListByUser joins each response with its session and orders rows by
// session date (newest first), then by response id.
// ListBySession returns one session's responses in answer order.
type Repository interface {
	Create(ctx context.Context, rec *models.ResponseRecord) (*models.ResponseRecord, error)
	CountBySession(ctx context.Context, sessionID int64) (int, error)
	ListByUser(ctx context.Context, userID int64) ([]models.HistoryRow, error)
	ListBySession(ctx context.Context, sessionID int64) ([]models.ResponseRecord, error)
}
