package responses

import (
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/mockinterview/internal/models"
)

func scanHistory(rows *sql.Rows) ([]models.HistoryRow, error) {
	defer rows.Close()

	var result []models.HistoryRow
	for rows.Next() {
		var h models.HistoryRow
		r := &h.Response
		if err := rows.Scan(&h.SessionID, &h.JobTitle, &h.SessionDate,
			&r.ID, &r.UserID, &r.Question, &r.Answer, &r.Feedback, &r.Score, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		r.SessionID = h.SessionID
		result = append(result, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func scanRecords(rows *sql.Rows) ([]models.ResponseRecord, error) {
	defer rows.Close()

	var result []models.ResponseRecord
	for rows.Next() {
		var r models.ResponseRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.SessionID,
			&r.Question, &r.Answer, &r.Feedback, &r.Score, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
