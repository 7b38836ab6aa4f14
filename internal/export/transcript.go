package export

import (
	"time"

	"github.com/dmitrijs2005/mockinterview/internal/models"
)

// Transcript is the JSON document written for one session.
type Transcript struct {
	SessionID    int64     `json:"session_id"`
	UserName     string    `json:"username"`
	JobTitle     string    `json:"job_title"`
	SessionDate  time.Time `json:"session_date"`
	AverageScore float64   `json:"average_score"`
	Complete     bool      `json:"complete"`
	Answers      []Answer  `json:"answers"`
	ExportedAt   time.Time `json:"exported_at"`
}

type Answer struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Feedback  string    `json:"feedback"`
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTranscript converts a session group into its exported form.
func NewTranscript(userName string, g *models.SessionGroup, exportedAt time.Time) Transcript {
	t := Transcript{
		SessionID:    g.SessionID,
		UserName:     userName,
		JobTitle:     g.JobTitle,
		SessionDate:  g.SessionDate,
		AverageScore: g.AverageScore,
		Complete:     g.Complete,
		Answers:      make([]Answer, 0, len(g.Responses)),
		ExportedAt:   exportedAt,
	}
	for _, r := range g.Responses {
		t.Answers = append(t.Answers, Answer{
			Question:  r.Question,
			Answer:    r.Answer,
			Feedback:  r.Feedback,
			Score:     r.Score,
			Timestamp: r.Timestamp,
		})
	}
	return t
}
