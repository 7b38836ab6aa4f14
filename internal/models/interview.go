package models

import "time"

// InterviewSession is created once per started interview and never updated.
// A session is complete when it holds one response per question.
type InterviewSession struct {
	ID          int64
	UserID      int64
	JobTitle    string
	SessionDate time.Time
}

// ResponseRecord is one scored answer. Records are append-only.
type ResponseRecord struct {
	ID        int64
	UserID    int64
	SessionID int64
	Question  string
	Answer    string
	Feedback  string
	Score     int
	Timestamp time.Time
}

// HistoryRow is a response joined with its session, as read for review.
type HistoryRow struct {
	SessionID   int64
	JobTitle    string
	SessionDate time.Time
	Response    ResponseRecord
}

// SessionGroup collects the responses of one session for the review view.
// Complete is derived: the session holds a response for each of its
// QuestionCount questions.
type SessionGroup struct {
	SessionID     int64
	JobTitle      string
	SessionDate   time.Time
	Responses     []ResponseRecord
	AverageScore  float64
	QuestionCount int
	Complete      bool
}
