// Package interview runs one user's interview session:
// Idle -> InProgress -> Complete.
//
// A Controller is owned by a single goroutine and is not safe for
// concurrent use. Progress lives in memory; only sessions and responses are
// persisted, through Store.
package interview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/mockinterview/internal/common"
	"github.com/dmitrijs2005/mockinterview/internal/feedback"
	"github.com/dmitrijs2005/mockinterview/internal/logging"
	"github.com/dmitrijs2005/mockinterview/internal/models"
)

type State int

const (
	Idle State = iota
	InProgress
	Complete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InProgress:
		return "in_progress"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Bank supplies the question list for a job title.
type Bank interface {
	QuestionsFor(jobTitle string) []string
}

// Store persists sessions and responses. Both calls must be durable when
// they return nil.
type Store interface {
	CreateSession(ctx context.Context, s *models.InterviewSession) (int64, error)
	SaveResponse(ctx context.Context, rec *models.ResponseRecord) error
}

type Controller struct {
	bank      Bank
	evaluator feedback.Evaluator
	store     Store
	logger    logging.Logger
	now       func() time.Time

	state     State
	userID    int64
	jobTitle  string
	sessionID int64
	questions []string
	index     int
}

type Option func(*Controller)

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func NewController(bank Bank, evaluator feedback.Evaluator, store Store, opts ...Option) *Controller {
	c := &Controller{
		bank:      bank,
		evaluator: evaluator,
		store:     store,
		logger:    logging.Discard,
		now:       time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Start opens a session for userID. It is allowed from Idle and Complete.
// If the session cannot be persisted the controller keeps its previous state.
func (c *Controller) Start(ctx context.Context, userID int64, jobTitle string) (int64, error) {
	if c.state == InProgress {
		return 0, common.ErrAlreadyInProgress
	}

	session := &models.InterviewSession{
		UserID:      userID,
		JobTitle:    jobTitle,
		SessionDate: c.now().UTC(),
	}
	id, err := c.store.CreateSession(ctx, session)
	if err != nil {
		c.logger.Error(ctx, "failed to persist session", "user_id", userID, "job_title", jobTitle, "error", err)
		return 0, fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}

	c.state = InProgress
	c.userID = userID
	c.jobTitle = jobTitle
	c.sessionID = id
	c.questions = c.bank.QuestionsFor(jobTitle)
	c.index = 0

	c.logger.Info(ctx, "interview started",
		"user_id", userID, "session_id", id, "job_title", jobTitle, "questions", len(c.questions))

	if len(c.questions) == 0 {
		c.state = Complete
	}
	return id, nil
}

// CurrentQuestion returns the question awaiting an answer.
func (c *Controller) CurrentQuestion() (string, bool) {
	if c.state != InProgress {
		return "", false
	}
	return c.questions[c.index], true
}

// SubmitAnswer evaluates and stores an answer to the current question, then
// advances by one. Blank answers are rejected without any side effect; a
// persistence failure leaves the index where it was.
func (c *Controller) SubmitAnswer(ctx context.Context, answer string) (feedback.Result, error) {
	if c.state != InProgress {
		return feedback.Result{}, common.ErrNotInProgress
	}
	if strings.TrimSpace(answer) == "" {
		return feedback.Result{}, common.ErrEmptyAnswer
	}

	question := c.questions[c.index]
	res := c.evaluator.Evaluate(question, answer)

	rec := &models.ResponseRecord{
		UserID:    c.userID,
		SessionID: c.sessionID,
		Question:  question,
		Answer:    answer,
		Feedback:  res.Feedback,
		Score:     res.Score,
		Timestamp: c.now().UTC(),
	}
	if err := c.store.SaveResponse(ctx, rec); err != nil {
		c.logger.Error(ctx, "failed to persist response",
			"session_id", c.sessionID, "index", c.index, "error", err)
		return feedback.Result{}, fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}

	c.index++
	if c.index == len(c.questions) {
		c.state = Complete
		c.logger.Info(ctx, "interview complete", "session_id", c.sessionID, "answers", c.index)
	}

	return res, nil
}

// Abandon drops in-memory progress. Whatever was already stored stays as an
// unfinished session.
func (c *Controller) Abandon() {
	c.state = Idle
	c.userID = 0
	c.jobTitle = ""
	c.sessionID = 0
	c.questions = nil
	c.index = 0
}

func (c *Controller) IsComplete() bool { return c.state == Complete }

func (c *Controller) State() State { return c.state }

// Progress returns how many questions were answered and how many there are.
func (c *Controller) Progress() (answered, total int) {
	return c.index, len(c.questions)
}

// SessionID is zero when no session was started.
func (c *Controller) SessionID() int64 { return c.sessionID }

func (c *Controller) JobTitle() string { return c.jobTitle }
