// Package feedback scores free-text answers and picks a canned comment.
//
// The scorer is a deterministic placeholder: it looks only at answer length.
// Anything smarter can replace it behind the Evaluator interface.
package feedback

import "unicode/utf8"

const (
	MinScore = 1
	MaxScore = 10

	// charsPerPoint is how many characters earn one point.
	charsPerPoint = 20
)

// Result is the outcome of evaluating one answer.
type Result struct {
	Score    int
	Feedback string
}

// Evaluator scores an answer to a question. Implementations must be pure.
type Evaluator interface {
	Evaluate(question, answer string) Result
}

// Engine selects feedback from a question-specific pool when there is one
// and from the default pool otherwise.
type Engine struct {
	defaultPool []string
	byQuestion  map[string][]string
}

// NewEngine copies the pools it is given. defaultPool must not be empty.
func NewEngine(defaultPool []string, byQuestion map[string][]string) *Engine {
	if len(defaultPool) == 0 {
		panic("feedback: empty default pool")
	}

	e := &Engine{
		defaultPool: append([]string(nil), defaultPool...),
		byQuestion:  make(map[string][]string, len(byQuestion)),
	}
	for q, pool := range byQuestion {
		if len(pool) > 0 {
			e.byQuestion[q] = append([]string(nil), pool...)
		}
	}
	return e
}

// Evaluate does not reject empty answers; that is the caller's job.
func (e *Engine) Evaluate(question, answer string) Result {
	score := Score(answer)

	pool, ok := e.byQuestion[question]
	if !ok {
		pool = e.defaultPool
	}

	return Result{
		Score:    score,
		Feedback: pool[score%len(pool)],
	}
}

// Score maps answer length in characters to [MinScore, MaxScore].
func Score(answer string) int {
	points := utf8.RuneCountInString(answer) / charsPerPoint
	return min(MaxScore, max(MinScore, points))
}
