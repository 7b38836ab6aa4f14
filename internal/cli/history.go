package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/mockinterview/internal/models"
)

const dateLayout = "2006-01-02 15:04"

// History prints every past session of the user, newest first.
func (a *App) History(ctx context.Context) error {
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	groups, err := a.review.History(ctx, a.user.ID)
	if err != nil {
		a.println("Could not load history, please try again later.")
		a.logger.Error(ctx, "history failed", "user_id", a.user.ID, "error", err)
		return err
	}

	if len(groups) == 0 {
		a.println("No interviews yet. Type 'start' to begin one.")
		return nil
	}

	for i := range groups {
		writeSession(a.out, &groups[i])
	}
	return nil
}

func writeSession(w io.Writer, g *models.SessionGroup) {
	fmt.Fprintf(w, "\n[%d] %s, %s, average %.1f/10",
		g.SessionID, g.JobTitle, g.SessionDate.Local().Format(dateLayout), g.AverageScore)
	if !g.Complete {
		fmt.Fprintf(w, " (unfinished, %d/%d answered)", len(g.Responses), g.QuestionCount)
	}
	fmt.Fprintln(w)

	for i, r := range g.Responses {
		fmt.Fprintf(w, "  Q%d: %s\n", i+1, r.Question)
		fmt.Fprintf(w, "  Answer: %s\n", r.Answer)
		fmt.Fprintf(w, "  Feedback: %s\n", r.Feedback)
		fmt.Fprintf(w, "  Score: %d/10\n", r.Score)
	}
}
