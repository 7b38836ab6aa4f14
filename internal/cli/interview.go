package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mockinterview/internal/common"
)

const quitAnswer = ":quit"

// pickJobTitle walks the category catalogue. A blank choice at the title
// menu falls through to free text, so any title can be practised.
func (a *App) pickJobTitle() (string, error) {
	cats := a.catalogue.Categories()

	var sb strings.Builder
	sb.WriteString("Select a job category (blank to type a title):")
	for i, c := range cats {
		fmt.Fprintf(&sb, "\n  %d. %s", i+1, c.Name)
	}

	ci, err := chooseIndex(a.reader, a.out, sb.String(), len(cats))
	if err != nil {
		return "", err
	}

	if ci >= 0 {
		titles := cats[ci].Titles
		sb.Reset()
		fmt.Fprintf(&sb, "Select a job title in %s (blank to type a title):", cats[ci].Name)
		for i, t := range titles {
			fmt.Fprintf(&sb, "\n  %d. %s", i+1, t)
		}
		ti, err := chooseIndex(a.reader, a.out, sb.String(), len(titles))
		if err != nil {
			return "", err
		}
		if ti >= 0 {
			return titles[ti], nil
		}
	}

	return getSimpleText(a.reader, "Enter job title:", a.out)
}

// Start runs a whole interview for jobTitle, or for a title picked from the
// catalogue when jobTitle is empty.
func (a *App) Start(ctx context.Context, jobTitle string) error {
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		t, err := a.pickJobTitle()
		if err != nil {
			return err
		}
		jobTitle = strings.TrimSpace(t)
	}
	if jobTitle == "" {
		a.println("No job title given.")
		return nil
	}

	sessionID, err := a.controller.Start(ctx, a.user.ID, jobTitle)
	if err != nil {
		a.println("Could not start the interview:", err)
		return err
	}

	if !a.catalogue.HasRole(jobTitle) {
		a.printf("No dedicated questions for %s, using general ones.\n", jobTitle)
	}
	a.printf("Interview for %s started (session %d). Type %s to stop.\n", jobTitle, sessionID, quitAnswer)
	return a.runInterview(ctx)
}

func (a *App) runInterview(ctx context.Context) error {
	var sum, n int

	for {
		if ctx.Err() != nil {
			a.controller.Abandon()
			return ctx.Err()
		}

		q, ok := a.controller.CurrentQuestion()
		if !ok {
			break
		}
		answered, total := a.controller.Progress()

		answer, err := getMultiline(a.reader, fmt.Sprintf("\nQuestion %d/%d: %s", answered+1, total, q), a.out)
		if err != nil {
			a.controller.Abandon()
			return err
		}
		if strings.TrimSpace(answer) == quitAnswer {
			a.controller.Abandon()
			a.println("Interview abandoned.")
			return nil
		}

		res, err := a.controller.SubmitAnswer(ctx, answer)
		switch {
		case errors.Is(err, common.ErrEmptyAnswer):
			a.println("Please provide an answer.")
			continue
		case errors.Is(err, common.ErrPersistence):
			a.println("Could not save your answer, please try again.")
			continue
		case err != nil:
			a.controller.Abandon()
			a.println("Interview stopped:", err)
			return err
		}

		sum += res.Score
		n++
		a.printf("Score: %d/10\nFeedback: %s\n", res.Score, res.Feedback)
	}

	if a.controller.IsComplete() {
		a.println()
		a.printf("Interview for %s complete (session %d).\n", a.controller.JobTitle(), a.controller.SessionID())
		if n > 0 {
			a.printf("Average score: %.1f/10\n", float64(sum)/float64(n))
		}
	}
	return nil
}
