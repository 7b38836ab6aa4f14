package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mockinterview/internal/common"
)

// Export uploads the transcript of one of the user's sessions.
func (a *App) Export(ctx context.Context, arg string) error {
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	if a.exporter == nil {
		a.println("Export is not configured (set S3_BUCKET).")
		return common.ErrExportDisabled
	}

	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		a.println("Usage: export <session-id>")
		return errors.New("invalid session id")
	}

	g, err := a.review.Session(ctx, a.user.ID, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.println("No such session.")
		} else {
			a.println("Could not load the session, please try again later.")
			a.logger.Error(ctx, "session lookup failed", "session_id", id, "error", err)
		}
		return err
	}

	key, err := a.exporter.Export(ctx, a.user.UserName, g)
	if err != nil {
		a.println("Export failed, please try again later.")
		a.logger.Error(ctx, "export failed", "session_id", id, "error", err)
		return err
	}

	a.println("Transcript uploaded:", key)
	return nil
}
