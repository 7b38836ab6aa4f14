package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/mockinterview/internal/auth"
	"github.com/dmitrijs2005/mockinterview/internal/common"
	"github.com/dmitrijs2005/mockinterview/internal/config"
	"github.com/dmitrijs2005/mockinterview/internal/export"
	"github.com/dmitrijs2005/mockinterview/internal/feedback"
	"github.com/dmitrijs2005/mockinterview/internal/interview"
	"github.com/dmitrijs2005/mockinterview/internal/logging"
	"github.com/dmitrijs2005/mockinterview/internal/models"
	"github.com/dmitrijs2005/mockinterview/internal/questions"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/repomanager"
	"github.com/dmitrijs2005/mockinterview/internal/services"
)

type userService interface {
	Register(ctx context.Context, username, password string, level models.ExperienceLevel) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type reviewService interface {
	History(ctx context.Context, userID int64) ([]models.SessionGroup, error)
	Session(ctx context.Context, userID, sessionID int64) (*models.SessionGroup, error)
}

type tokenCache interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type transcriptExporter interface {
	Export(ctx context.Context, userName string, g *models.SessionGroup) (string, error)
}

type catalogue interface {
	Categories() []questions.Category
	HasRole(jobTitle string) bool
}

type sessionController interface {
	Start(ctx context.Context, userID int64, jobTitle string) (int64, error)
	CurrentQuestion() (string, bool)
	SubmitAnswer(ctx context.Context, answer string) (feedback.Result, error)
	Progress() (answered, total int)
	IsComplete() bool
	State() interview.State
	SessionID() int64
	JobTitle() string
	Abandon()
}

// App is the interactive trainer. It owns one interview controller for the
// logged-in user; all commands run on the REPL goroutine.
type App struct {
	users      userService
	review     reviewService
	tokens     tokenCache
	exporter   transcriptExporter
	catalogue  catalogue
	controller sessionController
	logger     logging.Logger

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer

	user  *models.User
	token string
}

// NewApp opens the database and wires every component from cfg.
// Call Close when done.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	bank := questions.Default()
	if cfg.QuestionBankFile != "" {
		b, err := questions.Load(cfg.QuestionBankFile)
		if err != nil {
			return nil, err
		}
		bank = b
	}

	dialect := repomanager.DialectSQLite
	if cfg.UsesPostgres() {
		dialect = repomanager.DialectPostgres
	}

	db, rm, err := repomanager.Open(ctx, dialect, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tokens := auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidityDuration)
	engine := feedback.NewEngine(bank.DefaultFeedback(), bank.QuestionFeedback())
	store := services.NewInterviewStore(db, rm, bank)

	a := &App{
		users:      services.NewUserService(db, rm, tokens, logger),
		review:     services.NewReviewService(db, rm, bank),
		tokens:     services.NewTokenCache(db, rm),
		catalogue:  bank,
		controller: interview.NewController(bank, engine, store, interview.WithLogger(logger)),
		logger:     logger,
		db:         db,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}

	exp, err := export.NewS3Exporter(ctx, cfg, logger)
	switch {
	case err == nil:
		a.exporter = exp
	case errors.Is(err, common.ErrExportDisabled):
		logger.Debug(ctx, "transcript export disabled")
	default:
		_ = db.Close()
		return nil, err
	}

	if cfg.SecretKey == config.DefaultSecretKey {
		logger.Warn(ctx, "using the built-in token secret, set JWT_SECRET_KEY outside development",
			"environment", cfg.Environment)
	}

	logger.Info(ctx, "trainer initialised", "dialect", string(dialect), "export", a.exporter != nil)
	return a, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run resumes a cached login if one is still valid and then serves the REPL
// until the user exits, input ends or a termination signal arrives.
func (a *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	a.initSignalHandler(cancelFunc)

	a.println("Welcome to the mock interview trainer (type 'help' for commands)")
	a.restoreLogin(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, a, a.status, a.reader)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		a.println()
		a.println("Interrupted, bye!")
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) status() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf(" (%s)", a.user.UserName)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// restoreLogin picks up a token cached by a previous run. An unusable
// token is dropped from the cache.
func (a *App) restoreLogin(ctx context.Context) {
	token, err := a.tokens.Load(ctx)
	if err != nil {
		a.logger.Warn(ctx, "cannot read cached token", "error", err)
		return
	}
	if token == "" {
		return
	}

	u, err := a.users.Authenticate(ctx, token)
	if err != nil {
		a.logger.Info(ctx, "cached token rejected", "error", err)
		if err := a.tokens.Clear(ctx); err != nil {
			a.logger.Warn(ctx, "cannot clear cached token", "error", err)
		}
		return
	}

	a.user = u
	a.token = token
	a.printf("Welcome back, %s!\n", u.UserName)
}

// requireAuth re-checks the current token before an authenticated command.
// An expired or otherwise rejected token ends the login.
func (a *App) requireAuth(ctx context.Context) error {
	if a.user == nil {
		return common.ErrorUnauthorized
	}

	u, err := a.users.Authenticate(ctx, a.token)
	if err != nil {
		a.println("Your session has expired, please login again.")
		a.logger.Info(ctx, "token rejected", "error", err)
		a.dropLogin(ctx)
		return err
	}

	a.user = u
	return nil
}

func (a *App) dropLogin(ctx context.Context) {
	if a.controller.State() == interview.InProgress {
		a.logger.Info(ctx, "interview abandoned on logout", "session_id", a.controller.SessionID())
	}
	a.controller.Abandon()
	a.user = nil
	a.token = ""
	if err := a.tokens.Clear(ctx); err != nil {
		a.logger.Warn(ctx, "cannot clear cached token", "error", err)
	}
}
