package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/mockinterview/internal/auth"
	"github.com/dmitrijs2005/mockinterview/internal/dbx"
	"github.com/dmitrijs2005/mockinterview/internal/logging"
	"github.com/dmitrijs2005/mockinterview/internal/models"
	"github.com/dmitrijs2005/mockinterview/internal/questions"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/interviews"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/metadata"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/repomanager"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/repotest"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/responses"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/users"
)

var errBoom = errors.New("boom")

type env struct {
	db     *sql.DB
	rm     repomanager.RepositoryManager
	tokens *auth.TokenService
	users  *UserService
	store  *InterviewStore
	review *ReviewService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := repotest.NewSQLiteDB(t)
	rm := repomanager.NewSQLiteRepositoryManager()
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	return &env{
		db:     db,
		rm:     rm,
		tokens: tokens,
		users:  NewUserService(db, rm, tokens, logging.Discard),
		store:  NewInterviewStore(db, rm, questions.Default()),
		review: NewReviewService(db, rm, questions.Default()),
	}
}

// --- fakes for error paths ---

type fakeUsersRepo struct {
	createErr error
	getOut    *models.User
	getErr    error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByUserName(context.Context, string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetByID(context.Context, int64) (*models.User, error) {
	return f.getOut, f.getErr
}

type fakeResponsesRepo struct {
	listErr error
}

func (f *fakeResponsesRepo) Create(context.Context, *models.ResponseRecord) (*models.ResponseRecord, error) {
	return nil, errBoom
}
func (f *fakeResponsesRepo) CountBySession(context.Context, int64) (int, error) { return 0, errBoom }
func (f *fakeResponsesRepo) ListByUser(context.Context, int64) ([]models.HistoryRow, error) {
	return nil, f.listErr
}
func (f *fakeResponsesRepo) ListBySession(context.Context, int64) ([]models.ResponseRecord, error) {
	return nil, f.listErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeResponsesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.u }
func (m *fakeRepoManager) Interviews(dbx.DBTX) interviews.Repository    { return nil }
func (m *fakeRepoManager) Responses(dbx.DBTX) responses.Repository      { return m.r }
func (m *fakeRepoManager) Metadata(dbx.DBTX) metadata.Repository        { return nil }

type fakeTokens struct {
	issueErr error
	verify   auth.Result
}

func (f *fakeTokens) Issue(string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return "tok", nil
}

func (f *fakeTokens) Verify(string) auth.Result { return f.verify }
