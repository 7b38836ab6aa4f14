package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/mockinterview/internal/common"
	"github.com/dmitrijs2005/mockinterview/internal/feedback"
	"github.com/dmitrijs2005/mockinterview/internal/interview"
	"github.com/dmitrijs2005/mockinterview/internal/logging"
	"github.com/dmitrijs2005/mockinterview/internal/models"
	"github.com/dmitrijs2005/mockinterview/internal/questions"
)

var errBoom = errors.New("boom")

var alice = &models.User{ID: 7, UserName: "alice", ExperienceLevel: models.ExperienceMid}

type fakeUsers struct {
	regUser  string
	regPass  string
	regLevel models.ExperienceLevel
	regErr   error

	loginUser string
	loginPass string
	loginErr  error

	authCalls int
	authErr   error
}

func (f *fakeUsers) Register(_ context.Context, u, p string, l models.ExperienceLevel) (*models.User, error) {
	f.regUser, f.regPass, f.regLevel = u, p, l
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &models.User{ID: 1, UserName: u, ExperienceLevel: l}, nil
}

func (f *fakeUsers) Login(_ context.Context, u, p string) (string, *models.User, error) {
	f.loginUser, f.loginPass = u, p
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return "tok-" + u, alice, nil
}

func (f *fakeUsers) Authenticate(_ context.Context, token string) (*models.User, error) {
	f.authCalls++
	if f.authErr != nil {
		return nil, f.authErr
	}
	return alice, nil
}

type fakeTokens struct {
	token   string
	loadErr error
	saveErr error
	cleared bool
}

func (f *fakeTokens) Load(context.Context) (string, error) { return f.token, f.loadErr }
func (f *fakeTokens) Save(_ context.Context, token string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.token = token
	return nil
}
func (f *fakeTokens) Clear(context.Context) error {
	f.cleared = true
	f.token = ""
	return nil
}

type fakeReview struct {
	groups []models.SessionGroup
	err    error
}

func (f *fakeReview) History(context.Context, int64) ([]models.SessionGroup, error) {
	return f.groups, f.err
}

func (f *fakeReview) Session(_ context.Context, userID, sessionID int64) (*models.SessionGroup, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.groups {
		if f.groups[i].SessionID == sessionID {
			return &f.groups[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

type fakeExporter struct {
	user    string
	session int64
	err     error
}

func (f *fakeExporter) Export(_ context.Context, userName string, g *models.SessionGroup) (string, error) {
	f.user, f.session = userName, g.SessionID
	if f.err != nil {
		return "", f.err
	}
	return "transcripts/alice/session.json", nil
}

type fakeStore struct {
	sessions  []models.InterviewSession
	responses []models.ResponseRecord
	saveErr   error
}

func (s *fakeStore) CreateSession(_ context.Context, sess *models.InterviewSession) (int64, error) {
	s.sessions = append(s.sessions, *sess)
	return int64(len(s.sessions)), nil
}

func (s *fakeStore) SaveResponse(_ context.Context, rec *models.ResponseRecord) error {
	if s.saveErr != nil {
		err := s.saveErr
		s.saveErr = nil
		return err
	}
	s.responses = append(s.responses, *rec)
	return nil
}

type staticBank []string

func (b staticBank) QuestionsFor(string) []string { return append([]string(nil), b...) }

type fakeCatalogue []questions.Category

func (c fakeCatalogue) Categories() []questions.Category { return c }

func (c fakeCatalogue) HasRole(jobTitle string) bool {
	for _, cat := range c {
		for _, t := range cat.Titles {
			if t == jobTitle {
				return true
			}
		}
	}
	return false
}

type testApp struct {
	*App
	out    *bytes.Buffer
	users  *fakeUsers
	tokens *fakeTokens
	review *fakeReview
	store  *fakeStore
}

// newTestApp builds an App over fakes that reads input and is logged in as
// alice unless loggedIn is false.
func newTestApp(t *testing.T, input string, loggedIn bool) *testApp {
	t.Helper()
	stubTerminal(t, false, nil, errors.New("no terminal in tests"))

	ta := &testApp{
		out:    &bytes.Buffer{},
		users:  &fakeUsers{},
		tokens: &fakeTokens{},
		review: &fakeReview{},
		store:  &fakeStore{},
	}

	fixed := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	ctrl := interview.NewController(
		staticBank{"Q one?", "Q two?"},
		feedback.NewEngine([]string{"ok"}, nil),
		ta.store,
		interview.WithClock(func() time.Time { return fixed }),
	)

	ta.App = &App{
		users:      ta.users,
		review:     ta.review,
		tokens:     ta.tokens,
		catalogue:  fakeCatalogue{{Name: "Technology", Titles: []string{"Software Developer", "Data Scientist"}}},
		controller: ctrl,
		logger:     logging.Discard,
		reader:     rdr(input),
		out:        ta.out,
	}
	if loggedIn {
		ta.App.user = alice
		ta.App.token = "tok-alice"
	}
	return ta
}
