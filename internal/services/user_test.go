package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/mockinterview/internal/auth"
	"github.com/dmitrijs2005/mockinterview/internal/common"
	"github.com/dmitrijs2005/mockinterview/internal/cryptox"
	"github.com/dmitrijs2005/mockinterview/internal/logging"
	"github.com/dmitrijs2005/mockinterview/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	u, err := e.users.Register(ctx, "  alice ", "pa55word", models.ExperienceMid)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.UserName)
	assert.NotContains(t, u.Credential, "pa55word")

	token, logged, err := e.users.Login(ctx, "alice", "pa55word")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, u.ID, logged.ID)

	res := e.tokens.Verify(token)
	assert.True(t, res.Valid)
	assert.Equal(t, "alice", res.Username)

	me, err := e.users.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, me.ID)
	assert.Equal(t, models.ExperienceMid, me.ExperienceLevel)
}

func TestRegister_Duplicate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.users.Register(ctx, "bob", "one", models.ExperienceEntry)
	require.NoError(t, err)

	_, err = e.users.Register(ctx, "bob", "two", models.ExperienceSenior)
	assert.ErrorIs(t, err, common.ErrDuplicateUser)

	// the original password still works
	_, _, err = e.users.Login(ctx, "bob", "one")
	require.NoError(t, err)
}

func TestRegister_Validation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.users.Register(ctx, "   ", "pw", models.ExperienceEntry)
	assert.ErrorIs(t, err, common.ErrInvalidUsername)

	_, err = e.users.Register(ctx, string(make([]byte, 65)), "pw", models.ExperienceEntry)
	assert.ErrorIs(t, err, common.ErrInvalidUsername)

	_, err = e.users.Register(ctx, "carol", "", models.ExperienceEntry)
	assert.ErrorIs(t, err, common.ErrInvalidPassword)

	_, err = e.users.Register(ctx, "carol", "pw", models.ExperienceLevel("Guru"))
	assert.ErrorIs(t, err, common.ErrInvalidExperienceLevel)
}

func TestRegister_RepoError(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{createErr: errBoom}}
	s := NewUserService(nil, rm, &fakeTokens{}, logging.Discard)

	_, err := s.Register(context.Background(), "alice", "pw", models.ExperienceEntry)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
}

func TestLogin_Failures(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.users.Register(ctx, "dave", "secret", models.ExperienceSenior)
	require.NoError(t, err)

	_, _, err = e.users.Login(ctx, "dave", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, _, err = e.users.Login(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_Internal(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		rm := &fakeRepoManager{u: &fakeUsersRepo{getErr: errBoom}}
		s := NewUserService(nil, rm, &fakeTokens{}, logging.Discard)

		_, _, err := s.Login(context.Background(), "x", "y")
		assert.ErrorIs(t, err, common.ErrorInternal)
	})

	t.Run("unreadable credential", func(t *testing.T) {
		rm := &fakeRepoManager{u: &fakeUsersRepo{getOut: &models.User{ID: 1, UserName: "x", Credential: "plain"}}}
		s := NewUserService(nil, rm, &fakeTokens{}, logging.Discard)

		_, _, err := s.Login(context.Background(), "x", "y")
		assert.ErrorIs(t, err, common.ErrorInternal)
	})

	t.Run("issue error", func(t *testing.T) {
		rm := &fakeRepoManager{u: &fakeUsersRepo{getOut: &models.User{ID: 1, UserName: "x", Credential: cryptox.HashPassword([]byte("y"))}}}
		s := NewUserService(nil, rm, &fakeTokens{issueErr: errBoom}, logging.Discard)

		_, _, err := s.Login(context.Background(), "x", "y")
		assert.ErrorIs(t, err, common.ErrorInternal)
	})
}

func TestAuthenticate_Rejections(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.users.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Contains(t, err.Error(), string(auth.ReasonMalformed))

	other := auth.NewTokenService([]byte("other-secret"), 0)
	forged, err := other.Issue("alice")
	require.NoError(t, err)
	_, err = e.users.Authenticate(ctx, forged)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	// valid signature, but the user does not exist
	ghost, err := e.tokens.Issue("ghost")
	require.NoError(t, err)
	_, err = e.users.Authenticate(ctx, ghost)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAuthenticate_RepoError(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{getErr: errBoom}}
	s := NewUserService(nil, rm, &fakeTokens{verify: auth.Result{Valid: true, Username: "x"}}, logging.Discard)

	_, err := s.Authenticate(context.Background(), "tok")
	assert.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, common.ErrorUnauthorized)
}
