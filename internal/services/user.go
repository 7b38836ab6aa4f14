// Package services contains the trainer's use cases on top of the
// repositories. This file implements UserService: registration, login and
// token-based authentication.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/mockinterview/internal/auth"
	"github.com/dmitrijs2005/mockinterview/internal/common"
	"github.com/dmitrijs2005/mockinterview/internal/cryptox"
	"github.com/dmitrijs2005/mockinterview/internal/logging"
	"github.com/dmitrijs2005/mockinterview/internal/models"
	"github.com/dmitrijs2005/mockinterview/internal/repositories/repomanager"
)

const maxUserNameLen = 64

// TokenIssuer is the part of auth.TokenService that UserService needs.
type TokenIssuer interface {
	Issue(username string) (string, error)
	Verify(token string) auth.Result
}

// UserService provides authentication-related operations:
// - Register: create users with a hashed credential
// - Login: verify credentials and mint a token
// - Authenticate: resolve a token to its user
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      TokenIssuer
	logger      logging.Logger
	dummyHash   string
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens TokenIssuer, logger logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		logger:      logger,
		dummyHash:   cryptox.HashPassword(common.GenerateRandByteArray(16)),
	}
}

// Register creates a user. A taken username yields common.ErrDuplicateUser.
func (s *UserService) Register(ctx context.Context, username, password string, level models.ExperienceLevel) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || utf8.RuneCountInString(username) > maxUserNameLen {
		return nil, common.ErrInvalidUsername
	}
	if password == "" {
		return nil, common.ErrInvalidPassword
	}
	if _, err := models.ParseExperienceLevel(string(level)); err != nil {
		return nil, err
	}

	user := &models.User{
		UserName:        username,
		Credential:      cryptox.HashPassword([]byte(password)),
		ExperienceLevel: level,
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUser) {
			return nil, common.ErrDuplicateUser
		}
		s.logger.Error(ctx, "error creating user", "error", err)
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// Login checks the password and returns a fresh token. Unknown users and
// wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	username = strings.TrimSpace(username)

	user, err := s.repomanager.Users(s.db).GetByUserName(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// same cost as a real check
			_, _ = cryptox.VerifyPassword(s.dummyHash, []byte(password))
			s.logger.Warn(ctx, "login failed", "reason", "unknown user")
			return "", nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "error loading user", "error", err)
		return "", nil, common.ErrorInternal
	}

	ok, err := cryptox.VerifyPassword(user.Credential, []byte(password))
	if err != nil {
		s.logger.Error(ctx, "stored credential unreadable", "user_id", user.ID, "error", err)
		return "", nil, common.ErrorInternal
	}
	if !ok {
		s.logger.Warn(ctx, "login failed", "user_id", user.ID, "reason", "bad password")
		return "", nil, common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(user.UserName)
	if err != nil {
		s.logger.Error(ctx, "error issuing token", "error", err)
		return "", nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return token, user, nil
}

// Authenticate resolves token to a user. Any rejection wraps
// common.ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	res := s.tokens.Verify(token)
	if !res.Valid {
		return nil, fmt.Errorf("%w: %s", common.ErrorUnauthorized, res.Reason)
	}

	user, err := s.repomanager.Users(s.db).GetByUserName(ctx, res.Username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: unknown user", common.ErrorUnauthorized)
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return user, nil
}
