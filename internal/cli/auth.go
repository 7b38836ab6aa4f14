package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mockinterview/internal/common"
	"github.com/dmitrijs2005/mockinterview/internal/models"
)

// Test seams for interactive input; tests replace them with stubs.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

func (a *App) readCredentials() (string, string, error) {
	username, err := getSimpleText(a.reader, "Enter username:", a.out)
	if err != nil {
		return "", "", err
	}

	pw, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(pw)

	return username, string(pw), nil
}

func (a *App) readExperienceLevel() (models.ExperienceLevel, error) {
	var sb strings.Builder
	sb.WriteString("Select experience level:")
	for i, l := range models.ExperienceLevels {
		fmt.Fprintf(&sb, "\n  %d. %s", i+1, l)
	}

	for {
		s, err := getSimpleText(a.reader, sb.String(), a.out)
		if err != nil {
			return "", err
		}
		if i, ok := parseChoice(s, len(models.ExperienceLevels)); ok {
			return models.ExperienceLevels[i], nil
		}
		level, err := models.ParseExperienceLevel(s)
		if err == nil {
			return level, nil
		}
		a.println("Unknown experience level, try again.")
	}
}

// Register creates an account. The new user is not logged in.
func (a *App) Register(ctx context.Context) error {
	username, password, err := a.readCredentials()
	if err != nil {
		return err
	}

	level, err := a.readExperienceLevel()
	if err != nil {
		return err
	}

	u, err := a.users.Register(ctx, username, password, level)
	switch {
	case err == nil:
		a.printf("User %s registered, you can login now.\n", u.UserName)
		return nil
	case errors.Is(err, common.ErrDuplicateUser):
		a.println("Username already exists.")
	case errors.Is(err, common.ErrInvalidUsername), errors.Is(err, common.ErrInvalidPassword):
		a.println("Registration failed:", err)
	default:
		a.println("Registration failed, please try again later.")
		a.logger.Error(ctx, "register failed", "error", err)
	}
	return err
}

// Login authenticates the user and caches the issued token.
func (a *App) Login(ctx context.Context) error {
	if a.user != nil {
		a.printf("Already logged in as %s.\n", a.user.UserName)
		return nil
	}

	username, password, err := a.readCredentials()
	if err != nil {
		return err
	}

	token, u, err := a.users.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			a.println("Invalid username or password.")
		} else {
			a.println("Login failed, please try again later.")
			a.logger.Error(ctx, "login failed", "error", err)
		}
		return err
	}

	a.user = u
	a.token = token
	if err := a.tokens.Save(ctx, token); err != nil {
		a.logger.Warn(ctx, "cannot cache token", "error", err)
	}

	a.printf("Welcome, %s (%s)!\n", u.UserName, u.ExperienceLevel)
	return nil
}

// Logout abandons any active interview and forgets the cached token.
func (a *App) Logout(ctx context.Context) error {
	name := a.user.UserName
	a.dropLogin(ctx)
	a.printf("Goodbye, %s.\n", name)
	return nil
}
