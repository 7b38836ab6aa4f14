// Package users is the credential store.
package users

import (
	"context"

	"github.com/dmitrijs2005/mockinterview/internal/models"
)

// Repository persists registered users. Create returns common.ErrDuplicateUser
// for a taken username; lookups return common.ErrorNotFound for unknown users.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
