package repository

import (
	"context"

	"github.com/lfmcarvalho/gerenciamento_propriedades/models"
)

// UserRepository defines the interface for account operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}
