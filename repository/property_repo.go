package repository

import (
	"context"

	"github.com/lfmcarvalho/gerenciamento_propriedades/models"
)

// PropertyRepository defines the interface for property operations
type PropertyRepository interface {
	FindByOwner(ctx context.Context, ownerID int64) ([]models.Property, error)
	Insert(ctx context.Context, property *models.Property) error
	DeleteByID(ctx context.Context, id int64) (int64, error)
}
