package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lfmcarvalho/gerenciamento_propriedades/models"
)

// MemoryPropertyRepo is a mutex-guarded in-memory PropertyRepository used by
// tests and local development without a MongoDB instance.
type MemoryPropertyRepo struct {
	mu         sync.Mutex
	nextID     int64
	properties map[int64]models.Property
}

func NewMemoryPropertyRepo() *MemoryPropertyRepo {
	return &MemoryPropertyRepo{properties: make(map[int64]models.Property)}
}

func (r *MemoryPropertyRepo) FindByOwner(_ context.Context, ownerID int64) ([]models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []models.Property{}
	for _, p := range r.properties {
		if p.OwnerID == ownerID {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MemoryPropertyRepo) Insert(_ context.Context, property *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now().UTC()
	property.ID = r.nextID
	property.CreatedAt = now
	property.UpdatedAt = now
	if property.Photos == nil {
		property.Photos = []string{}
	}
	r.properties[property.ID] = *property
	return nil
}

func (r *MemoryPropertyRepo) DeleteByID(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.properties[id]; !ok {
		return 0, nil
	}
	delete(r.properties, id)
	return 1, nil
}
