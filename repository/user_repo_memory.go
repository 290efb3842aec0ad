package repository

import (
	"context"
	"sync"
	"time"

	"github.com/lfmcarvalho/gerenciamento_propriedades/models"
)

// MemoryUserRepo is a mutex-guarded in-memory UserRepository used by tests
// and local development without a MongoDB instance.
type MemoryUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[int64]models.User)}
}

func (r *MemoryUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepo) FindByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	user := u
	return &user, nil
}

func (r *MemoryUserRepo) Insert(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now().UTC()
	user.ID = r.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}
