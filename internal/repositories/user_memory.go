package repositories

import (
	"context"
	"sync"
	"time"

	"reviewhub/internal/models/db_models"
)

// InMemoryUserRepository mirrors the gorm user repository for tests.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]db_models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[string]db_models.User)}
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*db_models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*db_models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (r *InMemoryUserRepository) Upsert(ctx context.Context, user *db_models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if existing, ok := r.users[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
	} else if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}
